// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/pkg/errors"
)

// LogInfo 日志类型对应的结构体以及名称
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// ExecutorType 执行器类型, 负责交易 payload 以及回执日志的解析
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	ActionName(tx *Transaction) string
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	DecodeReceiptLog(ty int32, data []byte) (string, Message, error)
	GetExecFuncMap() map[string]reflect.Method
	InitFuncList(list map[string]reflect.Method)
}

var (
	executorMap = map[string]ExecutorType{}
	nilValue    = reflect.ValueOf(nil)
	systemLog   = map[int64]*LogInfo{
		TyLogTransfer:        {Ty: reflect.TypeOf(ReceiptAccountTransfer{}), Name: "LogTransfer"},
		TyLogGenesis:         {Ty: reflect.TypeOf(ReceiptAccountTransfer{}), Name: "LogGenesis"},
		TyLogDeposit:         {Ty: reflect.TypeOf(ReceiptAccountTransfer{}), Name: "LogDeposit"},
		TyLogExecTransfer:    {Ty: reflect.TypeOf(ReceiptExecAccountTransfer{}), Name: "LogExecTransfer"},
		TyLogExecWithdraw:    {Ty: reflect.TypeOf(ReceiptExecAccountTransfer{}), Name: "LogExecWithdraw"},
		TyLogExecDeposit:     {Ty: reflect.TypeOf(ReceiptExecAccountTransfer{}), Name: "LogExecDeposit"},
		TyLogExecFrozen:      {Ty: reflect.TypeOf(ReceiptExecAccountTransfer{}), Name: "LogExecFrozen"},
		TyLogExecActive:      {Ty: reflect.TypeOf(ReceiptExecAccountTransfer{}), Name: "LogExecActive"},
		TyLogGenesisTransfer: {Ty: reflect.TypeOf(ReceiptAccountTransfer{}), Name: "LogGenesisTransfer"},
		TyLogGenesisDeposit:  {Ty: reflect.TypeOf(ReceiptExecAccountTransfer{}), Name: "LogGenesisDeposit"},
	}
)

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

// LoadExecutorType 加载执行器类型
func LoadExecutorType(exec string) ExecutorType {
	if exec, exist := executorMap[exec]; exist {
		return exec
	}
	return nil
}

// ExecTypeBase 执行器类型的公共实现
type ExecTypeBase struct {
	child         ExecutorType
	actionFunList map[string]reflect.Method
	execFuncList  map[string]reflect.Method
	actionName    map[int32]string
}

// SetChild 设置子类, 必须在注册之前调用
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionFunList = ListMethod(child.GetPayload())
	base.actionName = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionName[ty] = name
	}
}

// InitFuncList 设置执行器驱动的方法列表
func (base *ExecTypeBase) InitFuncList(list map[string]reflect.Method) {
	base.execFuncList = list
}

// GetExecFuncMap 获取执行器驱动的方法列表
func (base *ExecTypeBase) GetExecFuncMap() map[string]reflect.Method {
	return base.execFuncList
}

// ActionName 交易的 action 名称
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown-err"
	}
	if a, ok := payload.(ExecutorAction); ok {
		if name, ok := base.actionName[a.GetTy()]; ok {
			return name
		}
	}
	return "unknown"
}

// DecodePayload 解析交易的 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	if base.child == nil {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.Payload, payload); err != nil {
		return nil, errors.Wrapf(ErrDecode, "payload: %v", err)
	}
	return payload, nil
}

// DecodePayloadValue 解析 payload, 返回 action 名称以及对应的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	action, ok := payload.(ExecutorAction)
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	name, ok := base.actionName[action.GetTy()]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	getter, ok := base.actionFunList["Get"+name]
	if !ok {
		return "", nilValue, ErrActionNotSupport
	}
	val := getter.Func.Call([]reflect.Value{reflect.ValueOf(payload)})
	if !IsOK(val, 1) || IsNilVal(val[0]) {
		return "", nilValue, ErrActionNotSupport
	}
	return name, val[0], nil
}

// DecodeReceiptLog 按照日志类型解析回执日志
func (base *ExecTypeBase) DecodeReceiptLog(ty int32, data []byte) (string, Message, error) {
	info, ok := systemLog[int64(ty)]
	if !ok && base.child != nil {
		info, ok = base.child.GetLogMap()[int64(ty)]
	}
	if !ok {
		return "", nil, ErrNotFound
	}
	msg, ok := reflect.New(info.Ty).Interface().(Message)
	if !ok {
		return "", nil, ErrMethodReturnType
	}
	if err := Decode(data, msg); err != nil {
		return info.Name, nil, err
	}
	return info.Name, msg, nil
}
