// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrMethodReturnType        = errors.New("ErrMethodReturnType")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrExecNotFound            = errors.New("ErrExecNotFound")
	ErrDecode                  = errors.New("ErrDecode")
	ErrEmptyTx                 = errors.New("ErrEmptyTx")
	ErrDBBackend               = errors.New("ErrDBBackend")
	ErrConfigNotFound          = errors.New("ErrConfigNotFound")
	ErrUnRegistedDriver        = errors.New("ErrUnRegistedDriver")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
)
