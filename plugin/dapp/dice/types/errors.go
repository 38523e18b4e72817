// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrStakeMismatch 押注金额必须等于配置的固定金额
	ErrStakeMismatch = errors.New("ErrStakeMismatch")
	// ErrMalformedDigest 摘要长度不对
	ErrMalformedDigest = errors.New("ErrMalformedDigest")
	// ErrCommitmentAlreadyExists 同一地址同时只能有一个未揭晓的押注
	ErrCommitmentAlreadyExists = errors.New("ErrCommitmentAlreadyExists")
	// ErrNoSuchCommitment 没有未揭晓的押注
	ErrNoSuchCommitment = errors.New("ErrNoSuchCommitment")
	// ErrRevealWindowExpired 超过揭晓期限
	ErrRevealWindowExpired = errors.New("ErrRevealWindowExpired")
	// ErrDigestMismatch secret 和 guess 与提交的摘要不符
	ErrDigestMismatch = errors.New("ErrDigestMismatch")
	// ErrSweepNotYetEligible 揭晓期限未到, 不能没收
	ErrSweepNotYetEligible = errors.New("ErrSweepNotYetEligible")
	// ErrGuessOutOfRange guess 不在 [0, outcomeModulus) 范围内
	ErrGuessOutOfRange = errors.New("ErrGuessOutOfRange")
	// ErrBadGameConfig exec.sub.dice 配置不合法
	ErrBadGameConfig = errors.New("ErrBadGameConfig")
)
