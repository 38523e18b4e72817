// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FormatAmount 将计算用的整数金额转换成显示值
func FormatAmount(amount int64) string {
	return decimal.New(amount, -AmountPrecision).String()
}

// ParseAmount 将显示值转换成计算用的整数金额, 精度超过 8 位小数时报错
func ParseAmount(display string) (int64, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return 0, errors.Wrapf(ErrAmount, "parse %q: %v", display, err)
	}
	value := d.Shift(AmountPrecision)
	if !value.Equal(value.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "%s has more than %d decimals", display, AmountPrecision)
	}
	if value.IsNegative() || value.GreaterThanOrEqual(decimal.New(MaxCoin, 0)) {
		return 0, errors.Wrapf(ErrAmount, "%s out of range", display)
	}
	return value.IntPart(), nil
}
