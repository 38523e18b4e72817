// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
)

// readPrizePool 没有记录时奖池为 0
func readPrizePool(db dbm.KV) (*dty.PrizePool, error) {
	data, err := db.Get(prizePoolKey)
	if err != nil {
		return &dty.PrizePool{}, nil
	}
	var pool dty.PrizePool
	err = types.Decode(data, &pool)
	if err != nil {
		return nil, errors.Wrap(err, "decode prize pool")
	}
	return &pool, nil
}

func savePrizePool(db dbm.KV, pool *dty.PrizePool) ([]*types.KeyValue, error) {
	if pool.Amount < 0 {
		return nil, errors.Wrapf(types.ErrAmount, "prize pool %d", pool.Amount)
	}
	value := types.Encode(pool)
	if err := db.Set(prizePoolKey, value); err != nil {
		return nil, err
	}
	return []*types.KeyValue{{Key: prizePoolKey, Value: value}}, nil
}
