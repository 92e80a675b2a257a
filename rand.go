// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecgroup

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandIntRange draws a uniform integer in the half-open range [lo, hi) from
// rnd, built on top of crypto/rand.Int, which already performs rejection
// sampling against an io.Reader.
func RandIntRange(rnd io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) <= 0 {
		return nil, fmt.Errorf("ecgroup: invalid range [%v, %v)", lo, hi)
	}
	span := new(big.Int).Sub(hi, lo)
	n, err := rand.Int(rnd, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}
