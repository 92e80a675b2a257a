// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecgroup

import (
	"fmt"
	"math/big"
)

// Point is a point on an elliptic curve: either an affine coordinate pair or
// the group identity (the "point at infinity"). The zero value is not a
// valid Point; use Identity or NewPoint.
type Point struct {
	x, y     *big.Int
	identity bool
}

// Identity is the group's neutral element.
var Identity = Point{identity: true}

// NewPoint returns the affine point (x, y). It does not check that the
// point lies on any particular curve; use Curve.IsOnCurve for that.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// IsIdentity reports whether p is the group identity.
func (p Point) IsIdentity() bool {
	return p.identity
}

// XY returns the affine coordinates of p. It panics if p is the identity;
// callers must check IsIdentity first.
func (p Point) XY() (x, y *big.Int) {
	if p.identity {
		panic("ecgroup: XY called on the identity point")
	}
	return p.x, p.y
}

// Equal reports whether p and q are the same point. Two identity points are
// always equal; a coordinate pair is never equal to the identity.
func (p Point) Equal(q Point) bool {
	if p.identity || q.identity {
		return p.identity == q.identity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.identity {
		return "Identity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
