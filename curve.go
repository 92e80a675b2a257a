// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecgroup

import (
	"fmt"
	"math/big"
)

// Curve is the immutable parameter set (a, b, p) of a short Weierstrass
// curve y² ≡ x³ + ax + b (mod p). A Curve value is safe for concurrent use
// by multiple goroutines since it is never mutated after construction.
type Curve struct {
	A, B, P *big.Int
}

// NewCurve returns a curve (a, b, p). The curve is assumed non-singular
// (4a³ + 27b² ≢ 0 mod p); that is not verified here and is the caller's
// responsibility.
func NewCurve(a, b, p *big.Int) *Curve {
	return &Curve{
		A: new(big.Int).Set(a),
		B: new(big.Int).Set(b),
		P: new(big.Int).Set(p),
	}
}

// IsOnCurve reports whether pt satisfies the curve equation. The identity is
// considered on-curve by convention.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsIdentity() {
		return true
	}
	x, y := pt.XY()

	// y²
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, c.P)

	// x³ + ax + b
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	ax := new(big.Int).Mul(c.A, x)
	rhs := new(big.Int).Add(x3, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return y2.Cmp(rhs) == 0
}

// requireOnCurve is an internal helper used by Add, Double and ScalarMul to
// reject points that do not satisfy the curve equation.
func (c *Curve) requireOnCurve(name string, pt Point) error {
	if !c.IsOnCurve(pt) {
		return makeError(ErrPointNotOnCurve, fmt.Sprintf("%s is not on the curve", name))
	}
	return nil
}

// Add returns p + q. Both p and q must be on the curve and must not be the
// same point — doubling a point requires Double. Passing equal points
// returns ErrPointsEqual.
func (c *Curve) Add(p, q Point) (Point, error) {
	if err := c.requireOnCurve("p", p); err != nil {
		return Point{}, err
	}
	if err := c.requireOnCurve("q", q); err != nil {
		return Point{}, err
	}
	if p.Equal(q) {
		return Point{}, makeError(ErrPointsEqual, "Add requires p != q; use Double to double a point")
	}

	if p.IsIdentity() {
		return q, nil
	}
	if q.IsIdentity() {
		return p, nil
	}

	x1, y1 := p.XY()
	x2, y2 := q.XY()

	// Vertical line: x1 == x2 and y1 + y2 ≡ 0 (mod p) — the points are
	// inverses of each other.
	ySum, err := Add(y1, y2, c.P)
	if err != nil {
		return Point{}, err
	}
	if x1.Cmp(x2) == 0 && ySum.Sign() == 0 {
		return Identity, nil
	}

	// s = (y2 - y1) / (x2 - x1) mod p
	num, err := Sub(y2, y1, c.P)
	if err != nil {
		return Point{}, err
	}
	den, err := Sub(x2, x1, c.P)
	if err != nil {
		return Point{}, err
	}
	s, err := Div(num, den, c.P)
	if err != nil {
		return Point{}, err
	}

	// x3 = s² - x1 - x2 mod p
	s2, err := Mul(s, s, c.P)
	if err != nil {
		return Point{}, err
	}
	x3, err := Sub(s2, x1, c.P)
	if err != nil {
		return Point{}, err
	}
	x3, err = Sub(x3, x2, c.P)
	if err != nil {
		return Point{}, err
	}

	// y3 = s*(x1 - x3) - y1 mod p
	xDiff, err := Sub(x1, x3, c.P)
	if err != nil {
		return Point{}, err
	}
	y3, err := Mul(s, xDiff, c.P)
	if err != nil {
		return Point{}, err
	}
	y3, err = Sub(y3, y1, c.P)
	if err != nil {
		return Point{}, err
	}

	return NewPoint(x3, y3), nil
}

// Double returns p + p. p must be on the curve.
func (c *Curve) Double(p Point) (Point, error) {
	if err := c.requireOnCurve("p", p); err != nil {
		return Point{}, err
	}
	if p.IsIdentity() {
		return Identity, nil
	}

	x, y := p.XY()
	if y.Sign() == 0 {
		// Vertical tangent.
		return Identity, nil
	}

	// s = (3x² + a) / (2y) mod p
	x2, err := Mul(x, x, c.P)
	if err != nil {
		return Point{}, err
	}
	threeX2, err := Mul(x2, big.NewInt(3), c.P)
	if err != nil {
		return Point{}, err
	}
	num, err := Add(threeX2, c.A, c.P)
	if err != nil {
		return Point{}, err
	}
	twoY, err := Mul(y, big.NewInt(2), c.P)
	if err != nil {
		return Point{}, err
	}
	s, err := Div(num, twoY, c.P)
	if err != nil {
		return Point{}, err
	}

	// x3 = s² - 2x mod p
	s2, err := Mul(s, s, c.P)
	if err != nil {
		return Point{}, err
	}
	twoX, err := Mul(x, big.NewInt(2), c.P)
	if err != nil {
		return Point{}, err
	}
	x3, err := Sub(s2, twoX, c.P)
	if err != nil {
		return Point{}, err
	}

	// y3 = s*(x - x3) - y mod p
	xDiff, err := Sub(x, x3, c.P)
	if err != nil {
		return Point{}, err
	}
	y3, err := Mul(s, xDiff, c.P)
	if err != nil {
		return Point{}, err
	}
	y3, err = Sub(y3, y, c.P)
	if err != nil {
		return Point{}, err
	}

	return NewPoint(x3, y3), nil
}

// ScalarMul returns k*p using left-to-right double-and-add. k == 0 returns
// Identity, the algebraically correct result of multiplying by the empty
// sum. Whenever the running accumulator equals p, the loop substitutes
// Double for Add, since Add's contract forbids passing the same point
// twice.
func (c *Curve) ScalarMul(p Point, k *big.Int) (Point, error) {
	if err := c.requireOnCurve("p", p); err != nil {
		return Point{}, err
	}
	if k.Sign() == 0 {
		return Identity, nil
	}

	t := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		var err error
		t, err = c.Double(t)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			if t.Equal(p) {
				t, err = c.Double(t)
			} else {
				t, err = c.Add(t, p)
			}
			if err != nil {
				return Point{}, err
			}
		}
	}
	return t, nil
}
