// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecgroup

import (
	"fmt"
	"math/big"
)

// checkOperand reports whether c lies in the half-open range [0, p) required
// of every prime-field element.
func checkOperand(name string, c, p *big.Int) error {
	if c.Sign() < 0 || c.Cmp(p) >= 0 {
		return makeError(ErrOperandOutOfRange,
			fmt.Sprintf("%s = %v is not in [0, %v)", name, c, p))
	}
	return nil
}

// Add returns (c + d) mod p. Both operands must already lie in [0, p).
func Add(c, d, p *big.Int) (*big.Int, error) {
	if err := checkOperand("c", c, p); err != nil {
		return nil, err
	}
	if err := checkOperand("d", d, p); err != nil {
		return nil, err
	}
	r := new(big.Int).Add(c, d)
	return r.Mod(r, p), nil
}

// Sub returns (c - d) mod p, computed as Add(c, InvAdd(d, p), p) so no signed
// intermediate value is ever produced.
func Sub(c, d, p *big.Int) (*big.Int, error) {
	if err := checkOperand("c", c, p); err != nil {
		return nil, err
	}
	dInv, err := InvAdd(d, p)
	if err != nil {
		return nil, err
	}
	return Add(c, dInv, p)
}

// Mul returns (c * d) mod p. Both operands must already lie in [0, p).
func Mul(c, d, p *big.Int) (*big.Int, error) {
	if err := checkOperand("c", c, p); err != nil {
		return nil, err
	}
	if err := checkOperand("d", d, p); err != nil {
		return nil, err
	}
	r := new(big.Int).Mul(c, d)
	return r.Mod(r, p), nil
}

// InvAdd returns the additive inverse of c modulo p, i.e. p - c, special
// cased so that InvAdd(0, p) is 0 rather than p: the closed-form p - c would
// otherwise fall outside [0, p).
func InvAdd(c, p *big.Int) (*big.Int, error) {
	if err := checkOperand("c", c, p); err != nil {
		return nil, err
	}
	if c.Sign() == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).Sub(p, c), nil
}

// InvMul returns the multiplicative inverse of c modulo p via Fermat's
// little theorem, c^(p-2) mod p. p is assumed prime; that is the caller's
// responsibility and is not verified here. InvMul(0, p) returns 0, which is
// not a true inverse — the caller must exclude zero operands.
func InvMul(c, p *big.Int) (*big.Int, error) {
	if err := checkOperand("c", c, p); err != nil {
		return nil, err
	}
	exp := new(big.Int).Sub(p, big.NewInt(2))
	return new(big.Int).Exp(c, exp, p), nil
}

// Div returns Mul(c, InvMul(d, p), p). d must not be congruent to zero
// modulo p.
func Div(c, d, p *big.Int) (*big.Int, error) {
	if err := checkOperand("c", c, p); err != nil {
		return nil, err
	}
	if d.Sign() == 0 {
		return nil, makeError(ErrDivideByZero, "division by zero in prime field")
	}
	dInv, err := InvMul(d, p)
	if err != nil {
		return nil, err
	}
	return Mul(c, dInv, p)
}
