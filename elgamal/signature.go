// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package elgamal

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ModChain/ecgroup"
)

// Context is the immutable signature-scheme parameter set (curve, G, q). A
// Context is safe for concurrent use by multiple goroutines once built: it
// is never mutated after construction.
type Context struct {
	Curve *ecgroup.Curve
	G     ecgroup.Point
	Q     *big.Int
}

// NewContext returns a signature context over curve with generator g and
// subgroup order q. It assumes q*g is the identity and q is prime; neither
// is verified here.
func NewContext(curve *ecgroup.Curve, g ecgroup.Point, q *big.Int) *Context {
	return &Context{Curve: curve, G: g, Q: new(big.Int).Set(q)}
}

// PrivateKey is a scalar in [1, q).
type PrivateKey struct {
	D *big.Int
}

// PublicKey is a point on the context's curve.
type PublicKey struct {
	Point ecgroup.Point
}

// Signature is the (R, S, t) triple produced by Sign and consumed by Verify.
type Signature struct {
	R, S ecgroup.Point
	T    *big.Int
}

func (ctx *Context) checkScalar(name string, v *big.Int) error {
	if v.Sign() < 0 || v.Cmp(ctx.Q) >= 0 {
		return makeError(ErrScalarOutOfRange, fmt.Sprintf("%s = %v is not in [0, q)", name, v))
	}
	return nil
}

// GeneratePrivateKey draws a private key uniformly from [1, q) using rand as
// the entropy source.
func (ctx *Context) GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	d, err := ecgroup.RandIntRange(rand, big.NewInt(1), ctx.Q)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{D: d}, nil
}

// GeneratePublicKey returns priv.D * G.
func (ctx *Context) GeneratePublicKey(priv *PrivateKey) (*PublicKey, error) {
	if err := ctx.checkScalar("priv", priv.D); err != nil {
		return nil, err
	}
	p, err := ctx.Curve.ScalarMul(ctx.G, priv.D)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Point: p}, nil
}

// GenerateKeyPair draws a fresh private key and derives its public key.
func (ctx *Context) GenerateKeyPair(rand io.Reader) (*PrivateKey, *PublicKey, error) {
	priv, err := ctx.GeneratePrivateKey(rand)
	if err != nil {
		return nil, nil, err
	}
	pub, err := ctx.GeneratePublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// Sign computes the two-nonce signature t = s*k + r*l + m*a mod q from the
// nonce pair (k, l), where r and s are the x-coordinates of k*G and l*G. m,
// priv.D, k and l must all lie in [0, q). If k*G or l*G is the identity,
// Sign returns an error wrapping ErrNonceIdentity; the caller must retry
// with fresh nonces — Sign performs no retries itself.
func (ctx *Context) Sign(m *big.Int, priv *PrivateKey, k, l *big.Int) (*Signature, error) {
	if err := ctx.checkScalar("m", m); err != nil {
		return nil, err
	}
	if err := ctx.checkScalar("a", priv.D); err != nil {
		return nil, err
	}
	if err := ctx.checkScalar("k", k); err != nil {
		return nil, err
	}
	if err := ctx.checkScalar("l", l); err != nil {
		return nil, err
	}

	r, err := ctx.Curve.ScalarMul(ctx.G, k)
	if err != nil {
		return nil, err
	}
	s, err := ctx.Curve.ScalarMul(ctx.G, l)
	if err != nil {
		return nil, err
	}
	if r.IsIdentity() || s.IsIdentity() {
		return nil, makeError(ErrNonceIdentity, "k*G or l*G is the identity; retry with fresh nonces")
	}

	rx, _ := r.XY()
	sx, _ := s.XY()

	// r and s are x-coordinates reduced modulo the curve's field prime,
	// which need not itself be less than q (for secp256k1, p > q). t's
	// formula treats them as plain scalars mod q, so they are reduced mod
	// q here before going through the range-checked field operations
	// below, which require every operand strictly less than the modulus
	// they operate under.
	rModQ := new(big.Int).Mod(rx, ctx.Q)
	sModQ := new(big.Int).Mod(sx, ctx.Q)

	sk, err := ecgroup.Mul(sModQ, k, ctx.Q)
	if err != nil {
		return nil, err
	}
	rl, err := ecgroup.Mul(rModQ, l, ctx.Q)
	if err != nil {
		return nil, err
	}
	ma, err := ecgroup.Mul(m, priv.D, ctx.Q)
	if err != nil {
		return nil, err
	}
	t, err := ecgroup.Add(sk, rl, ctx.Q)
	if err != nil {
		return nil, err
	}
	t, err = ecgroup.Add(t, ma, ctx.Q)
	if err != nil {
		return nil, err
	}

	return &Signature{R: r, S: s, T: t}, nil
}

// SignWithRand draws fresh nonces from rand and signs m with priv, retrying
// internally a bounded number of times if a drawn nonce pair yields an
// identity R or S. This is a convenience layered on top of Sign; the core
// Sign above never retries on its own.
func (ctx *Context) SignWithRand(rand io.Reader, m *big.Int, priv *PrivateKey) (*Signature, error) {
	const maxAttempts = 8
	one := big.NewInt(1)
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		k, err := ecgroup.RandIntRange(rand, one, ctx.Q)
		if err != nil {
			return nil, err
		}
		l, err := ecgroup.RandIntRange(rand, one, ctx.Q)
		if err != nil {
			return nil, err
		}
		sig, err := ctx.Sign(m, priv, k, l)
		if err == nil {
			return sig, nil
		}
		if !isNonceIdentity(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func isNonceIdentity(err error) bool {
	return errors.Is(err, ErrNonceIdentity)
}

// Verify reports whether sig is a valid signature on m under pub, checking
// t*G =? s*R + r*S + m*B. It returns false, never an error, when the
// signature is structurally invalid (R or S is the identity) or the
// verification equality fails — a bad signature is not a fault.
func (ctx *Context) Verify(m *big.Int, pub *PublicKey, sig *Signature) bool {
	if m.Sign() < 0 || m.Cmp(ctx.Q) >= 0 {
		return false
	}
	if sig.R.IsIdentity() || sig.S.IsIdentity() {
		return false
	}
	if !ctx.Curve.IsOnCurve(sig.R) || !ctx.Curve.IsOnCurve(sig.S) {
		return false
	}

	rx, _ := sig.R.XY()
	sx, _ := sig.S.XY()

	lhs, err := ctx.Curve.ScalarMul(ctx.G, sig.T)
	if err != nil {
		return false
	}

	sR, err := ctx.Curve.ScalarMul(sig.R, sx)
	if err != nil {
		return false
	}
	rS, err := ctx.Curve.ScalarMul(sig.S, rx)
	if err != nil {
		return false
	}
	mB, err := ctx.Curve.ScalarMul(pub.Point, m)
	if err != nil {
		return false
	}

	rhs, err := addMaybeEqual(ctx.Curve, sR, rS)
	if err != nil {
		return false
	}
	rhs, err = addMaybeEqual(ctx.Curve, rhs, mB)
	if err != nil {
		return false
	}

	return lhs.Equal(rhs)
}

// addMaybeEqual adds p and q, doubling instead when they happen to be the
// same point — ScalarMul's outputs here are not guaranteed distinct (e.g.
// r*S could coincide with s*R for adversarial or degenerate input), and
// Verify must not panic or error out on such input; it should simply fail
// to match and return false via the caller's equality check.
func addMaybeEqual(c *ecgroup.Curve, p, q ecgroup.Point) (ecgroup.Point, error) {
	if p.Equal(q) {
		return c.Double(p)
	}
	return c.Add(p, q)
}
