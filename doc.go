// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecgroup implements modular arithmetic over a prime finite field and
point arithmetic on a short Weierstrass elliptic curve defined over that
field.

It provides:

  - Prime-field operations (Add, Sub, Mul, Div, InvAdd, InvMul) over operands
    and a modulus supplied by the caller.
  - A Point type representing either an affine coordinate pair or the group
    identity (the "point at infinity"), with structural equality.
  - A Curve type bundling the short Weierstrass parameters (a, b, p) and
    exposing IsOnCurve, Add, Double and ScalarMul.

No curve parameters are baked in; callers supply their own (a, b, p) and, for
group operations, their own generator and subgroup order. The package favors
clarity over constant-time execution or speed: it is not hardened against
timing, cache, or fault attacks and should not be used for production
cryptography on adversarial inputs.

The two-nonce ElGamal-like signature scheme built on top of this package
lives in the sibling package github.com/ModChain/ecgroup/elgamal.
*/
package ecgroup
