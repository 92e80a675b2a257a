// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package elgamal

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/ModChain/ecgroup"
)

func bi(s int64) *big.Int { return big.NewInt(s) }

// smallContext is the mod-757 curve and order-113 subgroup carried over from
// the original reference implementation's test suite.
func smallContext() *Context {
	curve := ecgroup.NewCurve(bi(6), bi(2), bi(757))
	g := ecgroup.NewPoint(bi(529), bi(566))
	return NewContext(curve, g, bi(113))
}

// TestSignLiteral mirrors the original reference implementation's
// test_sign/test_verify fixed-input vectors.
func TestSignLiteral(t *testing.T) {
	ctx := smallContext()
	priv := &PrivateKey{D: bi(78)}
	m := bi(56)
	k := bi(81)
	l := bi(63)

	sig, err := ctx.Sign(m, priv, k, l)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	pub, err := ctx.GeneratePublicKey(priv)
	if err != nil {
		t.Fatalf("GeneratePublicKey: unexpected error: %v", err)
	}

	if !ctx.Verify(m, pub, sig) {
		t.Errorf("Verify returned false for a correctly produced signature\nsig: %s", spew.Sdump(sig))
	}
}

// secp256k1 curve and base point parameters, as standardized in SEC 2.
var (
	secp256k1P, _  = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	secp256k1Q, _  = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	secp256k1Gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	secp256k1Gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
)

func secp256k1Context() *Context {
	curve := ecgroup.NewCurve(bi(0), bi(7), secp256k1P)
	g := ecgroup.NewPoint(secp256k1Gx, secp256k1Gy)
	return NewContext(curve, g, secp256k1Q)
}

// TestSignVerifyRoundTripSecp256k1 covers S12: fresh random a, k, l, m at
// cryptographic size round-trip through sign/verify.
func TestSignVerifyRoundTripSecp256k1(t *testing.T) {
	ctx := secp256k1Context()

	priv, pub, err := ctx.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: unexpected error: %v", err)
	}

	m, err := ctx.GeneratePrivateKey(rand.Reader) // any value in [1, q) serves as a digest
	if err != nil {
		t.Fatalf("generating digest: unexpected error: %v", err)
	}

	sig, err := ctx.SignWithRand(rand.Reader, m.D, priv)
	if err != nil {
		t.Fatalf("SignWithRand: unexpected error: %v", err)
	}

	if !ctx.Verify(m.D, pub, sig) {
		t.Errorf("round trip failed to verify\nsig: %s\npub: %s", spew.Sdump(sig), spew.Sdump(pub))
	}
}

// TestForgeryRejection covers property 9: altering any component of the
// signature or the digest must make verification fail.
func TestForgeryRejection(t *testing.T) {
	ctx := secp256k1Context()

	priv, pub, err := ctx.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: unexpected error: %v", err)
	}
	m, err := ctx.GeneratePrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating digest: unexpected error: %v", err)
	}
	sig, err := ctx.SignWithRand(rand.Reader, m.D, priv)
	if err != nil {
		t.Fatalf("SignWithRand: unexpected error: %v", err)
	}
	if !ctx.Verify(m.D, pub, sig) {
		t.Fatal("sanity check: genuine signature failed to verify")
	}

	tamperedT := new(big.Int).Xor(sig.T, bi(1))
	if ctx.Verify(m.D, pub, &Signature{R: sig.R, S: sig.S, T: tamperedT}) {
		t.Error("verification succeeded after tampering with t")
	}

	tamperedM := new(big.Int).Xor(m.D, bi(1))
	if ctx.Verify(tamperedM, pub, sig) {
		t.Error("verification succeeded after tampering with the digest")
	}

	otherPriv, err := ctx.GeneratePrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating second key: unexpected error: %v", err)
	}
	otherPub, err := ctx.GeneratePublicKey(otherPriv)
	if err != nil {
		t.Fatalf("generating second public key: unexpected error: %v", err)
	}
	if ctx.Verify(m.D, otherPub, sig) {
		t.Error("verification succeeded against the wrong public key")
	}

	rx, ry := sig.R.XY()
	tamperedR := ecgroup.NewPoint(new(big.Int).Xor(rx, bi(1)), ry)
	if ctx.Verify(m.D, pub, &Signature{R: tamperedR, S: sig.S, T: sig.T}) {
		t.Error("verification succeeded after tampering with r")
	}

	sx, sy := sig.S.XY()
	tamperedS := ecgroup.NewPoint(new(big.Int).Xor(sx, bi(1)), sy)
	if ctx.Verify(m.D, pub, &Signature{R: sig.R, S: tamperedS, T: sig.T}) {
		t.Error("verification succeeded after tampering with s")
	}
}

func TestVerifyRejectsIdentitySignature(t *testing.T) {
	ctx := secp256k1Context()
	priv, pub, err := ctx.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: unexpected error: %v", err)
	}
	m := bi(42)
	sig := &Signature{R: ecgroup.Identity, S: ecgroup.Identity, T: bi(1)}
	if ctx.Verify(m, pub, sig) {
		t.Error("Verify must reject a signature with an identity R/S")
	}
	_ = priv
}

func TestSignRejectsOutOfRangeScalar(t *testing.T) {
	ctx := smallContext()
	priv := &PrivateKey{D: bi(78)}
	_, err := ctx.Sign(bi(10000), priv, bi(1), bi(2))
	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrScalarOutOfRange {
		t.Errorf("Sign with out-of-range digest: got %v, want ErrScalarOutOfRange", err)
	}
}
