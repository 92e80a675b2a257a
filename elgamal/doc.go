// Copyright (c) 2024 The ecgroup developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package elgamal implements the two-nonce ElGamal-like elliptic-curve
signature scheme described in Kiran & Chandrasekhar (arXiv:1301.2335), built
on top of the field and curve primitives in github.com/ModChain/ecgroup.

A Context bundles the curve, generator and subgroup order the scheme
operates over. Key generation, signing and verification are methods on
Context. Message digests are supplied by the caller already reduced modulo
the subgroup order — this package does not hash anything, and it does not
generate randomness on its own beyond what is handed to it through an
io.Reader, matching the collaborator boundaries of the core ecgroup package.
*/
package elgamal
