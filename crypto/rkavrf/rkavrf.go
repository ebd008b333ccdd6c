// Package rkavrf implements the related-key-attack-resistant VRF: a
// Dodis-Yampolskiy-style evaluation u = H(vk,x)^(1/sk), proved correct with
// an invproof.Proof certifying that u and vk commit to inverse scalars.
//
// Unlike crypto/ecvrf, this construction is generic over group.Adapter
// (the design note in the original source calls for the RKA-VRF to work
// over any prime-order group, while leaving EC-VRF hard-wired to one
// curve), so it is exercised against both group/edwards25519 and
// group/p256 in this package's tests.
package rkavrf

import (
	"math/big"

	"github.com/dyvrf/vrfcore/crypto/group"
	"github.com/dyvrf/vrfcore/crypto/invproof"
)

// Output is the result of an RKA-VRF evaluation: the pseudorandom output
// Y, the commitment U, and the InversionProof certifying that U was
// correctly derived under the secret key matching the public key vk.
type Output struct {
	Y *big.Int
	U group.Point
	R *invproof.Proof
}

// hashToGroup derives the VRF's base point from the public key and input,
// following the fixed ordering vk, x.
func hashToGroup(g group.Adapter, vk, x group.Point) group.Point {
	return g.ScalarBaseMult(g.HashToScalar(group.ConcatPoints(vk, x)))
}

// hashOutput derives the VRF output from the fixed ordering x, u.
func hashOutput(g group.Adapter, x, u group.Point) *big.Int {
	return g.HashToScalar(group.ConcatPoints(x, u)).BigInt()
}

// Eval computes the RKA-VRF output and proof for input x under secret key
// sk, whose corresponding public key is vk, using the common reference
// string (gTilde, hTilde).
func Eval(g group.Adapter, gTilde, hTilde, vk group.Point, sk group.Scalar, x group.Point) (*Output, error) {
	skInv, err := sk.Invert()
	if err != nil {
		return nil, err
	}

	base := hashToGroup(g, vk, x)
	u := base.ScalarMult(skInv)

	proof, err := invproof.Prove(g, g.Generator(), base, gTilde, hTilde, sk, vk, u)
	if err != nil {
		return nil, err
	}

	return &Output{Y: hashOutput(g, x, u), U: u, R: proof}, nil
}

// Verify reports whether o is a valid RKA-VRF output for input x under
// public key vk and common reference string (gTilde, hTilde).
func (o *Output) Verify(g group.Adapter, gTilde, hTilde, vk, x group.Point) bool {
	base := hashToGroup(g, vk, x)

	if hashOutput(g, x, o.U).Cmp(o.Y) != 0 {
		return false
	}
	return o.R.Verify(g, g.Generator(), base, gTilde, hTilde, vk, o.U)
}
