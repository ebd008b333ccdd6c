// Package ecvrf implements the classical hash-to-curve VRF construction
// (Dodis-Yampolskiy / IETF-draft style), specialized to edwards25519: this
// package is hard-wired to one curve rather than generic over
// group.Adapter, per the design note that EC-VRF need not be generic
// while RKA-VRF (crypto/rkavrf) is.
package ecvrf

import (
	"crypto/sha512"

	"github.com/dyvrf/vrfcore/crypto/group"
	ed25519group "github.com/dyvrf/vrfcore/crypto/group/edwards25519"
)

// Output is the result of an EC-VRF evaluation: the VRF proof (Gamma, C, S)
// together with the 64-byte pseudorandom output Y.
type Output struct {
	Gamma group.Point
	C     group.Scalar
	S     group.Scalar
	Y     [64]byte
}

var adapter = ed25519group.New()

// hashChallenge derives the Fiat-Shamir challenge from the fixed, published
// ordering g, h, vk, gamma, gk, hk. This ordering must never change: it is
// what makes proofs produced by one implementation verify in another.
func hashChallenge(g, h, vk, gamma, gk, hk group.Point) group.Scalar {
	return adapter.HashToScalar(group.ConcatPoints(g, h, vk, gamma, gk, hk))
}

func hashOutput(gamma group.Point) [64]byte {
	return sha512.Sum512(gamma.CofactorMul().Bytes())
}

// Eval computes the EC-VRF output and proof for input x under secret key
// sk, whose corresponding public key is vk. The caller must ensure sk is
// nonzero; a zero secret key is not rejected here (vk and Gamma are then
// both the identity, and the resulting output still passes Verify).
func Eval(vk group.Point, sk group.Scalar, x group.Scalar) (*Output, error) {
	g := adapter.Generator()

	h := adapter.HashToPoint(x.Bytes())
	gamma := h.ScalarMult(sk)

	k, err := adapter.RandomScalar()
	if err != nil {
		return nil, err
	}

	gk := adapter.ScalarBaseMult(k)
	hk := h.ScalarMult(k)

	c := hashChallenge(g, h, vk, gamma, gk, hk)
	s := k.Sub(c.Multiply(sk))

	return &Output{Gamma: gamma, C: c, S: s, Y: hashOutput(gamma)}, nil
}

// Verify reports whether o is a valid EC-VRF proof for input x under
// public key vk.
func (o *Output) Verify(vk group.Point, x group.Scalar) bool {
	g := adapter.Generator()

	u := vk.ScalarMult(o.C).Add(adapter.ScalarBaseMult(o.S))

	h := adapter.HashToPoint(x.Bytes())
	v := o.Gamma.ScalarMult(o.C).Add(h.ScalarMult(o.S))

	cPrime := hashChallenge(g, h, vk, o.Gamma, u, v)

	return cPrime.Equal(o.C) && hashOutput(o.Gamma) == o.Y
}

// New returns the edwards25519 group.Adapter this package is hard-wired
// to, for callers that need to construct keys and inputs (e.g. via
// RandomScalar, ScalarBaseMult) without importing the group/edwards25519
// package directly.
func New() group.Adapter { return adapter }
