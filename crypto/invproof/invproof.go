// Package invproof implements the InversionProof sigma protocol: a
// Fiat-Shamir-compiled zero-knowledge argument that, given public points
// delta = g*gamma and theta = h*gamma^-1, the prover knows the scalar
// gamma linking them, without revealing gamma.
//
// RKA-VRF (crypto/rkavrf) composes this proof; it is also useful on its
// own, which is why it is verified directly in this package's tests.
package invproof

import (
	"github.com/dyvrf/vrfcore/crypto/group"
)

// Proof is a non-interactive InversionProof. T0 is intentionally not
// stored: the verifier reconstructs it from the algebraic identity
// zl*zr - x^2 = t0 + x*t1, and both prover and verifier re-derive the
// Fiat-Shamir challenge from that reconstructed value.
type Proof struct {
	Zt, Zl, Zr group.Scalar
	X          group.Scalar
	T1         group.Point
}

// challenge computes the Fiat-Shamir hash over the fixed, published point
// ordering: g, h, g~, h~, delta, theta, s1, s2, T0, T1. Reordering this
// concatenation would silently change which proofs verify, so every
// caller (Prove and Verify) must build it identically.
func challenge(g group.Adapter, gen, h, gTilde, hTilde, delta, theta, s1, s2, t0, t1 group.Point) group.Scalar {
	transcript := group.ConcatPoints(gen, h, gTilde, hTilde, delta, theta, s1, s2, t0, t1)
	return g.HashToScalar(transcript)
}

// Prove constructs an InversionProof that delta = gen*gamma and
// theta = h*gamma^-1, for the given public parameters (gen, h, gTilde,
// hTilde) and secret gamma.
func Prove(g group.Adapter, gen, h, gTilde, hTilde group.Point, gamma group.Scalar, delta, theta group.Point) (*Proof, error) {
	gammaInv, err := gamma.Invert()
	if err != nil {
		return nil, err
	}

	alpha, err := g.RandomScalar()
	if err != nil {
		return nil, err
	}
	beta, err := g.RandomScalar()
	if err != nil {
		return nil, err
	}
	tau0, err := g.RandomScalar()
	if err != nil {
		return nil, err
	}
	tau1, err := g.RandomScalar()
	if err != nil {
		return nil, err
	}

	s1 := gen.ScalarMult(alpha)
	s2 := h.ScalarMult(beta)

	t0 := alpha.Multiply(beta)
	t1 := alpha.Multiply(gammaInv).Add(beta.Multiply(gamma))

	t0Point := gTilde.ScalarMult(t0).Add(hTilde.ScalarMult(tau0))
	t1Point := gTilde.ScalarMult(t1).Add(hTilde.ScalarMult(tau1))

	x := challenge(g, gen, h, gTilde, hTilde, delta, theta, s1, s2, t0Point, t1Point)

	zt := tau1.Multiply(x).Add(tau0)
	zl := alpha.Add(x.Multiply(gamma))
	zr := beta.Add(x.Multiply(gammaInv))

	return &Proof{Zt: zt, Zl: zl, Zr: zr, X: x, T1: t1Point}, nil
}

// Verify reports whether pf is a valid InversionProof for the claim that
// delta and theta commit to a common gamma and its inverse, under the
// given public parameters.
func (pf *Proof) Verify(g group.Adapter, gen, h, gTilde, hTilde, delta, theta group.Point) bool {
	negX := pf.X.Negate()

	t0Point := gTilde.ScalarMult(pf.Zl.Multiply(pf.Zr).Sub(pf.X.Multiply(pf.X))).
		Add(hTilde.ScalarMult(pf.Zt)).
		Add(pf.T1.ScalarMult(negX))

	s1 := gen.ScalarMult(pf.Zl).Add(delta.ScalarMult(negX))
	s2 := h.ScalarMult(pf.Zr).Add(theta.ScalarMult(negX))

	xPrime := challenge(g, gen, h, gTilde, hTilde, delta, theta, s1, s2, t0Point, pf.T1)

	return xPrime.Equal(pf.X)
}
