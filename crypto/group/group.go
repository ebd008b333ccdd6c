// Package group defines the abstract elliptic-curve group operations that
// the VRF and inversion-proof packages are built on. Each concrete curve
// gets its own sub-package (group/edwards25519, group/p256) implementing
// the Adapter interface; callers pick one and pass it through.
package group

import (
	"errors"
	"math/big"
)

// ErrZeroScalar is returned when a caller attempts to invert the zero
// scalar, which has no multiplicative inverse.
var ErrZeroScalar = errors.New("group: cannot invert zero scalar")

// Scalar is an element of the field Z_q, where q is the order of the group.
type Scalar interface {
	Add(other Scalar) Scalar
	Sub(other Scalar) Scalar
	Multiply(other Scalar) Scalar
	Negate() Scalar

	// Invert returns the multiplicative inverse of the scalar, or
	// ErrZeroScalar if the scalar is zero.
	Invert() (Scalar, error)

	// Bytes returns the scalar's canonical encoding.
	Bytes() []byte

	// BigInt returns the scalar as an unsigned big-endian integer, used
	// only where the protocol's output is itself specified as an integer
	// (RKA-VRF's y).
	BigInt() *big.Int

	Equal(other Scalar) bool
}

// Point is an element of the prime-order group G.
type Point interface {
	Add(other Point) Point
	Negate() Point
	ScalarMult(s Scalar) Point

	// CofactorMul multiplies the point by the group's cofactor. On
	// prime-order curves (cofactor 1) this is a no-op.
	CofactorMul() Point

	// Bytes returns the point's canonical compressed encoding. Two equal
	// points always yield identical bytes.
	Bytes() []byte

	Equal(other Point) bool
}

// Adapter is the narrow interface both VRF constructions are built on: it
// supplies the group's generator, a second nothing-up-my-sleeve generator,
// uniform scalar sampling, and the two hash functions
// (hash-to-scalar for Fiat-Shamir challenges, hash-to-curve for VRF inputs).
type Adapter interface {
	// Name identifies the concrete curve.
	Name() string

	// Generator returns the fixed group generator g.
	Generator() Point

	// BasePoint2 returns a second generator h2, provably independent of g
	// (no known discrete-log relation). Used by the inversion-proof
	// completeness tests and optionally by callers building a CRS.
	BasePoint2() Point

	// ScalarBaseMult computes g*s.
	ScalarBaseMult(s Scalar) Point

	// RandomScalar draws a scalar uniformly from Z_q using a CSPRNG.
	RandomScalar() (Scalar, error)

	// ScalarFromBytes decodes a scalar from its canonical encoding.
	ScalarFromBytes(b []byte) (Scalar, error)

	// PointFromBytes decodes a point from its canonical compressed
	// encoding. Implementations reject points that are off-curve or in a
	// small subgroup.
	PointFromBytes(b []byte) (Point, error)

	// HashToScalar hashes an arbitrary-length transcript to a scalar,
	// used to derive Fiat-Shamir challenges.
	HashToScalar(transcript []byte) Scalar

	// HashToPoint hashes an arbitrary-length transcript to a group
	// element, used to derive VRF inputs.
	HashToPoint(transcript []byte) Point
}

// GenerateCRS derives a pair of independent generators (g~, h~) for use as
// an RKA-VRF common reference string, by hashing two fixed, distinct
// domain-separation strings. This is the same nothing-up-my-sleeve
// technique used for Adapter.BasePoint2, suitable for tests and for
// callers who don't have a dedicated trusted-setup ceremony.
func GenerateCRS(g Adapter, domain string) (gTilde, hTilde Point) {
	gTilde = g.HashToPoint([]byte(domain + "/g-tilde"))
	hTilde = g.HashToPoint([]byte(domain + "/h-tilde"))
	return
}

// ConcatPoints concatenates the compressed encodings of points in the given
// order, with no separators or length prefixes. This is the transcript
// encoding used throughout the InversionProof and VRF Fiat-Shamir
// challenges; the argument order is load-bearing, see the callers.
func ConcatPoints(points ...Point) []byte {
	var out []byte
	for _, p := range points {
		out = append(out, p.Bytes()...)
	}
	return out
}
