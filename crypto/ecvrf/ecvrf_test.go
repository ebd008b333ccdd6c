package ecvrf

import (
	"testing"

	"github.com/dyvrf/vrfcore/crypto/group"
)

func randomKeypair(t *testing.T) (group.Scalar, group.Point) {
	t.Helper()
	sk, err := adapter.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	vk := adapter.ScalarBaseMult(sk)
	return sk, vk
}

// A fresh random key and input round-trips through Eval/Verify, repeated
// many times.
func TestCompleteness(t *testing.T) {
	for i := 0; i < 1000; i++ {
		sk, vk := randomKeypair(t)
		x, err := adapter.RandomScalar()
		if err != nil {
			t.Fatal(err)
		}

		out, err := Eval(vk, sk, x)
		if err != nil {
			t.Fatal(err)
		}
		if !out.Verify(vk, x) {
			t.Fatalf("iteration %d: valid output failed to verify", i)
		}
	}
}

// Evaluating twice on the same (sk, x) yields identical Y but
// different C, S (since a fresh nonce k is drawn each time).
func TestOutputDeterminism(t *testing.T) {
	sk, vk := randomKeypair(t)
	x, err := adapter.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	out1, err := Eval(vk, sk, x)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := Eval(vk, sk, x)
	if err != nil {
		t.Fatal(err)
	}

	if out1.Y != out2.Y {
		t.Fatal("Y should be deterministic across independent evaluations")
	}
	if out1.C.Equal(out2.C) {
		t.Fatal("C should differ across independent evaluations (fresh nonce)")
	}
	if out1.S.Equal(out2.S) {
		t.Fatal("S should differ across independent evaluations (fresh nonce)")
	}
}

// Corrupting any single field of a valid output breaks verification.
func TestSoundnessSpotChecks(t *testing.T) {
	sk, vk := randomKeypair(t)
	x, err := adapter.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	out, err := Eval(vk, sk, x)
	if err != nil {
		t.Fatal(err)
	}

	delta, err := adapter.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	corrupt := func(mutate func(*Output)) bool {
		cp := *out
		mutate(&cp)
		return cp.Verify(vk, x)
	}

	if corrupt(func(o *Output) { o.Gamma = o.Gamma.Add(adapter.Generator()) }) {
		t.Error("corrupting Gamma should fail verification")
	}
	if corrupt(func(o *Output) { o.C = o.C.Add(delta) }) {
		t.Error("corrupting C should fail verification")
	}
	if corrupt(func(o *Output) { o.S = o.S.Add(delta) }) {
		t.Error("corrupting S should fail verification")
	}
	if corrupt(func(o *Output) { o.Y[0] ^= 0xff }) {
		t.Error("corrupting Y should fail verification")
	}
}

// Verification must be bound to both the claimed key and input.
func TestWrongKeyAndInputRejected(t *testing.T) {
	sk, vk := randomKeypair(t)
	x, err := adapter.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	out, err := Eval(vk, sk, x)
	if err != nil {
		t.Fatal(err)
	}

	_, otherVK := randomKeypair(t)
	if out.Verify(otherVK, x) {
		t.Error("verification should fail against the wrong public key")
	}

	otherX, err := adapter.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	if out.Verify(vk, otherX) {
		t.Error("verification should fail against the wrong input")
	}
}

// The zero scalar is a valid, if distinguished, EC-VRF input: this
// construction leaves x = 0 un-special-cased.
func TestZeroInputAccepted(t *testing.T) {
	sk, vk := randomKeypair(t)
	zero := adapter.HashToScalar(nil).Sub(adapter.HashToScalar(nil))

	out, err := Eval(vk, sk, zero)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Verify(vk, zero) {
		t.Fatal("zero input should produce a verifiable output")
	}
}
