package invproof

import (
	"testing"

	"github.com/dyvrf/vrfcore/crypto/group"
	ed25519group "github.com/dyvrf/vrfcore/crypto/group/edwards25519"
	p256group "github.com/dyvrf/vrfcore/crypto/group/p256"
)

func adapters() map[string]group.Adapter {
	return map[string]group.Adapter{
		"edwards25519": ed25519group.New(),
		"p256":         p256group.New(),
	}
}

func mustProof(t *testing.T, g group.Adapter) (*Proof, group.Point, group.Point, group.Point, group.Point, group.Point, group.Point) {
	t.Helper()

	gTilde, hTilde := group.GenerateCRS(g, "invproof-test")

	gamma, err := g.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	gammaInv, err := gamma.Invert()
	if err != nil {
		t.Fatal(err)
	}

	gen := g.Generator()
	h := g.BasePoint2()
	delta := gen.ScalarMult(gamma)
	theta := h.ScalarMult(gammaInv)

	pf, err := Prove(g, gen, h, gTilde, hTilde, gamma, delta, theta)
	if err != nil {
		t.Fatal(err)
	}
	return pf, gen, h, gTilde, hTilde, delta, theta
}

func TestCompleteness(t *testing.T) {
	for name, g := range adapters() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				pf, gen, h, gTilde, hTilde, delta, theta := mustProof(t, g)
				if !pf.Verify(g, gen, h, gTilde, hTilde, delta, theta) {
					t.Fatal("valid proof failed to verify")
				}
			}
		})
	}
}

func TestZeroGammaFails(t *testing.T) {
	for name, g := range adapters() {
		t.Run(name, func(t *testing.T) {
			gTilde, hTilde := group.GenerateCRS(g, "invproof-test-zero")
			gen := g.Generator()
			h := g.BasePoint2()

			zero := g.HashToScalar(nil).Sub(g.HashToScalar(nil))
			if _, err := Prove(g, gen, h, gTilde, hTilde, zero, gen, h); err != group.ErrZeroScalar {
				t.Fatalf("expected ErrZeroScalar, got %v", err)
			}
		})
	}
}

func TestSoundnessSpotChecks(t *testing.T) {
	for name, g := range adapters() {
		t.Run(name, func(t *testing.T) {
			pf, gen, h, gTilde, hTilde, delta, theta := mustProof(t, g)

			other, err := g.RandomScalar()
			if err != nil {
				t.Fatal(err)
			}

			corrupt := func(mutate func(*Proof)) bool {
				cp := *pf
				mutate(&cp)
				return cp.Verify(g, gen, h, gTilde, hTilde, delta, theta)
			}

			if corrupt(func(p *Proof) { p.Zt = p.Zt.Add(other) }) {
				t.Error("corrupting Zt should fail verification")
			}
			if corrupt(func(p *Proof) { p.Zl = p.Zl.Add(other) }) {
				t.Error("corrupting Zl should fail verification")
			}
			if corrupt(func(p *Proof) { p.Zr = p.Zr.Add(other) }) {
				t.Error("corrupting Zr should fail verification")
			}
			if corrupt(func(p *Proof) { p.X = p.X.Add(other) }) {
				t.Error("corrupting X should fail verification")
			}
			if corrupt(func(p *Proof) { p.T1 = p.T1.Add(gen) }) {
				t.Error("corrupting T1 should fail verification")
			}
		})
	}
}

func TestWrongDeltaThetaRejected(t *testing.T) {
	for name, g := range adapters() {
		t.Run(name, func(t *testing.T) {
			pf, gen, h, gTilde, hTilde, delta, theta := mustProof(t, g)

			otherGamma, err := g.RandomScalar()
			if err != nil {
				t.Fatal(err)
			}
			wrongDelta := gen.ScalarMult(otherGamma)

			if pf.Verify(g, gen, h, gTilde, hTilde, wrongDelta, theta) {
				t.Error("proof should not verify against a different delta")
			}

			wrongTheta := h.ScalarMult(otherGamma)
			if pf.Verify(g, gen, h, gTilde, hTilde, delta, wrongTheta) {
				t.Error("proof should not verify against a different theta")
			}
			_ = delta
		})
	}
}
