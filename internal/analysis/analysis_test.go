package analysis

import (
	"errors"
	"math"
	"testing"

	"binomial-pricer/internal/lattice"
	"binomial-pricer/internal/model"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func referenceContract() model.ContractParams {
	return model.ContractParams{SpotPrice: 100, Volatility: 0.2, ExpiryYears: 1, RiskFreeRate: 0.05, Strike: 100, Steps: 1}
}

func TestBlackScholesCall_ReferenceCase(t *testing.T) {
	// S=100,K=100,r=0.05,sigma=0.2,T=1 → Call≈10.4505835722
	got := BlackScholesCall(referenceContract())
	if !almostEqual(got, 10.450583572185565, 1e-9) {
		t.Fatalf("call price mismatch: got=%v", got)
	}
}

func TestDeterministicForward(t *testing.T) {
	c := referenceContract()
	c.SpotPrice = 120
	want := 120 - 100*math.Exp(-0.05)
	if got := DeterministicForward(c); !almostEqual(got, want, 1e-12) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	c.SpotPrice = 50
	if got := DeterministicForward(c); got != 0 {
		t.Fatalf("expected 0 out of the money, got %v", got)
	}
}

func TestConvergence_ErrorShrinks(t *testing.T) {
	pricer := &lattice.LatticePricer{Representation: model.RepresentationRecombining}
	rep, err := Convergence(referenceContract(), []int{1, 10, 100, 1000}, pricer)
	if err != nil {
		t.Fatalf("convergence err: %v", err)
	}
	if len(rep.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(rep.Points))
	}
	if rep.Pricer != "recombining" {
		t.Errorf("expected pricer name recombining, got %q", rep.Pricer)
	}
	first := rep.Points[0].AbsError
	last := rep.Points[len(rep.Points)-1].AbsError
	if last >= first {
		t.Errorf("expected error to shrink: first=%v last=%v", first, last)
	}
	if last > 0.01 {
		t.Errorf("expected 1000-step error below 0.01, got %v", last)
	}
	if rep.MaxAbsError != first {
		t.Errorf("expected max error %v, got %v", first, rep.MaxAbsError)
	}
	if rep.MeanAbsError <= 0 || rep.MeanAbsError > rep.MaxAbsError {
		t.Errorf("mean error out of range: %v", rep.MeanAbsError)
	}
}

func TestConvergence_FlatAndRecombiningAgree(t *testing.T) {
	steps := DoublingSteps(16)
	flat, err := Convergence(referenceContract(), steps, &lattice.LatticePricer{})
	if err != nil {
		t.Fatalf("flat: %v", err)
	}
	rec, err := Convergence(referenceContract(), steps, &lattice.LatticePricer{Representation: model.RepresentationRecombining})
	if err != nil {
		t.Fatalf("recombining: %v", err)
	}
	for i := range steps {
		if !almostEqual(flat.Points[i].Lattice, rec.Points[i].Lattice, 1e-9) {
			t.Errorf("steps=%d: flat=%v recombining=%v", steps[i], flat.Points[i].Lattice, rec.Points[i].Lattice)
		}
	}
}

func TestConvergence_PropagatesPricerErrors(t *testing.T) {
	_, err := Convergence(referenceContract(), []int{2, 64}, &lattice.LatticePricer{})
	if !errors.Is(err, model.ErrResourceExhausted) {
		t.Fatalf("expected ErrResourceExhausted, got %v", err)
	}
	if _, err := Convergence(referenceContract(), nil, &lattice.LatticePricer{}); err == nil {
		t.Fatal("expected error for empty step list")
	}
	if _, err := Convergence(referenceContract(), []int{1}, nil); err == nil {
		t.Fatal("expected error for nil pricer")
	}
}

func TestDoublingSteps(t *testing.T) {
	got := DoublingSteps(20)
	want := []int{1, 2, 4, 8, 16}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
