package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func valid() ContractParams {
	return ContractParams{SpotPrice: 100, Volatility: 0.2, ExpiryYears: 1, RiskFreeRate: 0.05, Strike: 100, Steps: 1}
}

func TestFactors_SingleStep(t *testing.T) {
	f := valid().Factors()
	if f.Dt != 1 {
		t.Errorf("dt: got %v", f.Dt)
	}
	if math.Abs(f.Up-1.2) > 1e-15 || math.Abs(f.Down-0.8) > 1e-15 {
		t.Errorf("up/down: got %v/%v", f.Up, f.Down)
	}
	if math.Abs(f.ProbUp-0.625) > 1e-15 {
		t.Errorf("prob_up: got %v", f.ProbUp)
	}
	if f.Discount != math.Exp(-0.05) {
		t.Errorf("discount: got %v", f.Discount)
	}
}

func TestValidate_FirstOffenderIsNamed(t *testing.T) {
	c := valid()
	c.Steps = 0
	c.Strike = -1
	err := c.Validate()
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected *InvalidParameterError, got %v", err)
	}
	if ipe.Param != "steps" {
		t.Errorf("expected steps first, got %q", ipe.Param)
	}
	if !strings.Contains(err.Error(), "steps=0") {
		t.Errorf("message should carry the value: %v", err)
	}
}

func TestValidate_AcceptsNegativeRate(t *testing.T) {
	c := valid()
	c.RiskFreeRate = -0.01
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIntrinsic(t *testing.T) {
	if Intrinsic(120, 100) != 20 {
		t.Error("in the money")
	}
	if Intrinsic(100, 100) != 0 || Intrinsic(80, 100) != 0 {
		t.Error("at or out of the money must floor at 0")
	}
}

func TestResourceExhaustionError(t *testing.T) {
	err := error(&ResourceExhaustionError{Representation: RepresentationFlat, Steps: 30, MaxSteps: 20})
	if !errors.Is(err, ErrResourceExhausted) || errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("sentinel matching is wrong for %v", err)
	}
	if err.Error() != "steps=30 exceeds the flat lattice limit of 20" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestParseRepresentation(t *testing.T) {
	for in, want := range map[string]Representation{"": RepresentationFlat, "flat": RepresentationFlat, "recombining": RepresentationRecombining} {
		got, err := ParseRepresentation(in)
		if err != nil || got != want {
			t.Errorf("%q: got %q, %v", in, got, err)
		}
	}
	if _, err := ParseRepresentation("trinomial"); err == nil {
		t.Error("expected error for unknown representation")
	}
	if RepresentationFlat.StepCeiling() != MaxFlatSteps || RepresentationRecombining.DefaultMaxSteps() != DefaultRecombiningSteps {
		t.Error("unexpected caps")
	}
}
