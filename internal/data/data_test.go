package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"binomial-pricer/internal/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadScenarios_YAML(t *testing.T) {
	path := writeFile(t, "s.yaml", `
scenarios:
  - name: atm
    contract: {spot_price: 100, volatility: 0.2, expiry_years: 1, risk_free_rate: 0.05, strike: 100, steps: 1}
  - contract: {spot_price: 90, volatility: 0.3, expiry_years: 0.5, risk_free_rate: 0.01, strike: 95, steps: 4}
`)
	sc, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	if len(sc) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(sc))
	}
	if sc[0].Name != "atm" || sc[0].Contract.Strike != 100 || sc[0].Contract.Steps != 1 {
		t.Errorf("unexpected first scenario: %+v", sc[0])
	}
	if sc[1].Name != "scenario-1" {
		t.Errorf("expected generated name scenario-1, got %q", sc[1].Name)
	}
}

func TestLoadScenarios_JSON(t *testing.T) {
	path := writeFile(t, "s.json", `{"scenarios":[{"name":"j","contract":{"spot_price":50,"volatility":0.4,"expiry_years":2,"risk_free_rate":0.03,"strike":45,"steps":6}}]}`)
	sc, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	want := model.ContractParams{SpotPrice: 50, Volatility: 0.4, ExpiryYears: 2, RiskFreeRate: 0.03, Strike: 45, Steps: 6}
	if sc[0].Contract != want {
		t.Errorf("got %+v want %+v", sc[0].Contract, want)
	}
}

func TestLoadScenarios_Errors(t *testing.T) {
	if _, err := LoadScenarios(writeFile(t, "s.txt", "x")); err == nil {
		t.Error("expected error for unknown extension")
	}
	if _, err := LoadScenarios(writeFile(t, "empty.yaml", "scenarios: []\n")); err == nil {
		t.Error("expected error for empty scenario list")
	}
	if _, err := LoadScenarios(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadScenarios(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestQuoteCache(t *testing.T) {
	c := NewQuoteCache(time.Hour)
	defer c.Close()

	q := &model.Quote{ID: "abc", Price: 1.5}
	if _, ok := c.Get("abc"); ok {
		t.Fatal("expected miss before Set")
	}
	c.Set("abc", q)
	got, ok := c.Get("abc")
	if !ok || got != q {
		t.Fatalf("expected hit; got %v %v", got, ok)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
}

func TestQuoteCache_Expiry(t *testing.T) {
	c := NewQuoteCache(time.Hour)
	defer c.Close()

	c.Set("k", &model.Quote{ID: "k"})
	c.mu.Lock()
	c.store["k"].ExpiresAt = time.Now().Add(-time.Second)
	c.mu.Unlock()

	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
	c.evictExpired(time.Now())
	if c.Len() != 0 {
		t.Errorf("expected eviction, got %d entries", c.Len())
	}
}

func TestQuoteCache_NilIsEmpty(t *testing.T) {
	var c *QuoteCache
	c.Set("k", &model.Quote{})
	if _, ok := c.Get("k"); ok {
		t.Error("nil cache should never hit")
	}
	c.Clear()
	c.Close()
	if c.Len() != 0 {
		t.Error("nil cache should be empty")
	}
}

func TestGenerateQuoteKey(t *testing.T) {
	p := model.ContractParams{SpotPrice: 100, Volatility: 0.2, ExpiryYears: 1, RiskFreeRate: 0.05, Strike: 100, Steps: 3}
	a := GenerateQuoteKey(model.RepresentationFlat, p)
	if a != GenerateQuoteKey(model.RepresentationFlat, p) {
		t.Error("key should be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a == GenerateQuoteKey(model.RepresentationRecombining, p) {
		t.Error("representation should change the key")
	}
	p.Steps = 4
	if a == GenerateQuoteKey(model.RepresentationFlat, p) {
		t.Error("steps should change the key")
	}
}

func TestLoadScenarios_ShippedExample(t *testing.T) {
	sc, err := LoadScenarios(filepath.Join("..", "..", "examples", "scenarios.yaml"))
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	if len(sc) != 4 {
		t.Fatalf("expected 4 scenarios, got %d", len(sc))
	}
	for _, s := range sc {
		if err := s.Contract.Validate(); err != nil {
			t.Errorf("%s: %v", s.Name, err)
		}
	}
}
