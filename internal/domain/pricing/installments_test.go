package pricing

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestInstallments_TableShape(t *testing.T) {
	options := Installments(1000)
	if len(options) != MaxInstallments {
		t.Fatalf("expected %d options, got %d", MaxInstallments, len(options))
	}
	for i, opt := range options {
		if opt.Count != i+1 {
			t.Fatalf("expected count %d at index %d, got %d", i+1, i, opt.Count)
		}
	}
}

func TestInstallments_InterestFreeTier(t *testing.T) {
	base := 750.30
	options := Installments(base)
	for _, opt := range options[:3] {
		if !opt.InterestFree {
			t.Fatalf("count %d should be interest free", opt.Count)
		}
		if !almostEqual(opt.TotalValue, base) {
			t.Fatalf("count %d total = %v, want %v", opt.Count, opt.TotalValue, base)
		}
		if !almostEqual(opt.Value, base/float64(opt.Count)) {
			t.Fatalf("count %d value = %v, want %v", opt.Count, opt.Value, base/float64(opt.Count))
		}
		if opt.InterestRate != 0 || opt.InterestAmount != 0 {
			t.Fatalf("count %d should report no interest: %+v", opt.Count, opt)
		}
	}
}

func TestInstallments_InterestTiers(t *testing.T) {
	base := 1234.56
	options := Installments(base)

	for _, opt := range options[3:6] {
		want := base*1.0349 + 0.49
		if opt.InterestFree {
			t.Fatalf("count %d should not be interest free", opt.Count)
		}
		if !almostEqual(opt.TotalValue, want) {
			t.Fatalf("count %d total = %v, want %v", opt.Count, opt.TotalValue, want)
		}
		if !almostEqual(opt.InterestAmount, want-base) {
			t.Fatalf("count %d interest = %v, want %v", opt.Count, opt.InterestAmount, want-base)
		}
		if opt.InterestRate != 0.0349 {
			t.Fatalf("count %d rate = %v, want 0.0349", opt.Count, opt.InterestRate)
		}
	}

	for _, opt := range options[6:] {
		want := base*1.0399 + 0.49
		if !almostEqual(opt.TotalValue, want) {
			t.Fatalf("count %d total = %v, want %v", opt.Count, opt.TotalValue, want)
		}
		if !almostEqual(opt.Value, want/float64(opt.Count)) {
			t.Fatalf("count %d value = %v, want %v", opt.Count, opt.Value, want/float64(opt.Count))
		}
		if opt.InterestRate != 0.0399 {
			t.Fatalf("count %d rate = %v, want 0.0399", opt.Count, opt.InterestRate)
		}
	}
}

func TestInstallments_ReferenceValues(t *testing.T) {
	options := Installments(1000)

	if !almostEqual(options[0].TotalValue, 1000) {
		t.Fatalf("1x total = %v, want 1000", options[0].TotalValue)
	}
	// 4x: 1000*1.0349 + 0.49 = 1035.39
	if math.Abs(options[3].TotalValue-1035.39) > 0.005 {
		t.Fatalf("4x total = %v, want ~1035.39", options[3].TotalValue)
	}
	// 12x: 1000*1.0399 + 0.49 = 1040.39
	if math.Abs(options[11].TotalValue-1040.39) > 0.005 {
		t.Fatalf("12x total = %v, want ~1040.39", options[11].TotalValue)
	}
}

func TestInstallments_Deterministic(t *testing.T) {
	a := Installments(987.65)
	b := Installments(987.65)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("option %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
