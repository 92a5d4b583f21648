package errors

import "testing"

func TestValidateRatio(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"interior", 0.3, false},
		{"negative", -0.01, true},
		{"above one", 1.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatio("percent_to_settle", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatio(%g) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidScenario) {
				t.Errorf("error code = %q, want INVALID_SCENARIO", GetCode(err))
			}
		})
	}
}

func TestValidateDensity(t *testing.T) {
	if err := ValidateDensity("settled_density", 120); err != nil {
		t.Errorf("ValidateDensity(120) error = %v", err)
	}
	if err := ValidateDensity("settled_density", 0); err == nil {
		t.Error("ValidateDensity(0) should fail: zero density divides by zero")
	}
	if err := ValidateDensity("base_density", -5); err == nil {
		t.Error("ValidateDensity(-5) should fail")
	}
}

func TestValidateDepth(t *testing.T) {
	if err := ValidateDepth("cut_depth", 0); err != nil {
		t.Errorf("ValidateDepth(0) error = %v", err)
	}
	if err := ValidateDepth("cut_depth", -0.1); err == nil {
		t.Error("ValidateDepth(-0.1) should fail")
	}
}

func TestValidateCellCount(t *testing.T) {
	for _, n := range []int{1, 50, 10000} {
		if err := ValidateCellCount(n); err != nil {
			t.Errorf("ValidateCellCount(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{0, -1, 10001} {
		if err := ValidateCellCount(n); err == nil {
			t.Errorf("ValidateCellCount(%d) should fail", n)
		}
	}
}

func TestValidateMassLimit(t *testing.T) {
	if err := ValidateMassLimit(0); err != nil {
		t.Errorf("ValidateMassLimit(0) error = %v", err)
	}
	if err := ValidateMassLimit(-0.01); err == nil {
		t.Error("ValidateMassLimit(-0.01) should fail")
	}
}
