package goal

import (
	"errors"
	"math"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name       string
		op         Operator
		percentage float64
		success    *bool
		want       Status
	}{
		{"greater zero", GreaterThan, 0, nil, StatusVeryLow},
		{"greater just below 0.3", GreaterThanOrEqual, 0.29, nil, StatusVeryLow},
		{"greater at 0.3", GreaterThanOrEqual, 0.3, nil, StatusLow},
		{"greater at 0.7", GreaterThan, 0.7, nil, StatusAverage},
		{"greater at 0.9", GreaterThan, 0.9, nil, StatusHigh},
		{"greater at 0.95", GreaterThanOrEqual, 0.95, nil, StatusHigh},
		{"greater at 1.0", GreaterThanOrEqual, 1.0, nil, StatusVeryHigh},
		{"greater far above", GreaterThan, 4.2, nil, StatusVeryHigh},

		{"less zero", LessThan, 0, nil, StatusVeryHigh},
		{"less just below 0.9", LessThanOrEqual, 0.89, nil, StatusVeryHigh},
		{"less at 0.9", LessThanOrEqual, 0.9, nil, StatusHigh},
		{"less at 1.0", LessThan, 1.0, nil, StatusHigh},
		{"less at 1.05", LessThanOrEqual, 1.05, nil, StatusAverage},
		{"less at 1.1", LessThanOrEqual, 1.1, nil, StatusAverage},
		{"less at 1.5", LessThan, 1.5, nil, StatusLow},
		{"less above 1.5", LessThan, 1.51, nil, StatusVeryLow},

		{"equal exact", Equal, 1.0, nil, StatusHigh},
		{"equal at 0.9", Equal, 0.9, nil, StatusHigh},
		{"equal at 1.1", Equal, 1.1, nil, StatusHigh},
		{"equal at 0.8", Equal, 0.8, nil, StatusAverage},
		{"equal at 1.2", Equal, 1.2, nil, StatusAverage},
		{"equal at 1.25 failed", Equal, 1.25, boolPtr(false), StatusLow},
		{"equal at 0.7", Equal, 0.7, nil, StatusLow},
		{"equal at 1.3", Equal, 1.3, nil, StatusLow},
		{"equal far below", Equal, 0.5, nil, StatusVeryLow},
		{"equal far above", Equal, 2, nil, StatusVeryLow},
		{"equal success at zero", Equal, 0, boolPtr(true), StatusVeryHigh},
		{"equal success far above", Equal, 3, boolPtr(true), StatusVeryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.op, tt.percentage, tt.success)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Classify(%s, %v) = %s, want %s", tt.op, tt.percentage, got, tt.want)
			}
		})
	}
}

func TestClassifyNaNDegradesToVeryLow(t *testing.T) {
	for _, op := range []Operator{GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual, Equal} {
		got, err := Classify(op, math.NaN(), nil)
		if err != nil {
			t.Fatalf("Classify(%s, NaN) error = %v", op, err)
		}
		if got != StatusVeryLow {
			t.Fatalf("Classify(%s, NaN) = %s, want %s", op, got, StatusVeryLow)
		}
	}

	got, err := Classify(Equal, math.NaN(), boolPtr(true))
	if err != nil {
		t.Fatalf("Classify(eq, NaN, true) error = %v", err)
	}
	if got != StatusVeryHigh {
		t.Fatalf("Classify(eq, NaN, true) = %s, want %s", got, StatusVeryHigh)
	}
}

func TestClassifyRejectsUnknownOperator(t *testing.T) {
	for _, op := range []Operator{0, Equal + 1, 200} {
		if _, err := Classify(op, 1, nil); !errors.Is(err, ErrInvalidOperator) {
			t.Fatalf("Classify(%d) error = %v, want ErrInvalidOperator", op, err)
		}
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	for _, op := range []Operator{GreaterThan, GreaterThanOrEqual} {
		prev := StatusVeryLow
		for i := 0; i <= 300; i++ {
			pct := float64(i) / 100
			got, err := Classify(op, pct, nil)
			if err != nil {
				t.Fatalf("Classify error = %v", err)
			}
			if got < prev {
				t.Fatalf("%s: status dropped from %s to %s at %v", op, prev, got, pct)
			}
			if pct >= 1 && got != StatusVeryHigh {
				t.Fatalf("%s: status at %v = %s, want very-high", op, pct, got)
			}
			if pct < 0.3 && got != StatusVeryLow {
				t.Fatalf("%s: status at %v = %s, want very-low", op, pct, got)
			}
			prev = got
		}
	}

	for _, op := range []Operator{LessThan, LessThanOrEqual} {
		prev := StatusVeryHigh
		for i := 0; i <= 300; i++ {
			pct := float64(i) / 100
			got, err := Classify(op, pct, nil)
			if err != nil {
				t.Fatalf("Classify error = %v", err)
			}
			if got > prev {
				t.Fatalf("%s: status rose from %s to %s at %v", op, prev, got, pct)
			}
			prev = got
		}
	}
}

func TestParseOperator(t *testing.T) {
	tests := map[string]Operator{
		"gt": GreaterThan, ">": GreaterThan,
		"GE": GreaterThanOrEqual, ">=": GreaterThanOrEqual,
		"lt": LessThan, "<": LessThan,
		"le": LessThanOrEqual, "<=": LessThanOrEqual,
		"eq": Equal, "=": Equal,
	}
	for input, want := range tests {
		got, err := ParseOperator(input)
		if err != nil {
			t.Fatalf("ParseOperator(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseOperator(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParseOperator("approx"); !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("ParseOperator(approx) error = %v, want ErrInvalidOperator", err)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for s := StatusVeryLow; s <= StatusVeryHigh; s++ {
		got, err := ParseStatus(s.String())
		if err != nil {
			t.Fatalf("ParseStatus(%q) error = %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("ParseStatus(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseStatus("great"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ParseStatus(great) error = %v", err)
	}
}
