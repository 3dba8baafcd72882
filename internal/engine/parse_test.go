package engine

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid timestamp",
			input: "15/01/2024 08:00",
			want:  time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "end of year",
			input: "31/12/2023 23:00",
			want:  time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
		},
		{
			name:    "day out of range",
			input:   "32/01/2024 08:00",
			wantErr: true,
		},
		{
			name:    "non-numeric component",
			input:   "aa/01/2024 08:00",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "2024-01-15 08:00",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReconcileGender(t *testing.T) {
	tests := []struct {
		name      string
		rawMen    int
		rawWomen  int
		total     int
		wantMen   int
		wantWomen int
	}{
		{name: "exact agreement", rawMen: 5, rawWomen: 5, total: 10, wantMen: 5, wantWomen: 5},
		{name: "scaled down", rawMen: 6, rawWomen: 6, total: 10, wantMen: 5, wantWomen: 5},
		{name: "scaled up", rawMen: 2, rawWomen: 2, total: 10, wantMen: 5, wantWomen: 5},
		{name: "uneven ratio", rawMen: 3, rawWomen: 1, total: 10, wantMen: 8, wantWomen: 2},
		{name: "empty split means no inference", rawMen: 0, rawWomen: 0, total: 10, wantMen: 0, wantWomen: 0},
		{name: "zero total", rawMen: 4, rawWomen: 6, total: 0, wantMen: 0, wantWomen: 0},
		{name: "all men", rawMen: 7, rawWomen: 0, total: 12, wantMen: 12, wantWomen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			men, women := ReconcileGender(tt.rawMen, tt.rawWomen, tt.total)
			if men != tt.wantMen || women != tt.wantWomen {
				t.Errorf("ReconcileGender(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.rawMen, tt.rawWomen, tt.total, men, women, tt.wantMen, tt.wantWomen)
			}
			if tt.rawMen+tt.rawWomen > 0 && men+women != tt.total {
				t.Errorf("reconciled counts must sum to total: %d + %d != %d", men, women, tt.total)
			}
		})
	}
}

func TestSafeRate(t *testing.T) {
	if got := safeRate(30, 0); got != 0 {
		t.Errorf("safeRate with zero denominator = %v, want 0", got)
	}
	if got := safeRate(30, 100); got != 30.00 {
		t.Errorf("safeRate(30, 100) = %v, want 30.00", got)
	}
	if got := safeRate(1, 3); got != 33.33 {
		t.Errorf("safeRate(1, 3) = %v, want 33.33", got)
	}
}
