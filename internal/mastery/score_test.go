package mastery

import "testing"

func TestScore_FirstSuccessfulExposure(t *testing.T) {
	// 1 exposure, perfect rate, practiced today: 8 + 40 + 20.
	if got := Score(1, 1.0, 0); got != 68 {
		t.Errorf("got %d, want 68", got)
	}
}

func TestScore_FirstFailedExposure(t *testing.T) {
	// 8 + 0 + 20.
	if got := Score(1, 0, 0); got != 28 {
		t.Errorf("got %d, want 28", got)
	}
}

func TestScore_ExposureFactorCaps(t *testing.T) {
	// 5 exposures hit the 40-point cap; more add nothing.
	if got, want := Score(5, 0, 0), Score(50, 0, 0); got != want {
		t.Errorf("exposure factor not capped: %d vs %d", got, want)
	}
	if got := Score(100, 1.0, 0); got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestScore_RecencyDecay(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{0, 60},  // 40 + 0 + 20
		{7, 60},  // grace window, full credit
		{8, 58},  // 20 - 2*1
		{12, 50}, // 20 - 2*5
		{17, 40}, // decayed to zero
		{30, 40}, // never negative
	}
	for _, tt := range tests {
		if got := Score(10, 0, tt.days); got != tt.want {
			t.Errorf("Score(10, 0, %d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	for exposures := 0; exposures <= 30; exposures++ {
		for rate := 0.0; rate <= 1.0; rate += 0.25 {
			for days := 0; days <= 40; days += 5 {
				got := Score(exposures, rate, days)
				if got < 0 || got > 100 {
					t.Fatalf("Score(%d, %.2f, %d) = %d out of [0,100]", exposures, rate, days, got)
				}
			}
		}
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		exposures int
		score     int
		want      Status
	}{
		{0, 0, StatusNotStarted},
		{1, 40, StatusInProgress},
		{3, 79, StatusInProgress},
		{3, 80, StatusMastered},
		{10, 100, StatusMastered},
	}
	for _, tt := range tests {
		if got := DeriveStatus(tt.exposures, tt.score); got != tt.want {
			t.Errorf("DeriveStatus(%d, %d) = %q, want %q", tt.exposures, tt.score, got, tt.want)
		}
	}
}
