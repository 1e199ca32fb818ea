package spacedrep

import (
	"testing"
	"time"
)

func TestBand(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{-5, 0},
		{0, 0},
		{14, 0},
		{15, 1},
		{29, 1},
		{30, 2},
		{45, 3},
		{68, 4},
		{75, 5},
		{90, 6},
		{100, 6},
		{150, 6},
	}
	for _, tt := range tests {
		if got := Band(tt.score); got != tt.want {
			t.Errorf("Band(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestIntervalDays_Table(t *testing.T) {
	want := []int{1, 2, 4, 7, 14, 30, 60}
	for band, days := range want {
		if got := IntervalDays(band); got != days {
			t.Errorf("IntervalDays(%d) = %d, want %d", band, got, days)
		}
	}
	if got := IntervalDays(-1); got != 1 {
		t.Errorf("IntervalDays(-1) = %d, want clamp to 1", got)
	}
	if got := IntervalDays(99); got != 60 {
		t.Errorf("IntervalDays(99) = %d, want clamp to 60", got)
	}
}

func TestIntervals_MonotonicInMastery(t *testing.T) {
	// Higher mastery must never shorten the review interval.
	for m := 0; m <= 100; m++ {
		for n := m; n <= 100; n++ {
			if IntervalDays(Band(m)) > IntervalDays(Band(n)) {
				t.Fatalf("interval for mastery %d exceeds interval for mastery %d", m, n)
			}
		}
	}
}

func TestNextReviewDate(t *testing.T) {
	last := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		score    int
		wantDays int
	}{
		{0, 1},
		{20, 2},
		{68, 14},
		{100, 60},
	}
	for _, tt := range tests {
		got := NextReviewDate(tt.score, last)
		want := last.AddDate(0, 0, tt.wantDays)
		if !got.Equal(want) {
			t.Errorf("NextReviewDate(%d) = %v, want %v", tt.score, got, want)
		}
	}
}
