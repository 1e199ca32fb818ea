// Package spacedrep maps mastery scores to review schedules.
//
// Scheduling is a pure function of the mastery score: the score is
// partitioned into bands and each band indexes a fixed interval table.
// Higher mastery always means an equal or longer interval.
package spacedrep

import "time"

// ReviewIntervals is the canonical expanding review schedule in days,
// indexed by mastery band. A `[1,3,7,14,30,60]` variant exists in older
// data; it was rejected in favor of this table. Swap the table, not the
// algorithm, if that decision is ever revisited.
var ReviewIntervals = [7]int{1, 2, 4, 7, 14, 30, 60}

// BandWidth is the mastery-score width of one band.
const BandWidth = 15

// MaxBand is the highest band index.
const MaxBand = len(ReviewIntervals) - 1

// Band returns the review band for a mastery score.
func Band(score int) int {
	if score < 0 {
		return 0
	}
	b := score / BandWidth
	if b > MaxBand {
		return MaxBand
	}
	return b
}

// IntervalDays returns the review interval in days for a band.
// Out-of-range bands are clamped.
func IntervalDays(band int) int {
	if band < 0 {
		band = 0
	}
	if band > MaxBand {
		band = MaxBand
	}
	return ReviewIntervals[band]
}

// NextReviewDate returns when a concept with the given mastery score,
// last practiced at lastPracticed, should next be reviewed.
func NextReviewDate(score int, lastPracticed time.Time) time.Time {
	return lastPracticed.AddDate(0, 0, IntervalDays(Band(score)))
}
