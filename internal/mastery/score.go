package mastery

import "math"

// Scoring weights. The score is the sum of three bounded factors:
// frequency of practice, accuracy, and recency. The sum is clamped to
// [0,100], so no single factor can dominate past its cap.
//
// An older flat-delta policy (+10 per success, -5 per failure) exists in
// historical data paths; it is not self-bounding and ignores forgetting,
// and was discarded in favor of this formula.
const (
	exposurePointsPer = 8  // points per exposure
	exposureCap       = 40 // max points from exposure count
	successCap        = 40 // max points from success rate
	recencyCap        = 20 // max points from recency
	recencyGraceDays  = 7  // full recency credit within this window
	recencyDecayPer   = 2  // points lost per day past the grace window
)

// Score computes the mastery score from exposure count, success rate,
// and days since last practice. Pure; the result is a rounded integer
// clamped to [0,100].
func Score(exposures int, successRate float64, daysSinceLast int) int {
	exposureFactor := exposures * exposurePointsPer
	if exposureFactor > exposureCap {
		exposureFactor = exposureCap
	}

	successFactor := successRate * successCap

	recencyFactor := recencyCap
	if daysSinceLast > recencyGraceDays {
		recencyFactor = recencyCap - recencyDecayPer*(daysSinceLast-recencyGraceDays)
		if recencyFactor < 0 {
			recencyFactor = 0
		}
	}

	score := int(math.Round(float64(exposureFactor) + successFactor + float64(recencyFactor)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
