package stats

import (
	"math"

	"github.com/Amr-9/RippleHunter/pkg/generator"
)

// AlphabetSize is the number of symbols an account ID character can take.
const AlphabetSize = 58

// eta50 holds, for a prefix of n characters, the smallest number of trials k
// with 1 - (1 - 58^-n)^k >= 0.5. Length 0 always matches and needs no trial.
var eta50 = [...]float64{
	0,
	40,
	2332,
	135241,
	7843997,
	454951843,
	26387206905,
	1530458000460,
	88766564026661,
	5148460713546319,
	2.9861072138568646e17,
	1.7319421840369816e19,
	1.0045264667414493e21,
}

// MaxTableLength is the longest prefix with a tabulated ETA50.
const MaxTableLength = len(eta50) - 1

// ETA50 returns the number of trials for a 50% chance of matching a prefix of
// the given length. Lengths past the table are effectively unbounded.
func ETA50(length int) float64 {
	if length < 0 {
		return 0
	}
	if length > MaxTableLength {
		return math.Inf(1)
	}
	return eta50[length]
}

// Humanize converts a number of seconds into the coarsest sensible unit:
// minutes past 100 seconds, hours past 100 minutes, days past 48 hours.
func Humanize(secs float64) (float64, generator.TimeUnit) {
	v, unit := secs, generator.Seconds
	if v > 100 {
		v /= 60
		unit = generator.Minutes
		if v > 100 {
			v /= 60
			unit = generator.Hours
			if v > 48 {
				v /= 24
				unit = generator.Days
			}
		}
	}
	return v, unit
}
