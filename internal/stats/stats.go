// Package stats tracks typing correctness counters and derives accuracy and
// words-per-minute from them.
package stats

import "math"

// Accumulator counts correct and incorrect inputs. The game keeps two: one
// per wave (reset at each wave advance) and one cumulative (reset only on a
// full restart).
type Accumulator struct {
	Correct    int
	Incorrect  int
	TotalTyped int
}

func (a *Accumulator) RecordCorrect() {
	a.Correct++
	a.TotalTyped++
}

func (a *Accumulator) RecordIncorrect() {
	a.Incorrect++
	a.TotalTyped++
}

func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Accuracy returns round(100*correct/total). No attempts counts as perfect,
// not undefined.
func (a *Accumulator) Accuracy() int {
	if a.TotalTyped == 0 {
		return 100
	}
	return int(math.Round(float64(a.Correct) / float64(a.TotalTyped) * 100))
}

// WPM returns round((correct/5) / elapsed minutes), 0 when no time has
// passed. A word is the conventional five characters.
func (a *Accumulator) WPM(elapsedMs int64) int {
	if elapsedMs <= 0 {
		return 0
	}
	minutes := float64(elapsedMs) / 60000.0
	return int(math.Round(float64(a.Correct) / 5.0 / minutes))
}
