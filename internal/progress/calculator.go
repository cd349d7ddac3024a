// Package progress translates elapsed wall-clock time into completion of a
// build request. Every function is pure: the caller supplies "now".
package progress

import (
	"time"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// Progress is the completion state of a build request at an instant
type Progress struct {
	Fraction  float64       `json:"fraction"`
	Remaining time.Duration `json:"remaining"`

	// exact durations behind Fraction, set only while a request is running
	elapsed time.Duration
	total   time.Duration
}

// Percent returns the whole-number percentage, truncated toward zero. It is
// computed from whole durations, not from Fraction, so exact percentages
// are never under-reported.
func (p Progress) Percent() int {
	if p.total <= 0 {
		if p.Fraction >= 1 {
			return 100
		}
		return 0
	}
	return int(p.elapsed * 100 / p.total)
}

// Complete reports whether the request has finished
func (p Progress) Complete() bool {
	return p.Fraction >= 1
}

// Compute returns the progress of req at now.
//
// A request that has not started yet (including clock skew that puts now
// before the start) reports zero. A request with a non-positive duration is
// already complete.
func Compute(req domain.BuildRequest, now time.Time) Progress {
	if req.Duration <= 0 {
		return Progress{Fraction: 1}
	}
	if now.Before(req.StartTime) {
		return Progress{Fraction: 0, Remaining: req.Duration}
	}

	finish := req.StartTime.Add(req.Duration)
	if !now.Before(finish) {
		return Progress{Fraction: 1}
	}

	elapsed := now.Sub(req.StartTime)
	return Progress{
		Fraction:  float64(elapsed) / float64(req.Duration),
		Remaining: finish.Sub(now),
		elapsed:   elapsed,
		total:     req.Duration,
	}
}

// FinishTime returns the instant the request completes
func FinishTime(req domain.BuildRequest) time.Time {
	if req.Duration <= 0 {
		return req.StartTime
	}
	return req.StartTime.Add(req.Duration)
}

// DurationFor converts a build cost into a request duration
func DurationFor(cost domain.BuildCost) time.Duration {
	return time.Duration(cost.TimeInSeconds) * time.Second
}
