package entity

import (
	"context"
	"math/rand"
	"time"
)

const DateLayout = "2006-01-02"

// DateInPast reports whether a booking date falls before today.
func DateInPast(date string, now time.Time) (bool, error) {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today), nil
}

// DistanceEstimator supplies the ride distance in miles for a pickup/drop
// pair. The random default stands in for a routing integration.
type DistanceEstimator interface {
	Estimate(ctx context.Context, pickup, drop string) (float64, error)
}

type randomDistance struct{}

// NewRandomDistance returns an estimator drawing uniformly from [5, 25) miles.
func NewRandomDistance() DistanceEstimator {
	return randomDistance{}
}

func (randomDistance) Estimate(_ context.Context, _, _ string) (float64, error) {
	return 5 + rand.Float64()*20, nil
}
