package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"logitrack/internal/core/domain/model/kernel"
)

// DefaultTrackingIDAttempts bounds the number of draws per Generate call.
const DefaultTrackingIDAttempts = 10

// ErrTrackingIDGenerationExhausted is returned when every draw collided with an
// existing tracking id.
var ErrTrackingIDGenerationExhausted = errors.New("tracking id generation exhausted")

// TrackingIDChecker reports whether a tracking id is already registered.
type TrackingIDChecker interface {
	ExistsByTrackingID(ctx context.Context, id kernel.TrackingID) (bool, error)
}

// TrackingIDGenerator draws random six-digit tracking ids and checks each one
// against the registry until it finds a free one.
type TrackingIDGenerator struct {
	maxAttempts int
	draw        func() int
}

// NewTrackingIDGenerator builds a generator. maxAttempts <= 0 selects
// DefaultTrackingIDAttempts; a nil draw uses math/rand/v2 over the full range.
func NewTrackingIDGenerator(maxAttempts int, draw func() int) *TrackingIDGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultTrackingIDAttempts
	}
	if draw == nil {
		draw = func() int {
			return kernel.TrackingIDMinNumber + rand.IntN(kernel.TrackingIDMaxNumber-kernel.TrackingIDMinNumber+1)
		}
	}
	return &TrackingIDGenerator{maxAttempts: maxAttempts, draw: draw}
}

// Generate returns an id not yet known to checker. It does not reserve the id;
// the registry's unique constraint settles races between concurrent creates.
func (g *TrackingIDGenerator) Generate(ctx context.Context, checker TrackingIDChecker) (kernel.TrackingID, error) {
	for range g.maxAttempts {
		id, err := kernel.NewTrackingID(g.draw())
		if err != nil {
			return kernel.TrackingID{}, err
		}

		exists, err := checker.ExistsByTrackingID(ctx, id)
		if err != nil {
			return kernel.TrackingID{}, err
		}
		if !exists {
			return id, nil
		}
	}

	return kernel.TrackingID{}, fmt.Errorf("%w after %d attempts", ErrTrackingIDGenerationExhausted, g.maxAttempts)
}
