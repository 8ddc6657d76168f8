// Package placement scatters points across a rectangular arena by rejection
// sampling, keeping every accepted point at least a minimum distance away from
// the others and, optionally, from a single excluded point.
package placement

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pickup-arena/internal/core"
)

// DefaultMaxAttempts bounds the rejection loop of a single Sample call.
const DefaultMaxAttempts = 10000

// ErrExhausted is matched by errors.Is on an *ExhaustedError.
var ErrExhausted = errors.New("placement: attempts exhausted")

// ErrInvalidRequest reports a request that can never be satisfied as written.
var ErrInvalidRequest = errors.New("placement: invalid request")

// Request describes where a point may be placed. It is not modified by the sampler.
type Request struct {
	AreaMin       core.Point2D
	AreaMax       core.Point2D
	MinSeparation float64

	// Exclusion, when set, keeps candidates at least ExclusionRadius away from it
	// (typically the player's start location).
	Exclusion       *core.Point2D
	ExclusionRadius float64
}

// Validate checks the request bounds and radii.
func (r Request) Validate() error {
	if !(r.AreaMin.X <= r.AreaMax.X) || !(r.AreaMin.Z <= r.AreaMax.Z) {
		return fmt.Errorf("%w: area min %v exceeds max %v", ErrInvalidRequest, r.AreaMin, r.AreaMax)
	}
	if !(r.MinSeparation >= 0) {
		return fmt.Errorf("%w: min separation must be non-negative, got %v", ErrInvalidRequest, r.MinSeparation)
	}
	if r.Exclusion != nil && !(r.ExclusionRadius >= 0) {
		return fmt.Errorf("%w: exclusion radius must be non-negative, got %v", ErrInvalidRequest, r.ExclusionRadius)
	}
	return nil
}

// ExhaustedError is returned when no valid candidate was found within the attempt cap.
// Placed holds every point accepted before the failure.
type ExhaustedError struct {
	Attempts int
	Placed   PlacedSet
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("placement: no valid position after %d attempts (%d points placed)", e.Attempts, e.Placed.Len())
}

// Unwrap lets errors.Is match ErrExhausted.
func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// Sampler draws candidates from a seeded source. The same seed and the same
// sequence of requests always yield the same points.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewSampler creates a sampler seeded with seed. maxAttempts <= 0 selects
// DefaultMaxAttempts.
func NewSampler(seed int64, maxAttempts int) *Sampler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Sampler{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// MaxAttempts returns the per-sample attempt cap.
func (s *Sampler) MaxAttempts() int {
	return s.maxAttempts
}

// Sample returns one valid position for req given the points already in existing.
// It does not add the point to existing; the caller does that before the next call.
func (s *Sampler) Sample(req Request, existing *PlacedSet) (core.Point2D, error) {
	if err := req.Validate(); err != nil {
		return core.Point2D{}, err
	}

	for i := 0; i < s.maxAttempts; i++ {
		candidate := s.draw(req)
		if Valid(req, existing, candidate) {
			return candidate, nil
		}
	}

	return core.Point2D{}, &ExhaustedError{
		Attempts: s.maxAttempts,
		Placed:   existing.Clone(),
	}
}

// SampleMany places n points one after another, adding each accepted point to
// existing so later draws are constrained by earlier ones. It returns the new
// points in placement order. On failure the points accepted so far stay in
// existing and are also carried by the returned *ExhaustedError.
func (s *Sampler) SampleMany(n int, req Request, existing *PlacedSet) ([]core.Point2D, error) {
	if existing == nil {
		existing = &PlacedSet{}
	}
	placed := make([]core.Point2D, 0, max(n, 0))
	for i := 0; i < n; i++ {
		p, err := s.Sample(req, existing)
		if err != nil {
			return placed, err
		}
		existing.Add(p)
		placed = append(placed, p)
	}
	return placed, nil
}

// draw picks a candidate uniformly from the request area.
func (s *Sampler) draw(req Request) core.Point2D {
	return core.Point2D{
		X: req.AreaMin.X + s.rng.Float64()*(req.AreaMax.X-req.AreaMin.X),
		Z: req.AreaMin.Z + s.rng.Float64()*(req.AreaMax.Z-req.AreaMin.Z),
	}
}

// Valid reports whether p satisfies the separation and exclusion constraints of
// req against existing. A nil existing set imposes no separation constraint.
func Valid(req Request, existing *PlacedSet, p core.Point2D) bool {
	if req.Exclusion != nil && p.DistSq(*req.Exclusion) < req.ExclusionRadius*req.ExclusionRadius {
		return false
	}
	if existing == nil {
		return true
	}
	minSq := req.MinSeparation * req.MinSeparation
	for _, q := range existing.points {
		if p.DistSq(q) < minSq {
			return false
		}
	}
	return true
}
