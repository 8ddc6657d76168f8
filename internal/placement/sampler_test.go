package placement

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/pickup-arena/internal/core"
)

func arenaRequest() Request {
	return Request{
		AreaMin:       core.Pt(-18, -18),
		AreaMax:       core.Pt(18, 18),
		MinSeparation: 1.0,
	}
}

func TestDeterminism(t *testing.T) {
	// Two samplers with the same seed must produce identical sequences
	req := arenaRequest()
	origin := core.Pt(0, 0)
	req.Exclusion = &origin
	req.ExclusionRadius = 2

	s1 := NewSampler(12345, 0)
	s2 := NewSampler(12345, 0)

	set1, set2 := &PlacedSet{}, &PlacedSet{}
	p1, err := s1.SampleMany(40, req, set1)
	if err != nil {
		t.Fatalf("SampleMany() failed: %v", err)
	}
	p2, err := s2.SampleMany(40, req, set2)
	if err != nil {
		t.Fatalf("SampleMany() failed: %v", err)
	}

	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("point %d mismatch: %v vs %v", i, p1[i], p2[i])
		}
	}

	// A different seed should diverge somewhere
	s3 := NewSampler(54321, 0)
	p3, err := s3.SampleMany(40, req, &PlacedSet{})
	if err != nil {
		t.Fatalf("SampleMany() failed: %v", err)
	}
	same := true
	for i := range p1 {
		if p1[i] != p3[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestSeparationInvariant(t *testing.T) {
	seeds := []int64{1, 7, 42, 999, 123456}

	for _, seed := range seeds {
		s := NewSampler(seed, 0)
		set := &PlacedSet{}
		if _, err := s.SampleMany(40, arenaRequest(), set); err != nil {
			t.Fatalf("seed %d: SampleMany() failed: %v", seed, err)
		}

		pts := set.Points()
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				if d := pts[i].Dist(pts[j]); d < 1.0 {
					t.Errorf("seed %d: points %d and %d are %v apart, expected >= 1", seed, i, j, d)
				}
			}
		}
	}
}

func TestExclusionInvariant(t *testing.T) {
	start := core.Pt(0, 0)
	req := Request{
		AreaMin:         core.Pt(-10, -10),
		AreaMax:         core.Pt(10, 10),
		MinSeparation:   0.5,
		Exclusion:       &start,
		ExclusionRadius: 2,
	}

	s := NewSampler(77, 0)
	set := &PlacedSet{}
	if _, err := s.SampleMany(60, req, set); err != nil {
		t.Fatalf("SampleMany() failed: %v", err)
	}

	for i, p := range set.Points() {
		if d := p.Dist(start); d < 2 {
			t.Errorf("point %d at %v is %v from the exclusion point, expected >= 2", i, p, d)
		}
	}
}

func TestPointsStayInArea(t *testing.T) {
	req := Request{
		AreaMin:       core.Pt(-3, 5),
		AreaMax:       core.Pt(4, 9),
		MinSeparation: 0.2,
	}

	s := NewSampler(5, 0)
	pts, err := s.SampleMany(30, req, &PlacedSet{})
	if err != nil {
		t.Fatalf("SampleMany() failed: %v", err)
	}
	for _, p := range pts {
		if p.X < -3 || p.X > 4 || p.Z < 5 || p.Z > 9 {
			t.Errorf("point %v outside area", p)
		}
	}
}

func TestSharedSetAcrossBatches(t *testing.T) {
	// Two categories placed into one set must not overlap each other
	s := NewSampler(2024, 0)
	shared := &PlacedSet{}
	req := arenaRequest()
	req.MinSeparation = 2

	good, err := s.SampleMany(15, req, shared)
	if err != nil {
		t.Fatalf("good batch failed: %v", err)
	}
	bad, err := s.SampleMany(15, req, shared)
	if err != nil {
		t.Fatalf("bad batch failed: %v", err)
	}

	if shared.Len() != 30 {
		t.Fatalf("shared set has %d points, expected 30", shared.Len())
	}
	for _, g := range good {
		for _, b := range bad {
			if g.Dist(b) < 2 {
				t.Errorf("good %v and bad %v are closer than 2", g, b)
			}
		}
	}
}

func TestSampleDoesNotAppend(t *testing.T) {
	s := NewSampler(1, 0)
	set := NewPlacedSet(core.Pt(0, 0))

	p, err := s.Sample(arenaRequest(), set)
	if err != nil {
		t.Fatalf("Sample() failed: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("Sample() modified the set, Len() = %d", set.Len())
	}
	if p.Dist(core.Pt(0, 0)) < 1 {
		t.Errorf("Sample() returned %v, too close to existing point", p)
	}
}

func TestExhaustion(t *testing.T) {
	// A 1x1 arena cannot hold two points 5 apart
	req := Request{
		AreaMin:       core.Pt(0, 0),
		AreaMax:       core.Pt(1, 1),
		MinSeparation: 5,
	}

	s := NewSampler(3, 500)
	set := &PlacedSet{}
	placed, err := s.SampleMany(3, req, set)
	if err == nil {
		t.Fatal("SampleMany() should fail on an over-dense arena")
	}
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("error %v should match ErrExhausted", err)
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error %T should be *ExhaustedError", err)
	}
	if exhausted.Attempts != 500 {
		t.Errorf("Attempts = %d, expected 500", exhausted.Attempts)
	}
	if exhausted.Placed.Len() != 1 {
		t.Errorf("partial set has %d points, expected 1", exhausted.Placed.Len())
	}
	if len(placed) != 1 || set.Len() != 1 {
		t.Errorf("expected 1 point placed before failure, got %d returned and %d in set", len(placed), set.Len())
	}
}

func TestExclusionCoveringArena(t *testing.T) {
	center := core.Pt(0, 0)
	req := Request{
		AreaMin:         core.Pt(-1, -1),
		AreaMax:         core.Pt(1, 1),
		Exclusion:       &center,
		ExclusionRadius: 5,
	}

	_, err := NewSampler(9, 100).Sample(req, &PlacedSet{})
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Sample() error = %v, expected ErrExhausted", err)
	}
}

func TestInvalidRequest(t *testing.T) {
	center := core.Pt(0, 0)
	tests := []struct {
		name string
		req  Request
	}{
		{"inverted x", Request{AreaMin: core.Pt(5, 0), AreaMax: core.Pt(-5, 1)}},
		{"inverted z", Request{AreaMin: core.Pt(0, 5), AreaMax: core.Pt(1, -5)}},
		{"negative separation", Request{AreaMax: core.Pt(1, 1), MinSeparation: -1}},
		{"negative exclusion", Request{AreaMax: core.Pt(1, 1), Exclusion: &center, ExclusionRadius: -1}},
		{"NaN separation", Request{AreaMax: core.Pt(1, 1), MinSeparation: math.NaN()}},
		{"NaN exclusion", Request{AreaMax: core.Pt(1, 1), Exclusion: &center, ExclusionRadius: math.NaN()}},
		{"NaN area", Request{AreaMin: core.Pt(math.NaN(), 0), AreaMax: core.Pt(1, 1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSampler(1, 0).Sample(tc.req, &PlacedSet{})
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Sample() error = %v, expected ErrInvalidRequest", err)
			}
		})
	}
}

func TestDefaultMaxAttempts(t *testing.T) {
	if got := NewSampler(1, 0).MaxAttempts(); got != DefaultMaxAttempts {
		t.Errorf("MaxAttempts() = %d, expected %d", got, DefaultMaxAttempts)
	}
	if got := NewSampler(1, 25).MaxAttempts(); got != 25 {
		t.Errorf("MaxAttempts() = %d, expected 25", got)
	}
}
