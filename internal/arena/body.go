package arena

import "github.com/vovakirdan/pickup-arena/internal/core"

// Body is the player-controlled ball.
type Body struct {
	Pos     core.Point2D
	Vel     core.Point2D
	Radius  float64
	Visible bool
}

// NewBody returns a resting, visible body at pos.
func NewBody(pos core.Point2D, radius float64) Body {
	return Body{Pos: pos, Radius: radius, Visible: true}
}

// Push accelerates the body along dir by force for dt seconds.
// A zero dir leaves the velocity unchanged.
func (b *Body) Push(dir core.Point2D, force, dt float64) {
	if dir.X == 0 && dir.Z == 0 {
		return
	}
	if l := dir.Len(); l > 1 {
		dir = dir.Scale(1 / l)
	}
	b.Vel = b.Vel.Add(dir.Scale(force * dt))
}

// Integrate moves the body by its velocity, applies linear drag and keeps it
// inside [lo, hi]. Hitting a wall stops motion along that axis.
func (b *Body) Integrate(dt, drag float64, lo, hi core.Point2D) {
	if dt <= 0 {
		return
	}

	damp := 1 - drag*dt
	if damp < 0 {
		damp = 0
	}
	b.Vel = b.Vel.Scale(damp)
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.X < lo.X {
		b.Pos.X, b.Vel.X = lo.X, 0
	} else if b.Pos.X > hi.X {
		b.Pos.X, b.Vel.X = hi.X, 0
	}
	if b.Pos.Z < lo.Z {
		b.Pos.Z, b.Vel.Z = lo.Z, 0
	} else if b.Pos.Z > hi.Z {
		b.Pos.Z, b.Vel.Z = hi.Z, 0
	}
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Vel = core.Point2D{}
}
