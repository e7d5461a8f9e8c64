package sim

import "math"

// Box is an axis-aligned rectangle described by its centre and half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// BoxAt creates a box of the given full width and height centred on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// Width returns the full width.
func (b Box) Width() float64 { return b.HalfW * 2 }

// Height returns the full height.
func (b Box) Height() float64 { return b.HalfH * 2 }

// Min returns the top-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.HalfW, Y: b.Center.Y - b.HalfH}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.HalfW, Y: b.Center.Y + b.HalfH}
}

// Overlap returns the penetration depth of a and b on each axis.
// Both values are positive exactly when the boxes intersect.
func Overlap(a, b Box) (ox, oy float64) {
	ox = a.HalfW + b.HalfW - math.Abs(a.Center.X-b.Center.X)
	oy = a.HalfH + b.HalfH - math.Abs(a.Center.Y-b.Center.Y)
	return ox, oy
}

// Intersects reports whether the interiors of a and b overlap.
// Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	ox, oy := Overlap(b, o)
	return ox > 0 && oy > 0
}

// Contains reports whether p lies strictly inside the box.
func (b Box) Contains(p Vec2) bool {
	return p.X > b.Center.X-b.HalfW && p.X < b.Center.X+b.HalfW &&
		p.Y > b.Center.Y-b.HalfH && p.Y < b.Center.Y+b.HalfH
}

// Solid is anything that blocks movement and projectiles.
type Solid interface {
	Bounds() Box
}

// Round is anything hit-tested by circular contact.
type Round interface {
	Center() Vec2
	Radius() float64
}

// Touching reports circular contact: centre distance below the sum of radii.
func Touching(a, b Round) bool {
	return Dist(a.Center(), b.Center()) < a.Radius()+b.Radius()
}

// HitsAny reports whether box intersects any of solids.
func HitsAny(box Box, solids []Box) bool {
	for _, s := range solids {
		if box.Intersects(s) {
			return true
		}
	}
	return false
}

// Response configures how a moving body reacts to a static collider.
type Response struct {
	Restitution float64 // Velocity is multiplied by -Restitution on the resolved axis
	Push        float64 // Overlap multiplier, > 1 so the body clears the surface
	Jitter      float64 // Random nudge applied when a single push leaves the body inside
	Passes      int     // Maximum sweeps over the collider set
}

// Body is the mutable state the resolver works on.
type Body struct {
	Pos   *Vec2
	Vel   *Vec2
	HalfW float64
	HalfH float64
}

func (b Body) box() Box {
	return Box{Center: *b.Pos, HalfW: b.HalfW, HalfH: b.HalfH}
}

// Resolve pushes body out of every solid it penetrates along the axis of
// smaller overlap. It returns true when a vertical push moved a downward
// moving body up, i.e. the body landed on something this tick.
func Resolve(body Body, solids []Box, resp Response, rng *RNG) (grounded bool) {
	passes := max(resp.Passes, 1)
	for range passes {
		touched := false
		for _, s := range solids {
			if !body.box().Intersects(s) {
				continue
			}
			touched = true
			if resolveOne(body, s, resp) {
				grounded = true
			}
			if body.box().Intersects(s) && rng != nil {
				*body.Pos = body.Pos.Add(rng.Unit().Scale(resp.Jitter))
			}
		}
		if !touched {
			break
		}
	}
	return grounded
}

// resolveOne separates body from s. Returns true for a landing.
func resolveOne(body Body, s Box, resp Response) bool {
	ox, oy := Overlap(body.box(), s)
	if ox <= 0 || oy <= 0 {
		return false
	}

	dx := body.Pos.X - s.Center.X
	dy := body.Pos.Y - s.Center.Y

	if ox < oy {
		body.Pos.X += pushDir(dx) * ox * resp.Push
		body.Vel.X *= -resp.Restitution
		return false
	}

	body.Pos.Y += pushDir(dy) * oy * resp.Push
	landed := body.Vel.Y > 0 && dy < 0
	body.Vel.Y *= -resp.Restitution
	return landed
}

// pushDir picks the push direction from the centre offset.
// A zero offset pushes toward negative coordinates.
func pushDir(d float64) float64 {
	if d > 0 {
		return 1
	}
	return -1
}
