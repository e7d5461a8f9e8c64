package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testResponse = Response{Restitution: 0.3, Push: 1.01, Jitter: 0.2, Passes: 3}

func block(x, y float64) Box {
	return BoxAt(V(x, y), 40, 40)
}

func TestOverlap(t *testing.T) {
	ox, oy := Overlap(BoxAt(V(0, 0), 20, 20), block(0, 25))
	assert.InDelta(t, 30.0, ox, 1e-9)
	assert.InDelta(t, 5.0, oy, 1e-9)

	// Touching edges do not intersect.
	assert.False(t, BoxAt(V(0, 0), 20, 20).Intersects(block(30, 0)))
	assert.True(t, BoxAt(V(0, 0), 20, 20).Intersects(block(29.9, 0)))
}

func TestBoxContainsIsStrict(t *testing.T) {
	b := block(0, 0)
	assert.True(t, b.Contains(V(0, 0)))
	assert.True(t, b.Contains(V(19.9, -19.9)))
	assert.False(t, b.Contains(V(20, 0)))
	assert.False(t, b.Contains(V(0, -20)))
}

func TestResolveLanding(t *testing.T) {
	pos, vel := V(0, -28), V(0, 3)
	body := Body{Pos: &pos, Vel: &vel, HalfW: 10, HalfH: 10}

	grounded := Resolve(body, []Box{block(0, 0)}, testResponse, nil)

	assert.True(t, grounded)
	assert.InDelta(t, -30.02, pos.Y, 1e-9)
	assert.InDelta(t, 0.0, pos.X, 1e-9)
	assert.InDelta(t, -0.9, vel.Y, 1e-9)
	assert.False(t, body.box().Intersects(block(0, 0)))
}

func TestResolveSidePush(t *testing.T) {
	pos, vel := V(-27, 0), V(2, 0)
	body := Body{Pos: &pos, Vel: &vel, HalfW: 10, HalfH: 10}

	grounded := Resolve(body, []Box{block(0, 0)}, testResponse, nil)

	assert.False(t, grounded)
	assert.InDelta(t, -30.03, pos.X, 1e-9)
	assert.InDelta(t, -0.6, vel.X, 1e-9)
	assert.InDelta(t, 0.0, vel.Y, 1e-9)
}

func TestResolveCeilingIsNotGround(t *testing.T) {
	pos, vel := V(0, 28), V(0, -2)
	body := Body{Pos: &pos, Vel: &vel, HalfW: 10, HalfH: 10}

	grounded := Resolve(body, []Box{block(0, 0)}, testResponse, nil)

	assert.False(t, grounded)
	assert.Greater(t, pos.Y, 30.0)
	assert.InDelta(t, 0.6, vel.Y, 1e-9)
}

func TestResolveLeavesNoOverlap(t *testing.T) {
	tests := []struct {
		name   string
		pos    Vec2
		vel    Vec2
		solids []Box
	}{
		{"floor seam", V(20, -27), V(0, 2), []Box{block(0, 0), block(40, 0)}},
		{"seam offset", V(33, -26), V(1, 2), []Box{block(0, 0), block(40, 0)}},
		{"floor and wall corner", V(-27, -26), V(-1, 2), []Box{block(0, 0), block(-40, 0), block(-40, -40)}},
		{"wall column", V(27, -40), V(-2, 0), []Box{block(0, 0), block(0, -40), block(0, -80)}},
		{"deep from top", V(5, -16), V(0, 4), []Box{block(0, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			body := Body{Pos: &pos, Vel: &vel, HalfW: 10, HalfH: 10}
			Resolve(body, tt.solids, testResponse, NewRNG(1))

			for _, s := range tt.solids {
				assert.False(t, body.box().Intersects(s), "still overlapping %+v at %+v", s, pos)
			}
		})
	}
}

func TestResolveNoContactUnchanged(t *testing.T) {
	pos, vel := V(100, 100), V(1, 1)
	body := Body{Pos: &pos, Vel: &vel, HalfW: 10, HalfH: 10}

	grounded := Resolve(body, []Box{block(0, 0)}, testResponse, NewRNG(1))

	assert.False(t, grounded)
	assert.Equal(t, V(100, 100), pos)
	assert.Equal(t, V(1, 1), vel)
}

func TestTouching(t *testing.T) {
	a := &Pickup{Pos: V(0, 0), Size: 20}
	b := &Pickup{Pos: V(19.9, 0), Size: 20}
	c := &Pickup{Pos: V(20, 0), Size: 20}

	assert.True(t, Touching(a, b))
	assert.False(t, Touching(a, c))
}

func TestHitsAny(t *testing.T) {
	solids := []Box{block(0, 0), block(100, 0)}
	assert.True(t, HitsAny(BoxAt(V(78, 0), 8, 8), solids))
	assert.False(t, HitsAny(BoxAt(V(50, 0), 8, 8), solids))
	assert.False(t, HitsAny(BoxAt(V(50, 0), 8, 8), nil))
}

func TestVecOps(t *testing.T) {
	v := V(3, 4)
	assert.InDelta(t, 5.0, v.Len(), 1e-9)
	assert.InDelta(t, 1.0, v.Normalize().Len(), 1e-9)
	assert.InDelta(t, 2.0, v.SetMag(2).Len(), 1e-9)
	assert.InDelta(t, 1.8, v.Limit(1.8).Len(), 1e-9)
	assert.Equal(t, v, v.Limit(10))
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.InDelta(t, 5.0, Dist(V(0, 0), v), 1e-9)
	assert.InDelta(t, math.Pi/2, V(0, 2).Heading(), 1e-9)
	assert.InDelta(t, math.Pi, V(-1, 0).Heading(), 1e-9)
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for range 100 {
		require.Equal(t, a.Next(), b.Next())
	}

	r := NewRNG(7)
	for range 1000 {
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		x := r.Range(25, 35)
		require.GreaterOrEqual(t, x, 25.0)
		require.Less(t, x, 35.0)
	}
}
