package style

import "testing"

// Breakpoint inheritance is layered desktop → tablet → mobile: each
// narrower breakpoint inherits everything not explicitly overridden at a
// wider one. These tests lock that direction.
func TestBreakpointCascadeResolve(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *BreakpointCascade
		bp       Breakpoint
		validate func(*testing.T, PropertyBag)
	}{
		{
			name: "desktop returns base unchanged",
			build: func() *BreakpointCascade {
				c := NewBreakpointCascade()
				c.SetProperty(Desktop, "color", Color("#fff"))
				return c
			},
			bp: Desktop,
			validate: func(t *testing.T, got PropertyBag) {
				if v, _ := got.Get("color"); !v.Equal(Color("#fff")) {
					t.Errorf("color = %v, want #fff", v.Raw)
				}
			},
		},
		{
			name: "tablet inherits base when no tablet override",
			build: func() *BreakpointCascade {
				c := NewBreakpointCascade()
				c.SetProperty(Desktop, "color", Color("#fff"))
				c.SetProperty(Mobile, "color", Color("#000"))
				return c
			},
			bp: Tablet,
			validate: func(t *testing.T, got PropertyBag) {
				if v, _ := got.Get("color"); !v.Equal(Color("#fff")) {
					t.Errorf("tablet color = %v, want base #fff (mobile must not leak up)", v.Raw)
				}
			},
		},
		{
			name: "mobile override wins over base",
			build: func() *BreakpointCascade {
				c := NewBreakpointCascade()
				c.SetProperty(Desktop, "color", Color("#fff"))
				c.SetProperty(Mobile, "color", Color("#000"))
				return c
			},
			bp: Mobile,
			validate: func(t *testing.T, got PropertyBag) {
				if v, _ := got.Get("color"); !v.Equal(Color("#000")) {
					t.Errorf("mobile color = %v, want #000", v.Raw)
				}
			},
		},
		{
			name: "mobile cascades through tablet",
			build: func() *BreakpointCascade {
				c := NewBreakpointCascade()
				c.SetProperty(Desktop, "color", Color("#fff"))
				c.SetProperty(Desktop, "opacity", Percent(100))
				c.SetProperty(Tablet, "color", Color("#888"))
				return c
			},
			bp: Mobile,
			validate: func(t *testing.T, got PropertyBag) {
				if v, _ := got.Get("color"); !v.Equal(Color("#888")) {
					t.Errorf("mobile color = %v, want tablet #888", v.Raw)
				}
				if v, _ := got.Get("opacity"); !v.Equal(Percent(100)) {
					t.Errorf("mobile opacity = %v, want base 100%%", v.Raw)
				}
			},
		},
		{
			name: "missing bags treated as empty",
			build: func() *BreakpointCascade {
				return NewBreakpointCascade()
			},
			bp: Mobile,
			validate: func(t *testing.T, got PropertyBag) {
				if got.Len() != 0 {
					t.Errorf("empty cascade resolved to %d properties", got.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build().Resolve(tt.bp))
		})
	}
}

func TestBreakpointResolveIdempotent(t *testing.T) {
	c := NewBreakpointCascade()
	c.SetProperty(Desktop, "color", Color("#fff"))
	c.SetProperty(Tablet, "opacity", Percent(50))

	first := c.Resolve(Tablet)
	second := c.Resolve(Tablet)
	if !first.Equal(second) {
		t.Error("resolving twice with identical inputs should give equal bags")
	}

	// The resolved bag is a view, not the stored layer: mutating it must
	// not write back into the cascade.
	first.Set("color", Color("#000"))
	if v, _ := c.Base.Get("color"); !v.Equal(Color("#fff")) {
		t.Error("resolved bag aliases the base layer")
	}
}

func TestBreakpointEditScoping(t *testing.T) {
	c := NewBreakpointCascade()
	c.SetProperty(Desktop, "color", Color("#fff"))
	c.SetProperty(Tablet, "color", Color("#888"))

	// Editing tablet never mutates base.
	if v, _ := c.Base.Get("color"); !v.Equal(Color("#fff")) {
		t.Error("tablet edit mutated base")
	}
	// Tablet layer was created lazily and holds only the edit.
	if c.Tablet.Len() != 1 {
		t.Errorf("tablet layer has %d properties, want 1", c.Tablet.Len())
	}
	// Mobile layer is still absent.
	if c.Mobile != nil {
		t.Error("mobile layer should not exist before first mobile edit")
	}
}

func TestBreakpointUnknownPropertyIgnored(t *testing.T) {
	c := NewBreakpointCascade()
	c.SetProperty(Desktop, "notAProperty", Number(1))
	if c.Base.Has("notAProperty") {
		t.Error("unknown property write should be a no-op")
	}

	if err := c.SetPropertyStrict(Desktop, "notAProperty", Number(1)); err == nil {
		t.Error("strict write of unknown property should fail")
	}
	if err := c.SetPropertyStrict(Desktop, "opacity", Percent(50)); err != nil {
		t.Errorf("strict write of known property failed: %v", err)
	}
}

func TestResetBreakpoint(t *testing.T) {
	c := NewBreakpointCascade()
	c.SetProperty(Desktop, "color", Color("#fff"))
	c.SetProperty(Mobile, "color", Color("#000"))

	c.ResetBreakpoint(Mobile)
	if c.Mobile != nil {
		t.Error("reset should delete the mobile layer, not blank it")
	}
	if v, _ := c.Resolve(Mobile).Get("color"); !v.Equal(Color("#fff")) {
		t.Error("after reset mobile should inherit base again")
	}

	// Base resets to an empty bag, never to nil.
	c.ResetBreakpoint(Desktop)
	if c.Base == nil {
		t.Error("base layer must survive reset as an empty bag")
	}
}

func TestParseBreakpoint(t *testing.T) {
	for _, bp := range []Breakpoint{Desktop, Tablet, Mobile} {
		got, err := ParseBreakpoint(bp.String())
		if err != nil || got != bp {
			t.Errorf("ParseBreakpoint(%q) = %v, %v", bp.String(), got, err)
		}
	}
	if _, err := ParseBreakpoint("watch"); err == nil {
		t.Error("expected error for unknown breakpoint name")
	}
}
