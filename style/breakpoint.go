package style

import "fmt"

// Breakpoint identifies one responsive layer. Desktop is the base layer;
// Tablet and Mobile are progressively narrower override layers.
type Breakpoint int

const (
	Desktop Breakpoint = iota
	Tablet
	Mobile
)

// String returns the breakpoint name used in documents and the CLI.
func (b Breakpoint) String() string {
	switch b {
	case Desktop:
		return "desktop"
	case Tablet:
		return "tablet"
	case Mobile:
		return "mobile"
	}
	return "unknown"
}

// ParseBreakpoint maps a breakpoint name back to its Breakpoint.
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch s {
	case "desktop":
		return Desktop, nil
	case "tablet":
		return Tablet, nil
	case "mobile":
		return Mobile, nil
	}
	return 0, fmt.Errorf("unknown breakpoint %q", s)
}

// BreakpointCascade holds a block's base styles plus optional tablet and
// mobile override bags. A nil override bag means no overrides at that
// breakpoint; it is created lazily on first write.
type BreakpointCascade struct {
	Base   PropertyBag `json:"base"`
	Tablet PropertyBag `json:"tablet,omitempty"`
	Mobile PropertyBag `json:"mobile,omitempty"`
}

// NewBreakpointCascade returns a cascade with an empty base bag and no
// tablet/mobile overrides.
func NewBreakpointCascade() *BreakpointCascade {
	return &BreakpointCascade{Base: NewBag()}
}

// Resolve returns the effective bag for a breakpoint. Narrower breakpoints
// inherit everything not explicitly overridden at a wider one:
// desktop = base, tablet = base+tablet, mobile = base+tablet+mobile.
// Missing override bags are treated as empty; this never fails.
func (c *BreakpointCascade) Resolve(bp Breakpoint) PropertyBag {
	switch bp {
	case Tablet:
		return Overlay(c.Base, c.Tablet)
	case Mobile:
		return Overlay(c.Base, c.Tablet, c.Mobile)
	default:
		return c.Base.Clone()
	}
}

// SetProperty writes a value into the addressed breakpoint's bag only,
// creating the bag on first write. Wider bags and base are never touched.
// Keys the active catalog does not recognize are ignored.
func (c *BreakpointCascade) SetProperty(bp Breakpoint, key string, v Value) {
	if !ActiveCatalog().Knows(key) {
		return
	}
	c.bagFor(bp).Set(key, v)
}

// SetPropertyStrict is SetProperty that reports ErrUnknownProperty instead
// of silently ignoring unrecognized keys.
func (c *BreakpointCascade) SetPropertyStrict(bp Breakpoint, key string, v Value) error {
	if !ActiveCatalog().Knows(key) {
		return fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}
	c.bagFor(bp).Set(key, v)
	return nil
}

// RemoveProperty deletes a key from the addressed breakpoint's bag.
// No-op when the bag or the key is absent.
func (c *BreakpointCascade) RemoveProperty(bp Breakpoint, key string) {
	switch bp {
	case Tablet:
		c.Tablet.Delete(key)
	case Mobile:
		c.Mobile.Delete(key)
	default:
		c.Base.Delete(key)
	}
}

// OverridesAt returns the raw (unresolved) bag for a breakpoint. May be
// nil for tablet/mobile when nothing was ever written there.
func (c *BreakpointCascade) OverridesAt(bp Breakpoint) PropertyBag {
	switch bp {
	case Tablet:
		return c.Tablet
	case Mobile:
		return c.Mobile
	default:
		return c.Base
	}
}

// ResetBreakpoint deletes the override bag for tablet or mobile. The base
// layer is cleared rather than deleted: a block always has a base bag.
func (c *BreakpointCascade) ResetBreakpoint(bp Breakpoint) {
	switch bp {
	case Tablet:
		c.Tablet = nil
	case Mobile:
		c.Mobile = nil
	default:
		c.Base = NewBag()
	}
}

func (c *BreakpointCascade) bagFor(bp Breakpoint) PropertyBag {
	switch bp {
	case Tablet:
		if c.Tablet == nil {
			c.Tablet = NewBag()
		}
		return c.Tablet
	case Mobile:
		if c.Mobile == nil {
			c.Mobile = NewBag()
		}
		return c.Mobile
	default:
		if c.Base == nil {
			c.Base = NewBag()
		}
		return c.Base
	}
}
