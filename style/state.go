package style

import "fmt"

// State is a widget interaction state. StateNone is the resting state and
// carries no override bag of its own.
type State int

const (
	StateNone State = iota
	StateHover
	StatePressed
	StateFocused
)

// String returns the state name used in documents and the CLI.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	case StateFocused:
		return "focused"
	}
	return "unknown"
}

// ParseState maps a state name back to its State.
func ParseState(s string) (State, error) {
	switch s {
	case "none":
		return StateNone, nil
	case "hover":
		return StateHover, nil
	case "pressed":
		return StatePressed, nil
	case "focused":
		return StateFocused, nil
	}
	return 0, fmt.Errorf("unknown interaction state %q", s)
}

// InteractionStateCascade holds per-state override bags layered on top of
// a breakpoint-resolved bag. A state's bag is created lazily on the first
// edit made while that state tab is active, and deleted by ResetState.
type InteractionStateCascade struct {
	Hover   PropertyBag `json:"hover,omitempty"`
	Pressed PropertyBag `json:"pressed,omitempty"`
	Focused PropertyBag `json:"focused,omitempty"`
}

// NewInteractionStateCascade returns a cascade with no state overrides.
func NewInteractionStateCascade() *InteractionStateCascade {
	return &InteractionStateCascade{}
}

// Resolve overlays the state's override bag onto the breakpoint-resolved
// input. StateNone (or a state with no overrides) returns the input
// unchanged, so non-interactive resolution stays allocation-free.
func (c *InteractionStateCascade) Resolve(resolved PropertyBag, s State) PropertyBag {
	bag := c.bagFor(s)
	if len(bag) == 0 {
		return resolved
	}
	return Overlay(resolved, bag)
}

// HasOverridesForState reports whether a non-empty override bag exists for
// the state. Drives inspector badges, never resolution logic.
func (c *InteractionStateCascade) HasOverridesForState(s State) bool {
	return len(c.bagFor(s)) > 0
}

// SetProperty writes a value into the state's bag, auto-creating it on
// first write. Writes to StateNone are ignored: resting-state edits belong
// to the breakpoint cascade, not here. Unknown keys are ignored.
func (c *InteractionStateCascade) SetProperty(s State, key string, v Value) {
	if s == StateNone || !ActiveCatalog().Knows(key) {
		return
	}
	switch s {
	case StateHover:
		if c.Hover == nil {
			c.Hover = NewBag()
		}
		c.Hover.Set(key, v)
	case StatePressed:
		if c.Pressed == nil {
			c.Pressed = NewBag()
		}
		c.Pressed.Set(key, v)
	case StateFocused:
		if c.Focused == nil {
			c.Focused = NewBag()
		}
		c.Focused.Set(key, v)
	}
}

// RemoveProperty deletes a key from the state's bag. No-op if absent.
func (c *InteractionStateCascade) RemoveProperty(s State, key string) {
	c.bagFor(s).Delete(key)
}

// ResetState deletes the state's bag entirely (not a blank bag), so the
// state reads as having no overrides afterwards.
func (c *InteractionStateCascade) ResetState(s State) {
	switch s {
	case StateHover:
		c.Hover = nil
	case StatePressed:
		c.Pressed = nil
	case StateFocused:
		c.Focused = nil
	}
}

func (c *InteractionStateCascade) bagFor(s State) PropertyBag {
	switch s {
	case StateHover:
		return c.Hover
	case StatePressed:
		return c.Pressed
	case StateFocused:
		return c.Focused
	}
	return nil
}
