package effect

import (
	"errors"
	"fmt"

	"github.com/agiangrant/sectioned/style"
)

// ErrMissingOverrideTarget is returned by strict keyframe writes when the
// targeted property was never added to the pair.
var ErrMissingOverrideTarget = errors.New("property not present in keyframes")

// Side selects one end of a keyframe pair.
type Side int

const (
	SideFrom Side = iota
	SideTo
)

// String returns the side name used in documents.
func (s Side) String() string {
	if s == SideTo {
		return "to"
	}
	return "from"
}

// ParseSide maps a side name back to its Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "from":
		return SideFrom, nil
	case "to":
		return SideTo, nil
	}
	return 0, fmt.Errorf("unknown keyframe side %q", s)
}

// KeyframePair holds the start and end property sets of one effect.
// From and To always expose the same key set: adding a property seeds a
// default on both sides in one step, removing deletes from both sides in
// one step. There is no observable state where the sets differ.
type KeyframePair struct {
	From style.PropertyBag `json:"from"`
	To   style.PropertyBag `json:"to"`
}

// NewKeyframePair returns an empty pair.
func NewKeyframePair() KeyframePair {
	return KeyframePair{From: style.NewBag(), To: style.NewBag()}
}

// AddProperty inserts key into both sides with the catalog's declared
// default. Unknown keys are a no-op; keys already present keep their
// current values.
func (kp *KeyframePair) AddProperty(key string) {
	spec, ok := style.ActiveCatalog().Lookup(key)
	if !ok || kp.From.Has(key) {
		return
	}
	kp.ensureBags()
	kp.From.Set(key, spec.Default)
	kp.To.Set(key, spec.Default)
}

// AddPropertyStrict is AddProperty that reports unknown keys.
func (kp *KeyframePair) AddPropertyStrict(key string) error {
	if !style.ActiveCatalog().Knows(key) {
		return fmt.Errorf("%w: %q", style.ErrUnknownProperty, key)
	}
	kp.AddProperty(key)
	return nil
}

// RemoveProperty deletes key from both sides. No-op if absent.
func (kp *KeyframePair) RemoveProperty(key string) {
	kp.From.Delete(key)
	kp.To.Delete(key)
}

// SetValue writes a value to one side of an already-added property.
// Writes to properties that were never added are ignored, preserving the
// symmetric key-set invariant.
func (kp *KeyframePair) SetValue(side Side, key string, v style.Value) {
	_ = kp.setValue(side, key, v)
}

// SetValueStrict is SetValue that reports ErrMissingOverrideTarget.
func (kp *KeyframePair) SetValueStrict(side Side, key string, v style.Value) error {
	return kp.setValue(side, key, v)
}

func (kp *KeyframePair) setValue(side Side, key string, v style.Value) error {
	if !kp.From.Has(key) {
		return fmt.Errorf("%w: %q", ErrMissingOverrideTarget, key)
	}
	if side == SideTo {
		kp.To.Set(key, v)
	} else {
		kp.From.Set(key, v)
	}
	return nil
}

// Keys returns the shared key set in sorted order.
func (kp *KeyframePair) Keys() []string {
	return kp.From.Keys()
}

// Clone returns an independent copy of the pair.
func (kp KeyframePair) Clone() KeyframePair {
	return KeyframePair{From: kp.From.Clone(), To: kp.To.Clone()}
}

// Equal reports whether both sides match the other pair.
func (kp KeyframePair) Equal(other KeyframePair) bool {
	return kp.From.Equal(other.From) && kp.To.Equal(other.To)
}

func (kp *KeyframePair) ensureBags() {
	if kp.From == nil {
		kp.From = style.NewBag()
	}
	if kp.To == nil {
		kp.To = style.NewBag()
	}
}
