package effect

import "github.com/agiangrant/sectioned/style"

// PartialKeyframes overrides individual keyframe properties per side. A
// child can pin to.translateX while inheriting from.translateX and every
// other property from the parent's keyframes.
type PartialKeyframes struct {
	From style.PropertyBag `json:"from,omitempty"`
	To   style.PropertyBag `json:"to,omitempty"`
}

// ChildOverride is a partial effect definition scoped to one child.
// Nil fields inherit from the parent definition; set fields override it.
// ChildID is a weak reference: the override never owns the child and is
// pruned when the child leaves its parent's child list.
type ChildOverride struct {
	ChildID     string            `json:"childId"`
	Preset      *PresetID         `json:"preset,omitempty"`
	Keyframes   *PartialKeyframes `json:"keyframes,omitempty"`
	Duration    *float64          `json:"duration,omitempty"`
	Delay       *float64          `json:"delay,omitempty"`
	Easing      *string           `json:"easing,omitempty"`
	ScrollRange *ScrollRange      `json:"scrollRange,omitempty"`
}

func (ov ChildOverride) clone() ChildOverride {
	out := ChildOverride{ChildID: ov.ChildID}
	if ov.Preset != nil {
		p := *ov.Preset
		out.Preset = &p
	}
	if ov.Keyframes != nil {
		out.Keyframes = &PartialKeyframes{}
		if ov.Keyframes.From != nil {
			out.Keyframes.From = ov.Keyframes.From.Clone()
		}
		if ov.Keyframes.To != nil {
			out.Keyframes.To = ov.Keyframes.To.Clone()
		}
	}
	if ov.Duration != nil {
		d := *ov.Duration
		out.Duration = &d
	}
	if ov.Delay != nil {
		d := *ov.Delay
		out.Delay = &d
	}
	if ov.Easing != nil {
		e := *ov.Easing
		out.Easing = &e
	}
	if ov.ScrollRange != nil {
		r := *ov.ScrollRange
		out.ScrollRange = &r
	}
	return out
}

// merge applies the set fields of src onto ov. Keyframe bags merge
// per side, per property.
func (ov *ChildOverride) merge(src ChildOverride) {
	if src.Preset != nil {
		p := *src.Preset
		ov.Preset = &p
	}
	if src.Keyframes != nil {
		if ov.Keyframes == nil {
			ov.Keyframes = &PartialKeyframes{}
		}
		if src.Keyframes.From != nil {
			if ov.Keyframes.From == nil {
				ov.Keyframes.From = style.NewBag()
			}
			ov.Keyframes.From.Merge(src.Keyframes.From)
		}
		if src.Keyframes.To != nil {
			if ov.Keyframes.To == nil {
				ov.Keyframes.To = style.NewBag()
			}
			ov.Keyframes.To.Merge(src.Keyframes.To)
		}
	}
	if src.Duration != nil {
		d := *src.Duration
		ov.Duration = &d
	}
	if src.Delay != nil {
		d := *src.Delay
		ov.Delay = &d
	}
	if src.Easing != nil {
		e := *src.Easing
		ov.Easing = &e
	}
	if src.ScrollRange != nil {
		r := *src.ScrollRange
		ov.ScrollRange = &r
	}
}

// ChildOverrideFor returns the override record for a child, if any.
func (d *Definition) ChildOverrideFor(childID string) (*ChildOverride, bool) {
	for i := range d.ChildOverrides {
		if d.ChildOverrides[i].ChildID == childID {
			return &d.ChildOverrides[i], true
		}
	}
	return nil, false
}

// UpsertChildOverride creates the child's override record on first write
// (inheriting every field, then the set fields of ov applied) or merges ov
// into the existing record. At most one record exists per child. The
// caller is responsible for only passing ids that are current children;
// the definition does not validate membership.
func (d *Definition) UpsertChildOverride(childID string, ov ChildOverride) {
	ov.ChildID = childID
	if existing, ok := d.ChildOverrideFor(childID); ok {
		existing.merge(ov)
		return
	}
	fresh := ChildOverride{ChildID: childID}
	fresh.merge(ov)
	d.ChildOverrides = append(d.ChildOverrides, fresh)
}

// RemoveChildOverride deletes the child's override record, reverting the
// child to full inheritance. No-op when no record exists.
func (d *Definition) RemoveChildOverride(childID string) {
	for i := range d.ChildOverrides {
		if d.ChildOverrides[i].ChildID == childID {
			d.ChildOverrides = append(d.ChildOverrides[:i], d.ChildOverrides[i+1:]...)
			return
		}
	}
}

// PruneChildOverrides drops override records whose child id is not in the
// given current child list. Called opportunistically when the child list
// changes; a dangling record also resolves as absent (see EffectiveFor).
func (d *Definition) PruneChildOverrides(childIDs []string) {
	if len(d.ChildOverrides) == 0 {
		return
	}
	valid := make(map[string]struct{}, len(childIDs))
	for _, id := range childIDs {
		valid[id] = struct{}{}
	}
	kept := d.ChildOverrides[:0]
	for _, ov := range d.ChildOverrides {
		if _, ok := valid[ov.ChildID]; ok {
			kept = append(kept, ov)
		}
	}
	d.ChildOverrides = kept
}

// EffectiveFor resolves the animation a child actually plays. A child
// with no override record gets the parent definition itself, so later
// parent edits keep applying to non-overridden children. A child with a
// record gets a fresh effective view: set fields override, unset fields
// inherit, and keyframes merge per side per property.
func EffectiveFor(parent *Definition, childID string) *Definition {
	ov, ok := parent.ChildOverrideFor(childID)
	if !ok {
		return parent
	}
	eff := parent.Clone()
	eff.ChildOverrides = nil
	if ov.Preset != nil {
		eff.ApplyPreset(*ov.Preset)
	}
	if ov.Keyframes != nil {
		// Only keys the pair already exposes merge in, keeping the
		// from/to key sets symmetric on the effective view.
		for key, v := range ov.Keyframes.From {
			if eff.Keyframes.From.Has(key) {
				eff.Keyframes.From.Set(key, v)
			}
		}
		for key, v := range ov.Keyframes.To {
			if eff.Keyframes.To.Has(key) {
				eff.Keyframes.To.Set(key, v)
			}
		}
		eff.Preset = PresetCustom
	}
	if ov.Duration != nil {
		eff.Duration = *ov.Duration
	}
	if ov.Delay != nil {
		eff.Delay = *ov.Delay
	}
	if ov.Easing != nil {
		eff.Easing = *ov.Easing
	}
	if ov.ScrollRange != nil && eff.Scroll != nil {
		eff.Scroll.ScrollRange = *ov.ScrollRange
	}
	return eff
}
