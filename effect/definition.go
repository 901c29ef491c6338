package effect

import (
	"fmt"

	"github.com/agiangrant/sectioned/style"
)

// Trigger identifies what starts an effect.
type Trigger int

const (
	TriggerHover Trigger = iota
	TriggerScroll
	TriggerAppear
	TriggerLoop
)

// Triggers lists every trigger in document order.
var Triggers = []Trigger{TriggerHover, TriggerScroll, TriggerAppear, TriggerLoop}

// String returns the trigger name used in documents and the CLI.
func (t Trigger) String() string {
	switch t {
	case TriggerHover:
		return "hover"
	case TriggerScroll:
		return "scroll"
	case TriggerAppear:
		return "appear"
	case TriggerLoop:
		return "loop"
	}
	return "unknown"
}

// ParseTrigger maps a trigger name back to its Trigger.
func ParseTrigger(s string) (Trigger, error) {
	switch s {
	case "hover":
		return TriggerHover, nil
	case "scroll":
		return TriggerScroll, nil
	case "appear":
		return TriggerAppear, nil
	case "loop":
		return TriggerLoop, nil
	}
	return 0, fmt.Errorf("unknown effect trigger %q", s)
}

// ScrollRange maps scroll progress to effect progress.
type ScrollRange struct {
	Start      float64 `json:"start"` // progress 0-100 where the effect begins
	End        float64 `json:"end"`   // progress 0-100 where the effect completes
	RelativeTo string  `json:"relativeTo"`
}

// ScrollParams configures a scroll-driven effect.
type ScrollParams struct {
	Trigger     string      `json:"trigger"`
	ScrollRange ScrollRange `json:"scrollRange"`
}

// AppearParams configures an entrance effect.
type AppearParams struct {
	Trigger   string  `json:"trigger"` // "inView" or "load"
	Threshold float64 `json:"threshold"`
	Once      bool    `json:"once"`
}

// LoopParams configures a repeating effect.
type LoopParams struct {
	StartTrigger string `json:"startTrigger"`
	StopTrigger  string `json:"stopTrigger"`
	Reverse      bool   `json:"reverse"`
	Loop         int    `json:"loop"` // 0 means repeat forever
}

// Definition is one trigger's full effect configuration on a block.
// A block with no definition for a trigger has that effect off; the first
// enable materializes a default definition, and reset deletes it again.
//
// Every hand edit to keyframes or timing flips Preset to PresetCustom:
// hand-editing invalidates the preset-locked state. Edits therefore go
// through the setter methods, not direct field writes.
type Definition struct {
	Enabled         bool            `json:"enabled"`
	Preset          PresetID        `json:"preset"`
	Keyframes       KeyframePair    `json:"keyframes"`
	Duration        float64         `json:"duration"` // milliseconds
	Delay           float64         `json:"delay"`    // milliseconds
	Easing          string          `json:"easing"`
	TransformOrigin string          `json:"transformOrigin"`
	Scroll          *ScrollParams   `json:"scroll,omitempty"`
	Appear          *AppearParams   `json:"appear,omitempty"`
	Loop            *LoopParams     `json:"loop,omitempty"`
	Stagger         *StaggerConfig  `json:"stagger,omitempty"`
	ChildOverrides  []ChildOverride `json:"childOverrides,omitempty"`
}

// NewDefinition returns the default definition materialized on first
// enable: the fade-in preset plus neutral trigger params for the trigger.
func NewDefinition(trigger Trigger) *Definition {
	def := &Definition{Enabled: true, Keyframes: NewKeyframePair()}
	def.ApplyPreset("fade-in")
	switch trigger {
	case TriggerScroll:
		def.Scroll = &ScrollParams{
			Trigger:     "scroll",
			ScrollRange: ScrollRange{Start: 0, End: 100, RelativeTo: "viewport"},
		}
	case TriggerAppear:
		def.Appear = &AppearParams{Trigger: "inView", Threshold: 0.2, Once: true}
	case TriggerLoop:
		def.Loop = &LoopParams{StartTrigger: "load", Reverse: true, Loop: 0}
	}
	return def
}

// ApplyPreset replaces keyframes, duration, easing, and transform origin
// from the preset table in one step, discarding any hand-edited values.
// Unknown ids are a no-op; PresetCustom only records the hand-authored
// state and changes no values.
func (d *Definition) ApplyPreset(id PresetID) {
	if id == PresetCustom {
		d.Preset = PresetCustom
		return
	}
	preset, ok := LookupPreset(id)
	if !ok {
		return
	}
	f := preset.fields()
	d.Keyframes = f.keyframes
	d.Duration = f.duration
	d.Easing = f.easing
	d.TransformOrigin = f.transformOrigin
	d.Preset = id
}

// markCustom records that the definition no longer tracks its preset.
func (d *Definition) markCustom() {
	d.Preset = PresetCustom
}

// AddProperty adds a property to both keyframe sides with its catalog
// default. Unknown keys are ignored.
func (d *Definition) AddProperty(key string) {
	if !style.ActiveCatalog().Knows(key) {
		return
	}
	d.Keyframes.AddProperty(key)
	d.markCustom()
}

// RemoveProperty removes a property from both keyframe sides.
func (d *Definition) RemoveProperty(key string) {
	if !d.Keyframes.From.Has(key) {
		return
	}
	d.Keyframes.RemoveProperty(key)
	d.markCustom()
}

// SetKeyframeValue writes one side of an already-added property. Writes
// to properties never added are ignored.
func (d *Definition) SetKeyframeValue(side Side, key string, v style.Value) {
	if !d.Keyframes.From.Has(key) {
		return
	}
	d.Keyframes.SetValue(side, key, v)
	d.markCustom()
}

// SetDuration sets the duration in milliseconds.
func (d *Definition) SetDuration(ms float64) {
	d.Duration = ms
	d.markCustom()
}

// SetDelay sets the start delay in milliseconds.
func (d *Definition) SetDelay(ms float64) {
	d.Delay = ms
	d.markCustom()
}

// SetEasing sets the easing keyword.
func (d *Definition) SetEasing(name string) {
	d.Easing = name
	d.markCustom()
}

// SetTransformOrigin sets the transform origin keyword.
func (d *Definition) SetTransformOrigin(origin string) {
	d.TransformOrigin = origin
	d.markCustom()
}

// Clone returns a deep copy of the definition.
func (d *Definition) Clone() *Definition {
	out := *d
	out.Keyframes = d.Keyframes.Clone()
	if d.Scroll != nil {
		s := *d.Scroll
		out.Scroll = &s
	}
	if d.Appear != nil {
		a := *d.Appear
		out.Appear = &a
	}
	if d.Loop != nil {
		l := *d.Loop
		out.Loop = &l
	}
	if d.Stagger != nil {
		st := *d.Stagger
		out.Stagger = &st
	}
	if d.ChildOverrides != nil {
		out.ChildOverrides = make([]ChildOverride, len(d.ChildOverrides))
		for i, ov := range d.ChildOverrides {
			out.ChildOverrides[i] = ov.clone()
		}
	}
	return &out
}
