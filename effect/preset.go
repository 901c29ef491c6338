package effect

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/sectioned/style"
)

// PresetID names a fixed keyframe/timing bundle. PresetCustom marks a
// definition whose values were hand-edited and no longer track a preset.
type PresetID string

// PresetCustom is not a preset: applying it changes nothing, it only
// records that the current values are hand-authored.
const PresetCustom PresetID = "custom"

// Preset is one named bundle of keyframe and timing values. Applying a
// preset replaces a definition's keyframes, duration, easing, and
// transform origin in a single step.
type Preset struct {
	ID              PresetID
	Keyframes       KeyframePair
	Duration        float64 // milliseconds
	Easing          string
	TransformOrigin string
}

// fields returns the definition field set this preset pins, with the
// keyframes cloned so definitions never alias the preset table.
func (p Preset) fields() presetFields {
	return presetFields{
		keyframes:       p.Keyframes.Clone(),
		duration:        p.Duration,
		easing:          p.Easing,
		transformOrigin: p.TransformOrigin,
	}
}

// presetFields is the unit of atomic preset application: every field a
// preset pins, replaced together so no partial-preset state is observable.
type presetFields struct {
	keyframes       KeyframePair
	duration        float64
	easing          string
	transformOrigin string
}

// registeredPresets holds the consumer's preset table, if any.
// If nil, lookups fall back to the built-in presets below.
var registeredPresets map[PresetID]Preset

// SetPresets registers the consumer's preset table. Pass nil to revert to
// the built-in presets.
func SetPresets(presets []Preset) {
	if presets == nil {
		registeredPresets = nil
		return
	}
	table := make(map[PresetID]Preset, len(presets))
	for _, p := range presets {
		table[p.ID] = p
	}
	registeredPresets = table
}

// LookupPreset returns the preset for an id from the registered table or
// the built-in fallback. PresetCustom never resolves to a preset.
func LookupPreset(id PresetID) (Preset, bool) {
	if id == PresetCustom {
		return Preset{}, false
	}
	if registeredPresets != nil {
		p, ok := registeredPresets[id]
		return p, ok
	}
	p, ok := builtinPresets[id]
	return p, ok
}

// PresetIDs returns the ids of the active preset table in sorted order.
func PresetIDs() []PresetID {
	table := builtinPresets
	if registeredPresets != nil {
		table = registeredPresets
	}
	ids := make([]PresetID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func pairOf(keys []string, from, to []style.Value) KeyframePair {
	kp := NewKeyframePair()
	for i, k := range keys {
		kp.From.Set(k, from[i])
		kp.To.Set(k, to[i])
	}
	return kp
}

// builtinPresets is the framework default preset table, used when no
// consumer table has been registered via SetPresets.
var builtinPresets = map[PresetID]Preset{
	"fade-in": {
		ID: "fade-in",
		Keyframes: pairOf([]string{"opacity"},
			[]style.Value{style.Percent(0)},
			[]style.Value{style.Percent(100)}),
		Duration: 400, Easing: "ease-out", TransformOrigin: "center",
	},
	"fade-out": {
		ID: "fade-out",
		Keyframes: pairOf([]string{"opacity"},
			[]style.Value{style.Percent(100)},
			[]style.Value{style.Percent(0)}),
		Duration: 400, Easing: "ease-in", TransformOrigin: "center",
	},
	"slide-up": {
		ID: "slide-up",
		Keyframes: pairOf([]string{"opacity", "translateY"},
			[]style.Value{style.Percent(0), style.Length(24, "px")},
			[]style.Value{style.Percent(100), style.Length(0, "px")}),
		Duration: 500, Easing: "ease-out-cubic", TransformOrigin: "center",
	},
	"slide-down": {
		ID: "slide-down",
		Keyframes: pairOf([]string{"opacity", "translateY"},
			[]style.Value{style.Percent(0), style.Length(-24, "px")},
			[]style.Value{style.Percent(100), style.Length(0, "px")}),
		Duration: 500, Easing: "ease-out-cubic", TransformOrigin: "center",
	},
	"slide-left": {
		ID: "slide-left",
		Keyframes: pairOf([]string{"opacity", "translateX"},
			[]style.Value{style.Percent(0), style.Length(24, "px")},
			[]style.Value{style.Percent(100), style.Length(0, "px")}),
		Duration: 500, Easing: "ease-out-cubic", TransformOrigin: "center",
	},
	"slide-right": {
		ID: "slide-right",
		Keyframes: pairOf([]string{"opacity", "translateX"},
			[]style.Value{style.Percent(0), style.Length(-24, "px")},
			[]style.Value{style.Percent(100), style.Length(0, "px")}),
		Duration: 500, Easing: "ease-out-cubic", TransformOrigin: "center",
	},
	"zoom-in": {
		ID: "zoom-in",
		Keyframes: pairOf([]string{"opacity", "scale"},
			[]style.Value{style.Percent(0), style.Number(0.8)},
			[]style.Value{style.Percent(100), style.Number(1)}),
		Duration: 450, Easing: "ease-out-cubic", TransformOrigin: "center",
	},
	"zoom-out": {
		ID: "zoom-out",
		Keyframes: pairOf([]string{"opacity", "scale"},
			[]style.Value{style.Percent(0), style.Number(1.2)},
			[]style.Value{style.Percent(100), style.Number(1)}),
		Duration: 450, Easing: "ease-out-cubic", TransformOrigin: "center",
	},
	"pop": {
		ID: "pop",
		Keyframes: pairOf([]string{"scale"},
			[]style.Value{style.Number(0)},
			[]style.Value{style.Number(1)}),
		Duration: 600, Easing: "ease-out-back", TransformOrigin: "center",
	},
	"float": {
		ID: "float",
		Keyframes: pairOf([]string{"translateY"},
			[]style.Value{style.Length(0, "px")},
			[]style.Value{style.Length(-8, "px")}),
		Duration: 2000, Easing: "ease-in-out", TransformOrigin: "center",
	},
}

// presetFile mirrors the [preset.<id>] tables of a preset TOML document:
//
//	[preset.fade-in]
//	duration = 400
//	easing = "ease-out"
//	origin = "center"
//	from = { opacity = "0%" }
//	to = { opacity = "100%" }
type presetFile struct {
	Preset map[string]presetEntry `toml:"preset"`
}

type presetEntry struct {
	Duration float64           `toml:"duration"`
	Easing   string            `toml:"easing"`
	Origin   string            `toml:"origin"`
	From     map[string]string `toml:"from"`
	To       map[string]string `toml:"to"`
}

// LoadPresets parses a preset TOML document. From/to key sets must match;
// a preset that breaks the symmetry is rejected.
func LoadPresets(data []byte) ([]Preset, error) {
	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	presets := make([]Preset, 0, len(file.Preset))
	for id, entry := range file.Preset {
		if len(entry.From) != len(entry.To) {
			return nil, fmt.Errorf("preset %q: from/to key sets differ", id)
		}
		kp := NewKeyframePair()
		for key, raw := range entry.From {
			toRaw, ok := entry.To[key]
			if !ok {
				return nil, fmt.Errorf("preset %q: property %q missing on the to side", id, key)
			}
			kp.From.Set(key, style.ParseValue(raw))
			kp.To.Set(key, style.ParseValue(toRaw))
		}
		origin := entry.Origin
		if origin == "" {
			origin = "center"
		}
		presets = append(presets, Preset{
			ID:              PresetID(id),
			Keyframes:       kp,
			Duration:        entry.Duration,
			Easing:          entry.Easing,
			TransformOrigin: origin,
		})
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, nil
}
