// Package sectioned is the style and effect resolution engine behind the
// section editor. Blocks carry layered style overrides (breakpoint and
// interaction state) and per-trigger animation effects; this package
// resolves the effective property set and playback configuration for a
// given (block, breakpoint, state, trigger) tuple. Rendering, drag/drop
// editing, and persistence are collaborators, not part of this engine.
package sectioned

import (
	"github.com/google/uuid"

	"github.com/agiangrant/sectioned/effect"
	"github.com/agiangrant/sectioned/style"
)

// BlockKind represents the type of block
type BlockKind string

const (
	// Container blocks
	BlockSection   BlockKind = "Section"
	BlockContainer BlockKind = "Container"
	BlockGrid      BlockKind = "Grid"

	// Content blocks
	BlockHeading BlockKind = "Heading"
	BlockText    BlockKind = "Text"
	BlockImage   BlockKind = "Image"
	BlockButton  BlockKind = "Button"
	BlockDivider BlockKind = "Divider"
)

// EffectSet holds a block's per-trigger effect definitions. A nil entry
// means the effect is off for that trigger; it is materialized on first
// enable and deleted again on reset.
type EffectSet struct {
	Hover  *effect.Definition `json:"hover,omitempty"`
	Scroll *effect.Definition `json:"scroll,omitempty"`
	Appear *effect.Definition `json:"appear,omitempty"`
	Loop   *effect.Definition `json:"loop,omitempty"`
}

// Get returns the definition for a trigger, or nil when the effect is off.
func (s *EffectSet) Get(trigger effect.Trigger) *effect.Definition {
	switch trigger {
	case effect.TriggerHover:
		return s.Hover
	case effect.TriggerScroll:
		return s.Scroll
	case effect.TriggerAppear:
		return s.Appear
	case effect.TriggerLoop:
		return s.Loop
	}
	return nil
}

func (s *EffectSet) set(trigger effect.Trigger, def *effect.Definition) {
	switch trigger {
	case effect.TriggerHover:
		s.Hover = def
	case effect.TriggerScroll:
		s.Scroll = def
	case effect.TriggerAppear:
		s.Appear = def
	case effect.TriggerLoop:
		s.Loop = def
	}
}

// Block is one node of the section tree. It owns its style cascades, its
// effect set, and its ordered child list; children are owned by value in
// document order and addressed by stable id.
type Block struct {
	ID       string                         `json:"id"`
	Kind     BlockKind                      `json:"kind"`
	Styles   *style.BreakpointCascade       `json:"styles"`
	States   *style.InteractionStateCascade `json:"states,omitempty"`
	Effects  EffectSet                      `json:"effects"`
	Children []*Block                       `json:"children,omitempty"`
}

// NewBlock creates a block of the given kind with a fresh id, empty
// cascades, and no effects.
func NewBlock(kind BlockKind) *Block {
	return &Block{
		ID:     uuid.NewString(),
		Kind:   kind,
		Styles: style.NewBreakpointCascade(),
		States: style.NewInteractionStateCascade(),
	}
}

// ============================================================================
// Tree Structure
// ============================================================================

// ChildIDs returns the ids of the block's children in document order.
func (b *Block) ChildIDs() []string {
	ids := make([]string, len(b.Children))
	for i, c := range b.Children {
		ids[i] = c.ID
	}
	return ids
}

// ChildByID returns the direct child with the given id, or nil.
func (b *Block) ChildByID(id string) *Block {
	for _, c := range b.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AddChild appends a child block.
func (b *Block) AddChild(child *Block) *Block {
	b.Children = append(b.Children, child)
	return b
}

// InsertChild inserts a child at the specified index.
func (b *Block) InsertChild(index int, child *Block) *Block {
	if index >= len(b.Children) {
		b.Children = append(b.Children, child)
		return b
	}
	if index < 0 {
		index = 0
	}
	b.Children = append(b.Children[:index+1], b.Children[index:]...)
	b.Children[index] = child
	return b
}

// RemoveChild removes a child by id and prunes any child overrides that
// referenced it from every effect definition on this block. Returns false
// when no direct child has that id.
func (b *Block) RemoveChild(id string) bool {
	for i, c := range b.Children {
		if c.ID == id {
			b.Children = append(b.Children[:i], b.Children[i+1:]...)
			b.pruneChildOverrides()
			return true
		}
	}
	return false
}

// pruneChildOverrides drops overrides for ids no longer in the child list.
func (b *Block) pruneChildOverrides() {
	ids := b.ChildIDs()
	for _, trigger := range effect.Triggers {
		if def := b.Effects.Get(trigger); def != nil {
			def.PruneChildOverrides(ids)
		}
	}
}

// ============================================================================
// Style Resolution
// ============================================================================

// ResolvedStyle returns the effective property bag for a breakpoint and
// interaction state: base cascaded through the breakpoint layers, then
// the state's overrides on top.
func (b *Block) ResolvedStyle(bp style.Breakpoint, s style.State) style.PropertyBag {
	resolved := b.Styles.Resolve(bp)
	if b.States == nil {
		return resolved
	}
	return b.States.Resolve(resolved, s)
}

// ============================================================================
// Effects
// ============================================================================

// Effect returns the definition for a trigger and whether the effect is
// on for this block.
func (b *Block) Effect(trigger effect.Trigger) (*effect.Definition, bool) {
	def := b.Effects.Get(trigger)
	return def, def != nil
}

// EnableEffect turns a trigger's effect on. The first enable materializes
// the default definition; re-enabling an existing definition only flips
// its Enabled flag and keeps its configuration.
func (b *Block) EnableEffect(trigger effect.Trigger) *effect.Definition {
	if def := b.Effects.Get(trigger); def != nil {
		def.Enabled = true
		return def
	}
	def := effect.NewDefinition(trigger)
	b.Effects.set(trigger, def)
	return def
}

// DisableEffect flips a trigger's effect off without discarding its
// configuration. No-op when the effect was never enabled.
func (b *Block) DisableEffect(trigger effect.Trigger) {
	if def := b.Effects.Get(trigger); def != nil {
		def.Enabled = false
	}
}

// ResetEffect deletes a trigger's definition entirely, reverting the
// block to the effect-off state rather than to a blanked definition.
func (b *Block) ResetEffect(trigger effect.Trigger) {
	b.Effects.set(trigger, nil)
}

// ChildPlayback is one child's resolved animation for a trigger.
type ChildPlayback struct {
	ID         string
	Definition *effect.Definition
	Delay      float64 // stagger offset in milliseconds, on top of Definition.Delay
}

// Playback resolves everything the preview collaborator needs to run one
// trigger's effect: the parent definition, the effective per-child
// definitions, and the per-child stagger offsets in document order.
// Returns false when the effect is off or disabled.
func (b *Block) Playback(trigger effect.Trigger) ([]ChildPlayback, bool) {
	def := b.Effects.Get(trigger)
	if def == nil || !def.Enabled {
		return nil, false
	}
	ids := b.ChildIDs()
	delays := effect.ComputeDelays(ids, def.Stagger)
	out := make([]ChildPlayback, len(ids))
	for i, id := range ids {
		out[i] = ChildPlayback{
			ID:         id,
			Definition: effect.EffectiveFor(def, id),
			Delay:      delays[id],
		}
	}
	return out, true
}
