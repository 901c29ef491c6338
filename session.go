package sectioned

import "github.com/agiangrant/sectioned/style"

// EditSession routes raw (key, value) edits from the inspector into the
// correct override layer of one block, based on the currently selected
// breakpoint and interaction-state tabs. Edits made while a non-resting
// state tab is active land in that state's bag; otherwise they land in
// the selected breakpoint's bag. The editor serializes concurrent edits
// before calling in; the session itself does no locking.
type EditSession struct {
	block      *Block
	breakpoint style.Breakpoint
	state      style.State
}

// NewEditSession opens a session on a block with the desktop breakpoint
// and resting state selected.
func NewEditSession(b *Block) *EditSession {
	return &EditSession{block: b, breakpoint: style.Desktop, state: style.StateNone}
}

// Block returns the block being edited.
func (s *EditSession) Block() *Block {
	return s.block
}

// SelectBreakpoint switches the active breakpoint tab.
func (s *EditSession) SelectBreakpoint(bp style.Breakpoint) {
	s.breakpoint = bp
}

// SelectState switches the active interaction-state tab.
func (s *EditSession) SelectState(st style.State) {
	s.state = st
}

// Breakpoint returns the active breakpoint tab.
func (s *EditSession) Breakpoint() style.Breakpoint {
	return s.breakpoint
}

// State returns the active interaction-state tab.
func (s *EditSession) State() style.State {
	return s.state
}

// SetProperty writes an override for the active selection. With a state
// tab active the write goes to the state bag (auto-created on first
// write); otherwise to the active breakpoint's bag. Unknown keys no-op.
func (s *EditSession) SetProperty(key string, v style.Value) {
	if s.state != style.StateNone {
		s.block.States.SetProperty(s.state, key, v)
		return
	}
	s.block.Styles.SetProperty(s.breakpoint, key, v)
}

// RemoveProperty deletes an override from the active selection's bag.
func (s *EditSession) RemoveProperty(key string) {
	if s.state != style.StateNone {
		s.block.States.RemoveProperty(s.state, key)
		return
	}
	s.block.Styles.RemoveProperty(s.breakpoint, key)
}

// Effective returns the resolved bag for the active selection, the bag
// the preview paints while this tab combination is selected.
func (s *EditSession) Effective() style.PropertyBag {
	return s.block.ResolvedStyle(s.breakpoint, s.state)
}
