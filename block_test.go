package sectioned

import (
	"encoding/json"
	"testing"

	"github.com/agiangrant/sectioned/effect"
	"github.com/agiangrant/sectioned/style"
)

func TestBlockCreation(t *testing.T) {
	b := NewBlock(BlockSection)
	if b.ID == "" {
		t.Error("expected a generated id")
	}
	if b.Styles == nil || b.States == nil {
		t.Error("expected cascades to be initialized")
	}
	for _, trigger := range effect.Triggers {
		if _, on := b.Effect(trigger); on {
			t.Errorf("%s effect should be off on a fresh block", trigger)
		}
	}
}

func TestEffectLifecycle(t *testing.T) {
	b := NewBlock(BlockSection)

	// First enable materializes a default definition.
	def := b.EnableEffect(effect.TriggerAppear)
	if def == nil || !def.Enabled {
		t.Fatal("enable should materialize an enabled definition")
	}
	if def.Appear == nil || def.Appear.Trigger != "inView" {
		t.Error("appear definition should carry default appear params")
	}

	// Disable keeps the configuration.
	def.SetDuration(900)
	b.DisableEffect(effect.TriggerAppear)
	if got, on := b.Effect(effect.TriggerAppear); !on || got.Enabled {
		t.Fatal("disable should keep the definition with Enabled=false")
	}

	// Re-enable keeps the existing configuration.
	again := b.EnableEffect(effect.TriggerAppear)
	if again.Duration != 900 {
		t.Error("re-enable should keep the prior configuration")
	}

	// Reset deletes the definition entirely.
	b.ResetEffect(effect.TriggerAppear)
	if _, on := b.Effect(effect.TriggerAppear); on {
		t.Error("reset should revert the effect to absent")
	}
}

func TestResolvedStyle(t *testing.T) {
	b := NewBlock(BlockButton)
	b.Styles.SetProperty(style.Desktop, "color", style.Color("#fff"))
	b.Styles.SetProperty(style.Mobile, "color", style.Color("#000"))
	b.States.SetProperty(style.StateHover, "opacity", style.Percent(50))

	got := b.ResolvedStyle(style.Mobile, style.StateHover)
	if v, _ := got.Get("color"); !v.Equal(style.Color("#000")) {
		t.Errorf("color = %v, want mobile #000", v.Raw)
	}
	if v, _ := got.Get("opacity"); !v.Equal(style.Percent(50)) {
		t.Errorf("opacity = %v, want hover 50%%", v.Raw)
	}

	got = b.ResolvedStyle(style.Tablet, style.StateNone)
	if v, _ := got.Get("color"); !v.Equal(style.Color("#fff")) {
		t.Errorf("tablet color = %v, want base #fff", v.Raw)
	}
	if got.Has("opacity") {
		t.Error("resting state must not pick up hover overrides")
	}
}

func TestRemoveChildPrunesOverrides(t *testing.T) {
	parent := NewBlock(BlockSection)
	a := NewBlock(BlockText)
	bb := NewBlock(BlockImage)
	parent.AddChild(a).AddChild(bb)

	dur := 700.0
	for _, trigger := range []effect.Trigger{effect.TriggerHover, effect.TriggerAppear} {
		def := parent.EnableEffect(trigger)
		def.UpsertChildOverride(a.ID, effect.ChildOverride{Duration: &dur})
		def.UpsertChildOverride(bb.ID, effect.ChildOverride{Duration: &dur})
	}

	if !parent.RemoveChild(a.ID) {
		t.Fatal("RemoveChild should report success for a direct child")
	}
	for _, trigger := range []effect.Trigger{effect.TriggerHover, effect.TriggerAppear} {
		def, _ := parent.Effect(trigger)
		if _, ok := def.ChildOverrideFor(a.ID); ok {
			t.Errorf("%s: override for removed child survived", trigger)
		}
		if _, ok := def.ChildOverrideFor(bb.ID); !ok {
			t.Errorf("%s: override for remaining child was dropped", trigger)
		}
	}

	if parent.RemoveChild("not-a-child") {
		t.Error("removing an unknown id should report false")
	}
}

func TestInsertChildOrdering(t *testing.T) {
	parent := NewBlock(BlockSection)
	a := NewBlock(BlockText)
	b := NewBlock(BlockText)
	c := NewBlock(BlockText)
	parent.AddChild(a).AddChild(c)
	parent.InsertChild(1, b)

	ids := parent.ChildIDs()
	want := []string{a.ID, b.ID, c.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("child order = %v, want %v", ids, want)
		}
	}
}

func TestPlayback(t *testing.T) {
	parent := NewBlock(BlockSection)
	a := NewBlock(BlockText)
	b := NewBlock(BlockText)
	c := NewBlock(BlockText)
	parent.AddChild(a).AddChild(b).AddChild(c)

	def := parent.EnableEffect(effect.TriggerAppear)
	def.Stagger = &effect.StaggerConfig{Enabled: true, Amount: 100, From: effect.StaggerFirst}
	dur := 999.0
	def.UpsertChildOverride(b.ID, effect.ChildOverride{Duration: &dur})

	plays, ok := parent.Playback(effect.TriggerAppear)
	if !ok || len(plays) != 3 {
		t.Fatalf("playback = %v entries, ok=%v", len(plays), ok)
	}

	if plays[0].Delay != 0 || plays[1].Delay != 100 || plays[2].Delay != 200 {
		t.Errorf("stagger delays = %v/%v/%v, want 0/100/200",
			plays[0].Delay, plays[1].Delay, plays[2].Delay)
	}
	if plays[0].Definition != def {
		t.Error("non-overridden child should play the parent definition itself")
	}
	if plays[1].Definition == def || plays[1].Definition.Duration != 999 {
		t.Error("overridden child should play its effective definition")
	}

	parent.DisableEffect(effect.TriggerAppear)
	if _, ok := parent.Playback(effect.TriggerAppear); ok {
		t.Error("disabled effect should not produce playback")
	}
}

func TestEditSessionRouting(t *testing.T) {
	b := NewBlock(BlockButton)
	s := NewEditSession(b)

	// Desktop + resting: into the base bag.
	s.SetProperty("color", style.Color("#fff"))
	if v, _ := b.Styles.Base.Get("color"); !v.Equal(style.Color("#fff")) {
		t.Error("resting desktop edit should land in base")
	}

	// Tablet + resting: into the tablet bag only.
	s.SelectBreakpoint(style.Tablet)
	s.SetProperty("color", style.Color("#888"))
	if v, _ := b.Styles.Tablet.Get("color"); !v.Equal(style.Color("#888")) {
		t.Error("tablet edit should land in the tablet bag")
	}
	if v, _ := b.Styles.Base.Get("color"); !v.Equal(style.Color("#fff")) {
		t.Error("tablet edit must not touch base")
	}

	// Tablet + hover: into the hover bag, not the tablet bag.
	s.SelectState(style.StateHover)
	s.SetProperty("opacity", style.Percent(40))
	if !b.States.HasOverridesForState(style.StateHover) {
		t.Error("hover edit should create the hover bag")
	}
	if b.Styles.Tablet.Has("opacity") {
		t.Error("hover edit leaked into the tablet bag")
	}

	// Effective resolves the active tab combination.
	eff := s.Effective()
	if v, _ := eff.Get("color"); !v.Equal(style.Color("#888")) {
		t.Errorf("effective color = %v, want tablet #888", v.Raw)
	}
	if v, _ := eff.Get("opacity"); !v.Equal(style.Percent(40)) {
		t.Errorf("effective opacity = %v, want hover 40%%", v.Raw)
	}

	// Removal routes the same way.
	s.RemoveProperty("opacity")
	if b.States.HasOverridesForState(style.StateHover) {
		t.Error("remove should target the hover bag")
	}
}

func TestBlockSerializationShape(t *testing.T) {
	b := NewBlock(BlockSection)
	b.Styles.SetProperty(style.Mobile, "color", style.Color("#000"))
	b.EnableEffect(effect.TriggerHover)
	b.AddChild(NewBlock(BlockText))

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Block
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.ID != b.ID || len(back.Children) != 1 {
		t.Error("round-tripped block lost identity or children")
	}
	if v, _ := back.Styles.Mobile.Get("color"); !v.Equal(style.Color("#000")) {
		t.Error("round-tripped block lost the mobile override")
	}
	if back.Effects.Hover == nil || !back.Effects.Hover.Enabled {
		t.Error("round-tripped block lost the hover effect")
	}
	// Absent layers stay absent, not empty objects.
	if back.Styles.Tablet != nil {
		t.Error("absent tablet layer should round-trip as absent")
	}
}
