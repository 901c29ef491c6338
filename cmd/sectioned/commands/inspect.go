package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/agiangrant/sectioned"
	"github.com/agiangrant/sectioned/effect"
	"github.com/agiangrant/sectioned/style"
)

// Inspect implements the 'sectioned inspect' command: load a block
// document, resolve it for a breakpoint/state selection, and print the
// effective property bag plus per-trigger playback with stagger delays.
func Inspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	docPath := fs.String("doc", "", "Path to the block document (JSON)")
	bpName := fs.String("breakpoint", "desktop", "Breakpoint to resolve: desktop, tablet, mobile")
	stateName := fs.String("state", "none", "Interaction state: none, hover, pressed, focused")
	triggerName := fs.String("trigger", "", "Also print playback for a trigger: hover, scroll, appear, loop")
	fs.Parse(args)

	if *docPath == "" {
		return fmt.Errorf("missing required -doc flag")
	}

	bp, err := style.ParseBreakpoint(*bpName)
	if err != nil {
		return err
	}
	state, err := style.ParseState(*stateName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*docPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	var block sectioned.Block
	if err := json.Unmarshal(data, &block); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	printResolved(&block, bp, state)

	if *triggerName != "" {
		trigger, err := effect.ParseTrigger(*triggerName)
		if err != nil {
			return err
		}
		printPlayback(&block, trigger)
	}
	return nil
}

func printResolved(block *sectioned.Block, bp style.Breakpoint, state style.State) {
	fmt.Println(styleTitle.Render(fmt.Sprintf("%s %s @ %s/%s", block.Kind, block.ID, bp, state)))

	bag := block.ResolvedStyle(bp, state)
	if bag.Len() == 0 {
		fmt.Println(styleDim.Render("  (no overrides)"))
		return
	}
	for _, key := range bag.Keys() {
		v, _ := bag.Get(key)
		raw := v.Raw
		if v.Kind == style.KindRecord {
			raw = recordSummary(v)
		}
		fmt.Printf("  %s %s\n", styleKey.Render(key+":"), styleValue.Render(raw))
	}

	for _, s := range []style.State{style.StateHover, style.StatePressed, style.StateFocused} {
		if block.States != nil && block.States.HasOverridesForState(s) {
			fmt.Println(styleDim.Render(fmt.Sprintf("  has %s overrides", s)))
		}
	}
}

func printPlayback(block *sectioned.Block, trigger effect.Trigger) {
	fmt.Println(styleTitle.Render(fmt.Sprintf("playback: %s", trigger)))

	def, on := block.Effect(trigger)
	if !on {
		fmt.Println(styleDim.Render("  (effect off)"))
		return
	}
	status := styleEnabled.Render("enabled")
	if !def.Enabled {
		status = styleDim.Render("disabled")
	}
	preset := string(def.Preset)
	if def.Preset == effect.PresetCustom {
		preset = styleCustom.Render("custom")
	}
	fmt.Printf("  %s  preset=%s  duration=%vms  easing=%s\n", status, preset, def.Duration, def.Easing)

	plays, ok := block.Playback(trigger)
	if !ok {
		return
	}
	for _, p := range plays {
		marker := styleDim.Render("inherits")
		if p.Definition != def {
			marker = styleCustom.Render("overridden")
		}
		fmt.Printf("  %s %s delay=%vms duration=%vms (%s)\n",
			styleKey.Render("child"), p.ID, p.Delay, p.Definition.Duration, marker)
	}
}

func recordSummary(v style.Value) string {
	out := "{"
	first := true
	for _, k := range sortedRecordKeys(v.Record) {
		if !first {
			out += ", "
		}
		out += k + ": " + v.Record[k]
		first = false
	}
	return out + "}"
}

func sortedRecordKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
