package commands

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agiangrant/sectioned/effect"
	"github.com/agiangrant/sectioned/style"
)

// Generate implements the 'sectioned generate' command. It reads a
// catalog/preset TOML document and emits a Go file whose Register()
// installs the tables via style.SetCatalog and effect.SetPresets.
func Generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("config", "sectioned.toml", "Path to the catalog/preset TOML file")
	output := fs.String("out", "sectioned_gen.go", "Output Go file")
	pkg := fs.String("pkg", "main", "Package name for the generated file")
	verbose := fs.Bool("verbose", false, "Show verbose output")
	fs.Parse(args)

	logger := loggerFor(*verbose, os.Stderr)

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *input, err)
	}

	catalog, err := style.LoadCatalog(data)
	if err != nil {
		return err
	}
	presets, err := effect.LoadPresets(data)
	if err != nil {
		return err
	}
	logger.Debug("parsed config", "properties", len(catalog.Names()), "presets", len(presets))

	code := generateCode(*pkg, catalog, presets)
	if err := os.WriteFile(*output, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *output, err)
	}

	logger.Info("generated", "file", *output)
	return nil
}

// generateCode renders the Register() file for a catalog and preset table.
// Value and keyframe literals go through style.ParseValue at Register time
// so the generator and the runtime share one parsing path.
func generateCode(pkg string, catalog *style.Catalog, presets []effect.Preset) string {
	var b strings.Builder
	b.WriteString("// Code generated by sectioned generate; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/agiangrant/sectioned/effect\"\n")
	b.WriteString("\t\"github.com/agiangrant/sectioned/style\"\n")
	b.WriteString(")\n\n")

	b.WriteString("// Register installs the generated property catalog and preset table.\n")
	b.WriteString("// Call once at startup, before any blocks are edited.\n")
	b.WriteString("func Register() {\n")

	names := catalog.Names()
	if len(names) > 0 {
		b.WriteString("\tstyle.SetCatalog(style.NewCatalog([]style.PropertySpec{\n")
		for _, name := range names {
			spec, _ := catalog.Lookup(name)
			fmt.Fprintf(&b, "\t\t{Name: %q, Kind: style.%s, Default: style.ParseValue(%q)},\n",
				name, kindConst(spec.Kind), spec.Default.Raw)
		}
		b.WriteString("\t}))\n")
	}

	if len(presets) > 0 {
		b.WriteString("\teffect.SetPresets([]effect.Preset{\n")
		for _, p := range presets {
			fmt.Fprintf(&b, "\t\t{ID: %q, Duration: %v, Easing: %q, TransformOrigin: %q, Keyframes: pair(\n",
				p.ID, p.Duration, p.Easing, p.TransformOrigin)
			b.WriteString("\t\t\tmap[string]string{")
			writeBagLiteral(&b, p.Keyframes.From)
			b.WriteString("},\n\t\t\tmap[string]string{")
			writeBagLiteral(&b, p.Keyframes.To)
			b.WriteString("})},\n")
		}
		b.WriteString("\t})\n")
	}
	b.WriteString("}\n")

	if len(presets) > 0 {
		b.WriteString("\nfunc pair(from, to map[string]string) effect.KeyframePair {\n")
		b.WriteString("\tkp := effect.NewKeyframePair()\n")
		b.WriteString("\tfor k, v := range from {\n")
		b.WriteString("\t\tkp.From.Set(k, style.ParseValue(v))\n")
		b.WriteString("\t}\n")
		b.WriteString("\tfor k, v := range to {\n")
		b.WriteString("\t\tkp.To.Set(k, style.ParseValue(v))\n")
		b.WriteString("\t}\n")
		b.WriteString("\treturn kp\n")
		b.WriteString("}\n")
	}

	return b.String()
}

func writeBagLiteral(b *strings.Builder, bag style.PropertyBag) {
	keys := bag.Keys()
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := bag.Get(k)
		fmt.Fprintf(b, "%q: %q", k, v.Raw)
	}
}

func kindConst(k style.ValueKind) string {
	switch k {
	case style.KindNumber:
		return "KindNumber"
	case style.KindLength:
		return "KindLength"
	case style.KindPercent:
		return "KindPercent"
	case style.KindColor:
		return "KindColor"
	case style.KindRecord:
		return "KindRecord"
	default:
		return "KindKeyword"
	}
}
