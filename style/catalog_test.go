package style

import "testing"

func TestBuiltinCatalog(t *testing.T) {
	cat := ActiveCatalog()

	spec, ok := cat.Lookup("opacity")
	if !ok {
		t.Fatal("builtin catalog should know opacity")
	}
	if !spec.Default.Equal(Percent(100)) {
		t.Errorf("opacity default = %v, want 100%%", spec.Default.Raw)
	}

	if cat.Knows("definitelyNotAProperty") {
		t.Error("builtin catalog should not know made-up properties")
	}
}

func TestSetCatalogFallback(t *testing.T) {
	custom := NewCatalog([]PropertySpec{
		{Name: "glow", Kind: KindLength, Default: Length(0, "px")},
	})
	SetCatalog(custom)
	defer SetCatalog(nil)

	if !ActiveCatalog().Knows("glow") {
		t.Error("registered catalog should be active")
	}
	if ActiveCatalog().Knows("opacity") {
		t.Error("registering a catalog replaces lookups entirely")
	}

	SetCatalog(nil)
	if !ActiveCatalog().Knows("opacity") {
		t.Error("nil registration should revert to the builtin catalog")
	}
}

func TestCatalogExtend(t *testing.T) {
	base := NewCatalog([]PropertySpec{
		{Name: "opacity", Kind: KindPercent, Default: Percent(100)},
	})
	ext := base.Extend([]PropertySpec{
		{Name: "glow", Kind: KindLength, Default: Length(0, "px")},
		{Name: "opacity", Kind: KindPercent, Default: Percent(0)},
	})

	if !ext.Knows("glow") || !ext.Knows("opacity") {
		t.Fatal("extended catalog should know both properties")
	}
	spec, _ := ext.Lookup("opacity")
	if !spec.Default.Equal(Percent(0)) {
		t.Error("extension should replace overlapping specs")
	}
	// The source catalog is untouched.
	spec, _ = base.Lookup("opacity")
	if !spec.Default.Equal(Percent(100)) {
		t.Error("Extend must not mutate the receiver")
	}
}

func TestLoadCatalog(t *testing.T) {
	data := []byte(`
[property.opacity]
kind = "percent"
default = "100%"

[property.accentColor]
kind = "color"
default = "#6366f1"
`)
	cat, err := LoadCatalog(data)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	spec, ok := cat.Lookup("opacity")
	if !ok || !spec.Default.Equal(Percent(100)) {
		t.Errorf("opacity spec = %+v, ok=%v", spec, ok)
	}
	spec, ok = cat.Lookup("accentColor")
	if !ok || spec.Kind != KindColor || !spec.Default.Equal(Color("#6366f1")) {
		t.Errorf("accentColor spec = %+v, ok=%v", spec, ok)
	}
}

func TestLoadCatalogRejectsUnknownKind(t *testing.T) {
	data := []byte(`
[property.opacity]
kind = "sparkle"
default = "100%"
`)
	if _, err := LoadCatalog(data); err == nil {
		t.Error("expected error for unknown value kind")
	}
}
