package style

// builtinCatalog is the framework default property set, used when no
// consumer catalog has been registered via SetCatalog. Defaults are the
// values a property takes when first added to a keyframe pair, chosen to
// be visually neutral (no movement, full opacity).
var builtinCatalog = NewCatalog([]PropertySpec{
	// Effects
	{Name: "opacity", Kind: KindPercent, Default: Percent(100)},
	{Name: "blur", Kind: KindLength, Default: Length(0, "px")},
	{Name: "boxShadow", Kind: KindRecord, Default: Record(map[string]string{
		"offsetX": "0px", "offsetY": "0px", "blur": "0px", "spread": "0px", "color": "rgba(0,0,0,0)",
	})},

	// Transforms
	{Name: "translateX", Kind: KindLength, Default: Length(0, "px")},
	{Name: "translateY", Kind: KindLength, Default: Length(0, "px")},
	{Name: "scale", Kind: KindNumber, Default: Number(1)},
	{Name: "rotate", Kind: KindLength, Default: Length(0, "deg")},
	{Name: "skewX", Kind: KindLength, Default: Length(0, "deg")},
	{Name: "skewY", Kind: KindLength, Default: Length(0, "deg")},

	// Colors
	{Name: "color", Kind: KindColor, Default: Color("#000000")},
	{Name: "backgroundColor", Kind: KindColor, Default: Color("transparent")},
	{Name: "borderColor", Kind: KindColor, Default: Color("transparent")},

	// Typography
	{Name: "fontSize", Kind: KindLength, Default: Length(16, "px")},
	{Name: "fontWeight", Kind: KindNumber, Default: Number(400)},
	{Name: "lineHeight", Kind: KindNumber, Default: Number(1.5)},
	{Name: "letterSpacing", Kind: KindLength, Default: Length(0, "px")},
	{Name: "textAlign", Kind: KindKeyword, Default: Keyword("left")},

	// Spacing
	{Name: "paddingTop", Kind: KindLength, Default: Length(0, "px")},
	{Name: "paddingRight", Kind: KindLength, Default: Length(0, "px")},
	{Name: "paddingBottom", Kind: KindLength, Default: Length(0, "px")},
	{Name: "paddingLeft", Kind: KindLength, Default: Length(0, "px")},
	{Name: "marginTop", Kind: KindLength, Default: Length(0, "px")},
	{Name: "marginRight", Kind: KindLength, Default: Length(0, "px")},
	{Name: "marginBottom", Kind: KindLength, Default: Length(0, "px")},
	{Name: "marginLeft", Kind: KindLength, Default: Length(0, "px")},
	{Name: "gap", Kind: KindLength, Default: Length(0, "px")},

	// Sizing
	{Name: "width", Kind: KindLength, Default: Length(0, "px")},
	{Name: "height", Kind: KindLength, Default: Length(0, "px")},
	{Name: "maxWidth", Kind: KindLength, Default: Length(0, "px")},
	{Name: "minHeight", Kind: KindLength, Default: Length(0, "px")},

	// Borders
	{Name: "borderWidth", Kind: KindLength, Default: Length(0, "px")},
	{Name: "borderRadius", Kind: KindLength, Default: Length(0, "px")},
	{Name: "borderStyle", Kind: KindKeyword, Default: Keyword("solid")},

	// Background
	{Name: "backgroundGradient", Kind: KindRecord, Default: Record(map[string]string{
		"from": "transparent", "to": "transparent", "angle": "180deg",
	})},
})
