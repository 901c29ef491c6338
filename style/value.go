package style

import (
	"strconv"
	"strings"
)

// ValueKind identifies how a property value should be interpreted.
type ValueKind int

const (
	KindKeyword ValueKind = iota // enumerated keyword: "hidden", "solid", "center"
	KindNumber                   // unitless number: 1.5, 400
	KindLength                   // number with unit: "16px", "1.25rem"
	KindPercent                  // numeric percentage: "50%"
	KindColor                    // color string: "#1e293b", "rgba(...)"
	KindRecord                   // structured sub-record: shadow, border, gradient
)

// String returns the kind name used in catalog TOML files.
func (k ValueKind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindNumber:
		return "number"
	case KindLength:
		return "length"
	case KindPercent:
		return "percent"
	case KindColor:
		return "color"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// ParseValueKind maps a catalog kind name back to its ValueKind.
func ParseValueKind(s string) (ValueKind, bool) {
	switch s {
	case "keyword":
		return KindKeyword, true
	case "number":
		return KindNumber, true
	case "length":
		return KindLength, true
	case "percent":
		return KindPercent, true
	case "color":
		return KindColor, true
	case "record":
		return KindRecord, true
	}
	return 0, false
}

// Value is one concrete property value. Raw always holds the original
// string form; Number/Unit/Keyword are filled when applicable so callers
// don't re-parse on every resolve.
type Value struct {
	Kind    ValueKind         `json:"kind"`
	Raw     string            `json:"raw"`
	Number  float64           `json:"number,omitempty"`
	Unit    string            `json:"unit,omitempty"`
	Keyword string            `json:"keyword,omitempty"`
	Record  map[string]string `json:"record,omitempty"`
}

// Keyword returns a keyword value ("hidden", "ease-out", ...).
func Keyword(kw string) Value {
	return Value{Kind: KindKeyword, Raw: kw, Keyword: kw}
}

// Number returns a unitless numeric value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Raw: formatNumber(n), Number: n}
}

// Length returns a number-with-unit value ("16px", "2rem").
func Length(n float64, unit string) Value {
	return Value{Kind: KindLength, Raw: formatNumber(n) + unit, Number: n, Unit: unit}
}

// Percent returns a numeric percentage ("50%").
func Percent(n float64) Value {
	return Value{Kind: KindPercent, Raw: formatNumber(n) + "%", Number: n, Unit: "%"}
}

// Color returns a color value. The string is kept verbatim ("#fff",
// "rgba(30,41,59,0.4)"); the engine never interprets channels.
func Color(c string) Value {
	return Value{Kind: KindColor, Raw: c}
}

// Record returns a structured value such as a shadow or gradient.
// The map is copied so later edits to the argument don't alias the value.
func Record(fields map[string]string) Value {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Value{Kind: KindRecord, Raw: "", Record: copied}
}

// ParseValue interprets a raw string as the most specific value kind:
// percentage, length, number, color, then keyword. Record values cannot
// be expressed as a single string and never come through here.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Keyword("")
	}
	if strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "rgb") || strings.HasPrefix(raw, "hsl") {
		return Color(raw)
	}
	if strings.HasSuffix(raw, "%") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64); err == nil {
			return Percent(n)
		}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n)
	}
	// Split a trailing unit off a leading number: "16px" -> 16, "px"
	idx := len(raw)
	for idx > 0 {
		c := raw[idx-1]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			break
		}
		idx--
	}
	if idx > 0 && idx < len(raw) {
		if n, err := strconv.ParseFloat(raw[:idx], 64); err == nil {
			return Length(n, raw[idx:])
		}
	}
	return Keyword(raw)
}

// Equal reports structural equality between two values.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind || v.Raw != other.Raw ||
		v.Number != other.Number || v.Unit != other.Unit || v.Keyword != other.Keyword {
		return false
	}
	if len(v.Record) != len(other.Record) {
		return false
	}
	for k, val := range v.Record {
		if other.Record[k] != val {
			return false
		}
	}
	return true
}

// IsZero reports whether the value is the zero Value (no content at all).
func (v Value) IsZero() bool {
	return v.Raw == "" && v.Number == 0 && v.Unit == "" && v.Keyword == "" && len(v.Record) == 0
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
