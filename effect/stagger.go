package effect

import "fmt"

// StaggerFrom selects which children start first.
type StaggerFrom int

const (
	StaggerFirst StaggerFrom = iota
	StaggerLast
	StaggerCenter
	StaggerEdges
)

// String returns the strategy name used in documents.
func (f StaggerFrom) String() string {
	switch f {
	case StaggerFirst:
		return "first"
	case StaggerLast:
		return "last"
	case StaggerCenter:
		return "center"
	case StaggerEdges:
		return "edges"
	}
	return "unknown"
}

// ParseStaggerFrom maps a strategy name back to its StaggerFrom.
func ParseStaggerFrom(s string) (StaggerFrom, error) {
	switch s {
	case "first":
		return StaggerFirst, nil
	case "last":
		return StaggerLast, nil
	case "center":
		return StaggerCenter, nil
	case "edges":
		return StaggerEdges, nil
	}
	return 0, fmt.Errorf("unknown stagger origin %q", s)
}

// StaggerConfig spreads sibling start delays. Amount is the per-step
// delay in milliseconds.
type StaggerConfig struct {
	Enabled bool        `json:"enabled"`
	Amount  float64     `json:"amount"`
	From    StaggerFrom `json:"from"`
}

// ComputeDelays returns the per-child delay offset for an ordered sibling
// list. A nil or disabled config yields all-zero offsets. The result is a
// pure function of its inputs: recomputing with the same ordering and
// config yields identical delays.
func ComputeDelays(childIDs []string, cfg *StaggerConfig) map[string]float64 {
	delays := make(map[string]float64, len(childIDs))
	if cfg == nil || !cfg.Enabled {
		for _, id := range childIDs {
			delays[id] = 0
		}
		return delays
	}
	n := len(childIDs)
	for i, id := range childIDs {
		var steps int
		switch cfg.From {
		case StaggerLast:
			steps = n - 1 - i
		case StaggerCenter:
			// Distance from the middle index; even-length lists tie
			// toward the earlier of the two middle indices.
			mid := (n - 1) / 2
			steps = i - mid
			if steps < 0 {
				steps = -steps
			}
		case StaggerEdges:
			// Distance from the nearer end, mirroring toward the center.
			steps = i
			if fromEnd := n - 1 - i; fromEnd < steps {
				steps = fromEnd
			}
		default: // StaggerFirst
			steps = i
		}
		delays[id] = float64(steps) * cfg.Amount
	}
	return delays
}
