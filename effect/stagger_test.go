package effect

import "testing"

func TestComputeDelays(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		cfg  *StaggerConfig
		want map[string]float64
	}{
		{
			name: "from first",
			ids:  []string{"a", "b", "c"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerFirst},
			want: map[string]float64{"a": 0, "b": 100, "c": 200},
		},
		{
			name: "from last",
			ids:  []string{"a", "b", "c"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerLast},
			want: map[string]float64{"a": 200, "b": 100, "c": 0},
		},
		{
			name: "from center odd length",
			ids:  []string{"a", "b", "c", "d", "e"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerCenter},
			want: map[string]float64{"a": 200, "b": 100, "c": 0, "d": 100, "e": 200},
		},
		{
			name: "from center even length ties toward earlier index",
			ids:  []string{"a", "b", "c", "d"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerCenter},
			want: map[string]float64{"a": 100, "b": 0, "c": 100, "d": 200},
		},
		{
			name: "from edges odd length",
			ids:  []string{"a", "b", "c", "d", "e"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerEdges},
			want: map[string]float64{"a": 0, "b": 100, "c": 200, "d": 100, "e": 0},
		},
		{
			name: "from edges even length",
			ids:  []string{"a", "b", "c", "d"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerEdges},
			want: map[string]float64{"a": 0, "b": 100, "c": 100, "d": 0},
		},
		{
			name: "disabled config returns zeros",
			ids:  []string{"a", "b", "c"},
			cfg:  &StaggerConfig{Enabled: false, Amount: 100, From: StaggerFirst},
			want: map[string]float64{"a": 0, "b": 0, "c": 0},
		},
		{
			name: "nil config returns zeros",
			ids:  []string{"a", "b"},
			cfg:  nil,
			want: map[string]float64{"a": 0, "b": 0},
		},
		{
			name: "single child",
			ids:  []string{"only"},
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerCenter},
			want: map[string]float64{"only": 0},
		},
		{
			name: "empty list",
			ids:  nil,
			cfg:  &StaggerConfig{Enabled: true, Amount: 100, From: StaggerFirst},
			want: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDelays(tt.ids, tt.cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d delays, want %d", len(got), len(tt.want))
			}
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("delay[%s] = %v, want %v", id, got[id], want)
				}
			}
		})
	}
}

func TestComputeDelaysDeterministic(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	cfg := &StaggerConfig{Enabled: true, Amount: 75, From: StaggerEdges}

	first := ComputeDelays(ids, cfg)
	for i := 0; i < 10; i++ {
		again := ComputeDelays(ids, cfg)
		for id, want := range first {
			if again[id] != want {
				t.Fatalf("run %d: delay[%s] = %v, want %v", i, id, again[id], want)
			}
		}
	}
}

func TestParseStaggerFrom(t *testing.T) {
	for _, f := range []StaggerFrom{StaggerFirst, StaggerLast, StaggerCenter, StaggerEdges} {
		got, err := ParseStaggerFrom(f.String())
		if err != nil || got != f {
			t.Errorf("ParseStaggerFrom(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseStaggerFrom("random"); err == nil {
		t.Error("expected error for unknown stagger origin")
	}
}
