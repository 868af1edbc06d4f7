package cmd

import "testing"

func TestGuide(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"main guide", []string{"guide"}, "pathoracle Guide"},
		{"dialects", []string{"guide", "dialects"}, "node"},
		{"check", []string{"guide", "check"}, "cwd"},
		{"serve", []string{"guide", "serve"}, "pathoracle_eval"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			out := env.run(tc.args...)
			env.contains(out, tc.contains)
		})
	}

	t.Run("unknown topic", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("guide", "nonexistent")
		if err == nil {
			t.Error("Guide(nonexistent) = nil, want error")
		}
		env.contains(out, "Available:")
	})
}
