package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/tagoverride-go/internal/infra/buildinfo"
)

func TestVersionCommand(t *testing.T) {
	res := runApp(t, nil, "version")
	if res.err != nil {
		t.Fatalf("version error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, buildinfo.Version+" (commit: ") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	res := runApp(t, nil, "-o", "json", "version")
	if res.err != nil {
		t.Fatalf("version error = %v", res.err)
	}

	var info buildinfo.Info
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if info.Version != buildinfo.Version {
		t.Errorf("version = %q, want %q", info.Version, buildinfo.Version)
	}
	if info.GoVersion == "" {
		t.Error("go_version should be set")
	}
}

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "tagoverride" {
		t.Errorf("Name = %q", app.Name)
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"generate", "canonical", "config", "version"} {
		if !names[want] {
			t.Errorf("missing command %q", want)
		}
	}
}

func TestGlobalFlags_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		flags GlobalFlags
		want  map[string]any
	}{
		{"none", GlobalFlags{}, map[string]any{}},
		{"verbose raises level", GlobalFlags{Verbose: true}, map[string]any{"log.level": "info"}},
		{"explicit level wins", GlobalFlags{Verbose: true, LogLevel: "debug"}, map[string]any{"log.level": "debug"}},
		{"output and format", GlobalFlags{Output: "yaml", LogFormat: "json"}, map[string]any{"output": "yaml", "log.format": "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.flags.overrides()
			if len(got) != len(tt.want) {
				t.Fatalf("overrides() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("overrides()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}
