package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func TestCurrentPrefersBuildVersion(t *testing.T) {
	old := buildVersion
	buildVersion = "v1.2.3+dirty"
	t.Cleanup(func() { buildVersion = old })

	if got := Current(); got != "v1.2.3" {
		t.Fatalf("expected clean build version, got %q", got)
	}
	if got := CurrentWithDirty(); got != "v1.2.3+dirty" {
		t.Fatalf("expected dirty build version, got %q", got)
	}
	if got := Banner(); !strings.HasSuffix(got, " v1.2.3+dirty") {
		t.Fatalf("unexpected banner %q", got)
	}
}

func TestPseudoFromBuildInfo(t *testing.T) {
	ts := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "1234567890abcdef"},
			{Key: "vcs.time", Value: ts.Format(time.RFC3339)},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	tests := []struct {
		name  string
		dirty bool
		want  string
	}{
		{name: "dirty", dirty: true, want: "v0.0.0-20250102030405-1234567890ab+dirty"},
		{name: "clean", dirty: false, want: "v0.0.0-20250102030405-1234567890ab"},
	}
	for _, tc := range tests {
		if got := pseudoFromBuildInfo(info, tc.dirty); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
	if pseudoFromBuildInfo(nil, true) != "" {
		t.Fatalf("expected empty version for nil build info")
	}
	if pseudoFromBuildInfo(&debug.BuildInfo{}, true) != "" {
		t.Fatalf("expected empty version without vcs settings")
	}
}
