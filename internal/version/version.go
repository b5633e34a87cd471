// Package version reports the toterm build version.
package version

import (
	"runtime/debug"
	"strings"
	"time"
)

const (
	defaultModule = "pkt.systems/toterm"
	unknown       = "v0.0.0-unknown"
)

// buildVersion is set via -ldflags "-X pkt.systems/toterm/internal/version.buildVersion=...".
var buildVersion = ""

// Current returns the best available version string without a dirty suffix.
func Current() string {
	return resolve(false)
}

// CurrentWithDirty returns the version string including +dirty for modified trees.
func CurrentWithDirty() string {
	return resolve(true)
}

// Module returns the main module path from build info when available.
func Module() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			return path
		}
	}
	return defaultModule
}

// Banner is the one-line identification printed by "toterm version".
func Banner() string {
	return Module() + " " + CurrentWithDirty()
}

func resolve(includeDirty bool) string {
	if v := strings.TrimSpace(buildVersion); v != "" {
		return trimDirty(v, includeDirty)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknown
	}
	if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
		return trimDirty(v, includeDirty)
	}
	if v := pseudoFromBuildInfo(info, includeDirty); v != "" {
		return v
	}
	return unknown
}

func trimDirty(v string, includeDirty bool) string {
	if includeDirty {
		return v
	}
	return strings.TrimSuffix(v, "+dirty")
}

// pseudoFromBuildInfo derives a Go pseudo-version from the embedded VCS stamp.
func pseudoFromBuildInfo(info *debug.BuildInfo, includeDirty bool) string {
	if info == nil {
		return ""
	}
	var revision, stamp string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			stamp = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" || stamp == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "v0.0.0-" + parsed.UTC().Format("20060102150405") + "-" + revision
	if modified && includeDirty {
		v += "+dirty"
	}
	return v
}
