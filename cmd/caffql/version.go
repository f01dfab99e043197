package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version when caffql was installed with
// `go install ...@version`. Other builds report "devel-<VERSION>", followed
// by "+<short revision>" when VCS information was stamped.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return strings.TrimSpace(embeddedVersion)
	}
	return versionFrom(info, strings.TrimSpace(embeddedVersion))
}

func versionFrom(info *debug.BuildInfo, base string) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	version := "devel-" + base
	if rev := revision(info); rev != "" {
		version += "+" + rev
	}
	return version
}

// revision returns the first seven characters of the stamped VCS revision.
func revision(info *debug.BuildInfo) string {
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
