// Package misc keeps build time information and small helpers which do not
// belong anywhere else.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

var (
	appName string
	version string
	gitHash string
)

func init() {
	appName = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	if len(appName) == 0 {
		appName = "scribe"
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		version = bi.Main.Version
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				gitHash = s.Value
			}
		}
	}
	if len(version) == 0 {
		version = "(devel)"
	}
	if len(gitHash) == 0 {
		gitHash = "unknown"
	}
}

// GetAppName returns name of the running executable without extension.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded in the build info.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision recorded in the build info.
func GetGitHash() string {
	return gitHash
}
