package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports which build is serving. A version set at link time
// wins over the configured one.
func HandleVersion(service, configured string) http.HandlerFunc {
	info := VersionInfo{
		Service:   service,
		Version:   resolveVersion(configured),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func resolveVersion(configured string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configured != "" {
		return configured
	}
	return "dev"
}
