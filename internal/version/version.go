// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rkm/rkm-eod/internal/version.Version=1.0.0 \
//	                   -X github.com/rkm/rkm-eod/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rkm/rkm-eod/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/rkmeod
package version

// Program is the binary name reported to PostgreSQL and in -version output.
const Program = "rkmeod"

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Program + " " + Version + " (" + Commit + ") built " + BuildTime
}

// ApplicationName is sent as the application_name connection parameter so
// runs are identifiable in pg_stat_activity.
func ApplicationName() string {
	return Program + "/" + Version
}
