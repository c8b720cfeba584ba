package app

import "fmt"

// Set with -ldflags "-X github.com/heartmarshall/moe-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the version reported at startup and on /health. Commit and
// build time are appended only when they were stamped into the binary.
func BuildVersion() string {
	v := Version
	if Commit != "" {
		v = fmt.Sprintf("%s+%s", v, Commit)
	}
	if BuildTime != "" {
		v = fmt.Sprintf("%s (built %s)", v, BuildTime)
	}
	return v
}
