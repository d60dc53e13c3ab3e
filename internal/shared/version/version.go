// Package version exposes build metadata injected through -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/niggl1/appsindico/internal/shared/version.Current=v1.2.0"
var (
	Current   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String formats the build metadata for logs and the version command.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Current, Commit, BuildDate)
}
