// Package buildinfo holds version metadata stamped into the binary at
// build time via -ldflags "-X .../buildinfo.Version=... " and friends.
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
