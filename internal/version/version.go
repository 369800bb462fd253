// Package version holds the build version, overridable at link time
// with -ldflags "-X github.com/kaloritakip/kta/internal/version.Version=...".
package version

var Version = "dev"
