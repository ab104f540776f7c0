// Package version carries the build version, overridable at link time.
package version

// Version is set via -ldflags at release builds.
var Version = "dev"
