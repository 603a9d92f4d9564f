// Package version holds the application version string, overridable at
// build time via -ldflags "-X pagegrid/internal/version.AppVersion=...".
package version

var AppVersion = "0.3.0"
