// Package version reports the library version for observability
// resources and diagnostics.
//
// The version comes from module build info when the library is consumed
// as a dependency, or can be stamped at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/awpr/collate/version.Version=1.2.0"
package version
