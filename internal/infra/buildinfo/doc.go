// Package buildinfo provides build information for tagoverride.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/tagoverride-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When they are not, Commit and BuildTime fall back to the VCS stamp the
// Go toolchain embeds in the binary.
package buildinfo
