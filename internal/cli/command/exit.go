// Package command provides CLI command definitions for tagoverride.
package command

import (
	"strings"

	"github.com/yndnr/tagoverride-go/internal/core/domain"
)

// Exit statuses, one per error code area.
const (
	ExitOK      = 0
	ExitFailure = 1 // internal or unclassified errors
	ExitUsage   = 2 // TO-REQ: bad arguments
	ExitSecret  = 3 // TO-SEC: secret could not be read
	ExitConfig  = 4 // TO-CFG: configuration invalid or unreadable
)

// ExitCode maps an error returned by the app to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if !domain.IsDomainError(err, "") {
		return ExitFailure
	}

	code := domain.GetErrorCode(err)
	switch {
	case strings.HasPrefix(code, "TO-REQ-"):
		return ExitUsage
	case strings.HasPrefix(code, "TO-SEC-"):
		return ExitSecret
	case strings.HasPrefix(code, "TO-CFG-"):
		return ExitConfig
	default:
		return ExitFailure
	}
}
