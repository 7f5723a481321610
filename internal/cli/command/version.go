// Package command provides CLI command definitions for tagoverride.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tagoverride-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			return render(c, versionView{buildinfo.Get()})
		},
	}
}

type versionView struct {
	buildinfo.Info `yaml:",inline"`
}

func (v versionView) Text() string {
	return v.Version + " (commit: " + v.Commit + ", built: " + v.BuildTime + ", " + v.GoVersion + ")"
}
