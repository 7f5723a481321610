// Package command provides CLI command definitions for tagoverride.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tagoverride-go/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Print the default config file path",
				Action: configPath,
			},
			{
				Name:  "init",
				Usage: "Write a config file with default values",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination (default: ~/.tagoverride/cli.yaml)",
					},
					&cli.StringFlag{
						Name:    "secret-file",
						Aliases: []string{"s"},
						Usage:   "Secret file to record in the config",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

// configView renders a configuration through the output formatters.
type configView struct {
	config.CLIConfig `yaml:",inline"`
}

func (v configView) Rows() [][]string {
	baseURL := v.BaseURL
	if baseURL == "" {
		baseURL = "-"
	}
	secretFile := v.SecretFile
	if secretFile == "" {
		secretFile = "-"
	}
	return [][]string{
		{"secret_file", secretFile},
		{"expiration_days", fmt.Sprintf("%d", v.ExpirationDays)},
		{"default_to_max_expiry", fmt.Sprintf("%t", v.DefaultToMaxExpiry)},
		{"output", v.Output},
		{"base_url", baseURL},
		{"log.level", v.Log.Level},
		{"log.format", v.Log.Format},
	}
}

func configShow(c *cli.Context) error {
	return render(c, configView{*GetConfig(c)})
}

func configPath(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, config.DefaultConfigPath())
	return err
}

func configInit(c *cli.Context) error {
	path := c.String("path")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg := config.Default()
	cfg.SecretFile = c.String("secret-file")
	if err := config.Save(cfg, path, c.Bool("force")); err != nil {
		return err
	}

	GetLogger(c).Info("config written", "path", path)
	_, err := fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
	return err
}
