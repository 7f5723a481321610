// Package command provides CLI command definitions for tagoverride.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tagoverride-go/internal/cli/config"
	"github.com/yndnr/tagoverride-go/internal/cli/output"
	"github.com/yndnr/tagoverride-go/internal/infra/buildinfo"
	"github.com/yndnr/tagoverride-go/internal/telemetry/logger"
)

const (
	metaConfig = "config"
	metaLogger = "logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "tagoverride",
		Usage:                "Generate tag override tokens",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			GenerateCommand(),
			CanonicalCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default: ~/.tagoverride/cli.yaml if present)",
			EnvVars: []string{"TAGOVERRIDE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Show details of the result and log at info level",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config    string
	Output    string
	LogLevel  string
	LogFormat string
	Verbose   bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:    c.String("config"),
		Output:    c.String("output"),
		LogLevel:  c.String("log-level"),
		LogFormat: c.String("log-format"),
		Verbose:   c.Bool("verbose"),
	}
}

// overrides turns explicitly set flags into config keys.
func (f *GlobalFlags) overrides() map[string]any {
	m := map[string]any{}
	if f.Output != "" {
		m["output"] = f.Output
	}
	if f.LogLevel != "" {
		m["log.level"] = f.LogLevel
	} else if f.Verbose {
		m["log.level"] = "info"
	}
	if f.LogFormat != "" {
		m["log.format"] = f.LogFormat
	}
	return m
}

// setup loads configuration and installs the logger.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	cfg, err := config.Load(flags.Config, flags.overrides())
	if err != nil {
		return err
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = c.App.ErrWriter
	log, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logger.SetDefault(log)

	c.App.Metadata[metaConfig] = cfg
	c.App.Metadata[metaLogger] = log
	return nil
}

// GetConfig retrieves the loaded configuration from context.
// Falls back to defaults when setup did not run.
func GetConfig(c *cli.Context) *config.CLIConfig {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.CLIConfig); ok {
		return cfg
	}
	return config.Default()
}

// GetLogger retrieves the configured logger from context.
func GetLogger(c *cli.Context) logger.Logger {
	if l, ok := c.App.Metadata[metaLogger].(logger.Logger); ok {
		return l
	}
	return logger.Default()
}

// render writes a result to the app's writer in the configured format.
func render(c *cli.Context, data any) error {
	cfg := GetConfig(c)
	f := output.NewFormatter(output.Format(cfg.Output), c.Bool("verbose"))
	return f.Format(c.App.Writer, data)
}
