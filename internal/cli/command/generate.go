// Package command provides CLI command definitions for tagoverride.
package command

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tagoverride-go/internal/core/domain"
	"github.com/yndnr/tagoverride-go/internal/core/service"
	"github.com/yndnr/tagoverride-go/internal/telemetry/logger"
)

const generateDescription = `Prints the tag override token authorizing APP to run with TAG.

The secret file may be given as the first argument (as shown), with
--secret-file, or with secret_file in the config file; in the latter two
cases the arguments are APP TAG [EXPIRY]. With secret_file configured, a
leading SECRET_FILE is only taken when all four arguments are given.
A secret file of "-" reads stdin.

EXPIRY is a Unix time: seconds since Jan 1, 1970 UTC. Without it the token
never expires, unless default_to_max_expiry is set in the config. --ttl
gives a relative expiry instead, capped at expiration_days.`

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Aliases:     []string{"gen"},
		Usage:       "Generate a tag override token",
		ArgsUsage:   "SECRET_FILE APP TAG [EXPIRY]",
		Description: generateDescription,
		Flags: []cli.Flag{
			secretFileFlag(),
			&cli.DurationFlag{
				Name:    "ttl",
				Aliases: []string{"t"},
				Usage:   "Relative expiry (e.g. 72h), capped at expiration_days",
			},
			&cli.BoolFlag{
				Name:  "no-expiry",
				Usage: "Issue a token that never expires",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Override endpoint to build the link on (default: base_url from config)",
			},
		},
		Action: generateAction,
	}
}

func secretFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "secret-file",
		Aliases: []string{"s"},
		Usage:   "Shared secret file, '-' for stdin",
		EnvVars: []string{"TAGOVERRIDE_SECRET_FILE"},
	}
}

// overrideArgs are the positional inputs shared by generate and canonical.
type overrideArgs struct {
	SecretFile    string
	App           string
	Tag           string
	ExpirySeconds *uint64
}

// parseOverrideArgs resolves SECRET_FILE APP TAG [EXPIRY] against the
// --secret-file flag and the configured secret file.
func parseOverrideArgs(c *cli.Context) (*overrideArgs, error) {
	args := c.Args().Slice()
	out := &overrideArgs{}

	// A configured secret file makes SECRET_FILE optional, so three
	// arguments are APP TAG EXPIRY there and SECRET_FILE APP TAG otherwise.
	configured := GetConfig(c).SecretFile
	switch {
	case c.String("secret-file") != "":
		out.SecretFile = c.String("secret-file")
	case configured != "" && len(args) == 4:
		out.SecretFile, args = args[0], args[1:]
	case configured != "":
		out.SecretFile = configured
	case len(args) >= 3:
		out.SecretFile, args = args[0], args[1:]
	}

	switch len(args) {
	case 0:
		return nil, domain.ErrAppNameMissing.WithDetails("usage: " + usageLine(c))
	case 1:
		return nil, domain.ErrTagNameMissing.WithDetails("usage: " + usageLine(c))
	case 2, 3:
	default:
		return nil, domain.ErrTooManyArgs.WithDetails("usage: " + usageLine(c))
	}
	if out.SecretFile == "" {
		return nil, domain.ErrSecretMissing.WithDetails("pass SECRET_FILE, --secret-file or set secret_file in the config")
	}

	out.App, out.Tag = args[0], args[1]
	if len(args) == 3 {
		expiry, err := domain.ParseExpirySeconds(args[2])
		if err != nil {
			return nil, err
		}
		out.ExpirySeconds = expiry
	}
	return out, nil
}

func usageLine(c *cli.Context) string {
	return c.App.Name + " " + c.Command.Name + " " + c.Command.ArgsUsage
}

// issueRequest builds the service request from arguments and expiry flags.
func issueRequest(c *cli.Context, args *overrideArgs) (*service.IssueRequest, error) {
	req := &service.IssueRequest{
		App:           args.App,
		Tag:           args.Tag,
		ExpirySeconds: args.ExpirySeconds,
	}

	if c.IsSet("ttl") {
		ttl := c.Duration("ttl")
		req.TTL = &ttl
	}

	if c.Bool("no-expiry") {
		if req.ExpirySeconds != nil || req.TTL != nil {
			return nil, domain.ErrExpiryConflict.WithDetails("--no-expiry")
		}
		var never uint64
		req.ExpirySeconds = &never
	}

	return req, nil
}

func generateAction(c *cli.Context) error {
	args, err := parseOverrideArgs(c)
	if err != nil {
		return err
	}
	req, err := issueRequest(c, args)
	if err != nil {
		return err
	}

	secret, err := readSecret(args.SecretFile, c.App.Reader, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer wipe(secret)

	cfg := GetConfig(c)
	ctx := logger.WithLogger(c.Context, GetLogger(c))
	iss, err := service.NewOverrideService(cfg.ServiceConfig()).Issue(ctx, secret, req)
	if err != nil {
		return err
	}

	baseURL := cfg.BaseURL
	if c.IsSet("base-url") {
		baseURL = c.String("base-url")
	}
	result, err := newIssuanceResult(iss, baseURL)
	if err != nil {
		return err
	}
	return render(c, result)
}

// issuanceResult is the rendered form of an issuance.
type issuanceResult struct {
	domain.Issuance `yaml:",inline"`
	Expires         string `json:"expires,omitempty" yaml:"expires,omitempty"`
	OverrideQuery   string `json:"query" yaml:"query"`
	OverrideURL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

func newIssuanceResult(iss *domain.Issuance, baseURL string) (*issuanceResult, error) {
	r := &issuanceResult{
		Issuance:      *iss,
		OverrideQuery: iss.Query(),
	}
	if iss.HasExpiry() {
		r.Expires = iss.ExpiresTime().Format(time.RFC3339)
	}
	if baseURL != "" {
		u, err := iss.URL(baseURL)
		if err != nil {
			return nil, err
		}
		r.OverrideURL = u
	}
	return r, nil
}

// Text returns the bare token, as printed by the reference generator.
func (r *issuanceResult) Text() string {
	return r.Token
}

// Rows returns the key/value form shown with --verbose.
func (r *issuanceResult) Rows() [][]string {
	expires := "never"
	if r.Expires != "" {
		expires = r.Expires + " (" + strconv.FormatUint(r.ExpiresAt, 10) + ")"
	}
	rows := [][]string{
		{"ID", r.ID},
		{"APP", r.App},
		{"TAG", r.Tag},
		{"EXPIRES", expires},
		{"ISSUED", time.UnixMilli(r.IssuedAt).UTC().Format(time.RFC3339)},
		{"FINGERPRINT", r.Fingerprint},
		{"TOKEN", r.Token},
		{"QUERY", r.OverrideQuery},
	}
	if r.OverrideURL != "" {
		rows = append(rows, []string{"URL", r.OverrideURL})
	}
	return rows
}
