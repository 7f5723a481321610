// Package command provides CLI command definitions for tagoverride.
package command

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tagoverride-go/internal/core/domain"
	"github.com/yndnr/tagoverride-go/pkg/token"
)

// CanonicalCommand returns the canonical command.
//
// It shows the bytes that are hashed, with the secret replaced by its
// length and fingerprint, to compare against a verifier's input.
func CanonicalCommand() *cli.Command {
	return &cli.Command{
		Name:      "canonical",
		Usage:     "Show the canonical form that is hashed (secret masked)",
		ArgsUsage: "SECRET_FILE APP TAG [EXPIRY]",
		Flags:     []cli.Flag{secretFileFlag()},
		Action:    canonicalAction,
	}
}

func canonicalAction(c *cli.Context) error {
	args, err := parseOverrideArgs(c)
	if err != nil {
		return err
	}
	req, err := domain.NewOverrideRequest(args.App, args.Tag, args.ExpirySeconds)
	if err != nil {
		return err
	}

	secret, err := readSecret(args.SecretFile, c.App.Reader, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer wipe(secret)

	if req.Ambiguous() {
		GetLogger(c).Warn("app or tag contains a NUL byte; canonical form is ambiguous")
	}
	return render(c, newCanonicalResult(req, secret))
}

// canonicalResult describes the canonical form without exposing the secret.
type canonicalResult struct {
	App         string `json:"app" yaml:"app"`
	Tag         string `json:"tag" yaml:"tag"`
	ExpiresAt   uint64 `json:"expires_at" yaml:"expires_at"`
	Fields      string `json:"fields_hex" yaml:"fields_hex"`
	SecretLen   int    `json:"secret_length" yaml:"secret_length"`
	Fingerprint string `json:"secret_fingerprint" yaml:"secret_fingerprint"`
	Token       string `json:"token" yaml:"token"`
}

func newCanonicalResult(req *domain.OverrideRequest, secret []byte) *canonicalResult {
	// Everything before the secret, trailing separator included.
	fields := token.Canonical(nil, req.App, req.Tag, req.ExpiresAt)
	return &canonicalResult{
		App:         req.App,
		Tag:         req.Tag,
		ExpiresAt:   req.ExpiresAt,
		Fields:      hex.EncodeToString(fields),
		SecretLen:   len(secret),
		Fingerprint: token.Fingerprint(secret),
		Token:       req.Sign(secret),
	}
}

// Text returns the hex fields followed by a secret placeholder.
func (r *canonicalResult) Text() string {
	return fmt.Sprintf("%s<secret:%d bytes>", r.Fields, r.SecretLen)
}

// Rows splits the canonical form into its fields.
func (r *canonicalResult) Rows() [][]string {
	sep := hex.EncodeToString([]byte{token.Separator})
	expiry := token.Canonical(nil, "", "", r.ExpiresAt)[2:10]
	return [][]string{
		{"APP", hex.EncodeToString([]byte(r.App)), strconv.Quote(r.App)},
		{"SEP", sep},
		{"TAG", hex.EncodeToString([]byte(r.Tag)), strconv.Quote(r.Tag)},
		{"SEP", sep},
		{"EXPIRES", hex.EncodeToString(expiry), strconv.FormatUint(r.ExpiresAt, 10)},
		{"SEP", sep},
		{"SECRET", fmt.Sprintf("<%d bytes>", r.SecretLen), r.Fingerprint},
		{"TOKEN", r.Token},
	}
}
