package command

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	knownToken   = "U6Gd6z9kECqbixIkjVvNEEDJIch_wdJqYMjvliE4ao8="
	oneSecToken  = "ujUvnMUnaeXo7EfxCizFmooksXCxoW3r4u3ue_U5tNM="
	newlineToken = "qssruYV2awRKwhs0rfl9-fNE8HOnhDD594lxLcHE_hw="
)

var testSecret = []byte{0x01, 0x02, 0x03}

// runResult captures one CLI invocation.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the CLI with an isolated HOME so no user config is picked up.
func runApp(t *testing.T, stdin io.Reader, args ...string) runResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TAGOVERRIDE_SECRET_FILE", "")

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	app.Reader = stdin

	err := app.Run(append([]string{"tagoverride"}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeTemp writes data to a file in a fresh temp dir and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func secretFile(t *testing.T) string {
	t.Helper()
	return writeTemp(t, "secret.key", testSecret)
}

// stubTerminal makes stdin look like a terminal that answers with secret.
func stubTerminal(t *testing.T, secret []byte) {
	t.Helper()
	origIsTerminal, origReadPassword := isTerminal, readPassword
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return append([]byte(nil), secret...), nil }
	t.Cleanup(func() {
		isTerminal, readPassword = origIsTerminal, origReadPassword
	})
}
