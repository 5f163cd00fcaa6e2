package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ews-go/ews/ewstest"
	"github.com/custodia-labs/ews-go/internal/xmldom"
)

const testEndpoint = "https://mail.duckburg.com/EWS/Exchange.asmx"

// fakePasswords answers the password prompt with a fixed password.
type fakePasswords struct {
	terminal bool
	password string
}

func (f fakePasswords) IsTerminal(int) bool { return f.terminal }

func (f fakePasswords) ReadPassword(int) ([]byte, error) { return []byte(f.password), nil }

type harness struct {
	fake       *ewstest.FakeTransport
	app        *app
	env        map[string]string
	configPath string
	envFile    string
	storePath  string
}

// newHarness returns a CLI wired to a fake transport with a complete
// profile in the environment.
func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		fake:       ewstest.NewFakeTransport(),
		configPath: filepath.Join(dir, "config.toml"),
		envFile:    filepath.Join(dir, "test.env"),
		storePath:  filepath.Join(dir, "cursors.db"),
	}
	require.NoError(t, os.WriteFile(h.configPath, nil, 0o600))
	require.NoError(t, os.WriteFile(h.envFile, nil, 0o600))

	h.env = map[string]string{
		"EWS_ENDPOINT":   testEndpoint,
		"EWS_EMAIL":      "dduck@duckburg.com",
		"EWS_USERNAME":   "dduck",
		"EWS_PASSWORD":   "quack",
		"EWS_DOMAIN":     "DUCKBURG",
		"EWS_STORE":      h.storePath,
		"EWS_RATE_LIMIT": "1000",
	}
	h.app = &app{
		transport: h.fake,
		passwords: fakePasswords{},
		lookupEnv: func(k string) (string, bool) {
			v, ok := h.env[k]
			return v, ok
		},
		stdin: strings.NewReader(""),
	}
	return h
}

// run executes ewsctl with args and returns everything it printed.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(h.app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", h.configPath, "--env-file", h.envFile}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) lastOperation(t *testing.T) *etree.Element {
	t.Helper()
	op, err := h.fake.LastOperation()
	require.NoError(t, err)
	return op
}

func xmlOf(e *etree.Element) string {
	return xmldom.String(e)
}
