package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/flip/pkg/app"
	"github.com/birdayz/flip/pkg/config"
	"github.com/birdayz/flip/pkg/keypad"
)

func newConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCmdAllowFail(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a := app.New()
	a.EnvFile = ""
	root := NewRootCommand(a, "test", "none")

	b := bytes.NewBufferString("")
	root.SetArgs(args)
	root.SetOut(b)
	root.SetErr(b)
	if in == nil {
		in = strings.NewReader("")
	}
	root.SetIn(in)

	err := root.ExecuteContext(ctx)
	return b.String(), err
}

func runCmd(t *testing.T, in io.Reader, args ...string) string {
	t.Helper()
	out, err := runCmdAllowFail(t, in, args...)
	if err != nil {
		t.Logf("Command failed: %v\nArgs: %v\nOutput: %s", err, args, out)
		t.FailNow()
	}
	return out
}

func TestEncode(t *testing.T) {
	cfg := newConfigFile(t, "")
	require.Equal(t, "444-2 6\n", runCmd(t, nil, "--config", cfg, "encode", "I", "AM"))
	require.Equal(t, "444\n2 6\n", runCmd(t, nil, "--config", cfg, "encode", `--output-separator=\n`, "i am"))
}

func TestEncodeStdin(t *testing.T) {
	cfg := newConfigFile(t, "")
	out := runCmd(t, strings.NewReader("as black as night\nyou are\n"), "--config", cfg, "encode")
	require.Equal(t, "2 7777-22 555 2 222 55-2 7777-66 444 4 44 8\n999 666 88-2 777 33\n", out)
}

func TestEncodeUnencodable(t *testing.T) {
	cfg := newConfigFile(t, "")
	out, err := runCmdAllowFail(t, nil, "--config", cfg, "encode", "A1B")
	require.ErrorIs(t, err, keypad.ErrUnencodableCharacter)
	require.Contains(t, out, "unencodable character")

	require.Equal(t, "2 22\n", runCmd(t, nil, "--config", cfg, "encode", "--skip-unencodable", "A1B"))
}

func TestDecode(t *testing.T) {
	cfg := newConfigFile(t, "")
	require.Equal(t, "IAM\n", runCmd(t, nil, "--config", cfg, "decode", "444", "2", "6"))
	require.Equal(t, "I AM\n", runCmd(t, nil, "--config", cfg, "decode", "--word-separator=-", "444-2 6"))
	require.Equal(t, "C\n", runCmd(t, nil, "--config", cfg, "decode", "--lenient", "272"))
}

func TestDecodeFullInput(t *testing.T) {
	cfg := newConfigFile(t, "")
	in := strings.NewReader("999 666 88\n2 777 33\n2 66\n")
	out := runCmd(t, in, "--config", cfg, "decode", "--input-mode", "full", `--word-separator=\n`)
	require.Equal(t, "YOU ARE AN\n", out)
}

func TestDecodeErrors(t *testing.T) {
	cfg := newConfigFile(t, "")

	_, err := runCmdAllowFail(t, nil, "--config", cfg, "decode", "--word-separator=-", "144")
	require.ErrorIs(t, err, keypad.ErrInvalidDigit)

	_, err = runCmdAllowFail(t, nil, "--config", cfg, "decode", "22222")
	require.ErrorIs(t, err, keypad.ErrInvalidPosition)

	_, err = runCmdAllowFail(t, nil, "--config", cfg, "decode", "272")
	require.ErrorIs(t, err, keypad.ErrMixedToken)
}

func TestEmptySeparatorFlags(t *testing.T) {
	cfg := newConfigFile(t, "")

	_, err := runCmdAllowFail(t, nil, "--config", cfg, "decode", "--char-separator=", "444")
	require.ErrorIs(t, err, keypad.ErrEmptySeparator)

	_, err = runCmdAllowFail(t, nil, "--config", cfg, "encode", "--input-separator=", "I AM")
	require.ErrorIs(t, err, keypad.ErrEmptySeparator)

	// An empty word separator still means "decode as one word".
	require.Equal(t, "IAM\n", runCmd(t, nil, "--config", cfg, "decode", "--word-separator=", "444 2 6"))
}

func TestDecodeContinueOnError(t *testing.T) {
	cfg := newConfigFile(t, "")
	in := strings.NewReader("2\n1\n33\n")
	out := runCmd(t, in, "--config", cfg, "decode", "--continue-on-error")
	require.Contains(t, out, "skipping invalid record")

	var records []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.Contains(line, "level=") {
			records = append(records, line)
		}
	}
	require.Equal(t, []string{"A", "E"}, records)
}

func TestProfile(t *testing.T) {
	cfg := newConfigFile(t, `current-profile: sms
profiles:
  - name: sms
    word-separator: "-"
  - name: slash
    char-separator: "/"
    word-separator: "|"
    output-separator: "|"
`)
	require.Equal(t, "I AM\n", runCmd(t, nil, "--config", cfg, "decode", "444-2 6"))
	require.Equal(t, "I AM\n", runCmd(t, nil, "--config", cfg, "-p", "slash", "decode", "444|2/6"))
	require.Equal(t, "444|2 6\n", runCmd(t, nil, "--config", cfg, "-p", "slash", "encode", "I AM"))

	// Flags win over the profile.
	require.Equal(t, "IAM\n", runCmd(t, nil, "--config", cfg, "decode", "--word-separator=", "444 2 6"))

	_, err := runCmdAllowFail(t, nil, "--config", cfg, "-p", "missing", "decode", "2")
	require.Error(t, err)
}

func TestJSONOutput(t *testing.T) {
	cfg := newConfigFile(t, "")
	out := runCmd(t, nil, "--config", cfg, "encode", "-o", "json-each-row", "I AM")
	require.Equal(t, `{"index":0,"input":"I AM","output":"444-2 6"}`+"\n", out)
}

func TestTable(t *testing.T) {
	out := runCmd(t, nil, "--config", newConfigFile(t, ""), "table")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	require.Equal(t, []string{"KEY", "LETTERS", "PRESSES"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"7", "PQRS", "7", "77", "777", "7777"}, strings.Fields(lines[6]))

	out = runCmd(t, nil, "--config", newConfigFile(t, ""), "table", "--no-headers")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 8)
}

func TestConfigProfiles(t *testing.T) {
	cfg := newConfigFile(t, "")

	require.Equal(t, "Added profile.\n", runCmd(t, nil, "--config", cfg, "config", "add-profile", "sms", "--word-separator=-"))
	require.Equal(t, "Added profile.\n", runCmd(t, nil, "--config", cfg, "config", "add-profile", "lines", `--output-separator=\n`))

	_, err := runCmdAllowFail(t, nil, "--config", cfg, "config", "add-profile", "sms")
	require.Error(t, err)

	require.Equal(t, "sms\n", runCmd(t, nil, "--config", cfg, "config", "current-profile"))

	out := runCmd(t, nil, "--config", cfg, "config", "get-profiles", "--no-headers")
	require.Contains(t, out, "* sms")
	require.Contains(t, out, "  lines")

	require.Equal(t, "Switched to profile \"lines\".\n", runCmd(t, nil, "--config", cfg, "config", "use-profile", "lines"))
	require.Equal(t, "444\n2 6\n", runCmd(t, nil, "--config", cfg, "encode", "I AM"))

	_, err = runCmdAllowFail(t, nil, "--config", cfg, "config", "use-profile", "missing")
	require.Error(t, err)

	require.Equal(t, "Removed profile.\n", runCmd(t, nil, "--config", cfg, "config", "remove-profile", "lines"))
	read, err := config.ReadConfig(cfg)
	require.NoError(t, err)
	require.Len(t, read.Profiles, 1)
	require.Empty(t, read.CurrentProfile)
}

func TestConfigImport(t *testing.T) {
	cfg := newConfigFile(t, "")
	props := filepath.Join(t.TempDir(), "legacy.properties")
	require.NoError(t, os.WriteFile(props, []byte("flip.word.separator=/\nflip.lenient=true\n"), 0644))

	require.Equal(t, "Added profile \"legacy\"\n", runCmd(t, nil, "--config", cfg, "config", "import", props))
	require.Equal(t, "Replaced profile \"legacy\"\n", runCmd(t, nil, "--config", cfg, "config", "import", props))

	read, err := config.ReadConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, "legacy", read.CurrentProfile)
	require.Equal(t, []*config.Profile{{Name: "legacy", WordSeparator: "/", Lenient: true}}, read.Profiles)

	require.Equal(t, "I AM\n", runCmd(t, nil, "--config", cfg, "decode", "444/2 6"))
}

func TestCompletion(t *testing.T) {
	out := runCmd(t, nil, "--config", newConfigFile(t, ""), "completion", "bash")
	require.Contains(t, out, "flip")

	_, err := runCmdAllowFail(t, nil, "completion", "tcsh")
	require.Error(t, err)
}
