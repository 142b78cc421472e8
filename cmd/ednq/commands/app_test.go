package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/edn/cmd/ednq/commands"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := commands.NewApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.RunContext(context.Background(), append([]string{"ednq"}, args...))
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"edn", "{:a 1 :b [2 3]}", []string{"decode"}, "{:a 1, :b [2 3]}\n"},
		{"json", "{:a 1 :b [2 3]}", []string{"decode", "-f", "json"}, `{":a":1,":b":[2,3]}` + "\n"},
		{"all forms", "1 2", []string{"decode", "--all"}, "1\n2\n"},
		{"unknown tags", "#myapp/point [1 2]", []string{"decode", "--keep-unknown-tags"}, "#myapp/point [1 2]\n"},
		{"rows", `#{[17592186045417 "Peter"]}`, []string{"rows"}, "[[17592186045417 \"Peter\"]]\n"},
		{"tx key", "{:tempids {-1 17592186045417}}", []string{"tx", "--key", "tempids"}, "{-1 17592186045417}\n"},
		{"json datoms", `[{":e": 1, ":v": "hello"}]`, []string{"datoms", "--json"}, "[{:e 1, :v \"hello\"}]\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := runApp(t, test.stdin, test.args...)
			require.NoError(t, err)
			require.Equal(t, test.expected, out)
		})
	}
}

func TestDecodeCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		errText string
	}{
		{"malformed", "[1 2", []string{"decode"}, "unexpected EOF"},
		{"unknown format", "1", []string{"decode", "-f", "xml"}, `unknown format "xml"`},
		{"max depth", "[[[1]]]", []string{"decode", "--max-depth", "2"}, "maximum nesting depth of 2 exceeded"},
		{"max input size", "[1 2 3]", []string{"decode", "--max-input-size", "4"}, "input too large"},
		{"shape", "{:a 1}", []string{"rows"}, "expected vector of vectors, got map"},
		{"json datoms too large", `[{":e": 1}]`, []string{"datoms", "--json", "--max-input-size", "4"}, "input too large"},
		{"json datoms trailing data", `[{":e": 1}] x`, []string{"datoms", "--json"}, "invalid JSON"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runApp(t, test.stdin, test.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), test.errText)
		})
	}
}

func TestDecodeCommandFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.edn")
	b := filepath.Join(dir, "b.edn")
	c := filepath.Join(dir, "c.edn")
	require.NoError(t, os.WriteFile(a, []byte("[1]"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("{:a"), 0o600))
	require.NoError(t, os.WriteFile(c, []byte("#{2}"), 0o600))

	out, err := runApp(t, "", "decode", a, c)
	require.NoError(t, err)
	require.Equal(t, "[1]\n#{2}\n", out)

	out, err = runApp(t, "", "decode", "--keep-going", a, b, c)
	require.Error(t, err)
	require.Contains(t, err.Error(), b)
	require.Equal(t, "[1]\n#{2}\n", out)

	_, err = runApp(t, "", "decode", filepath.Join(dir, "missing.edn"))
	require.Error(t, err)
}

func TestTagsCommand(t *testing.T) {
	out, err := runApp(t, "", "tags")
	require.NoError(t, err)
	require.Equal(t, "#db/id\n#inst\n#uuid\n", out)
}
