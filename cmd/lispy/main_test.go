package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lispy-lang/impl/internal/value"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(strings.NewReader(stdin), &out).Run(append([]string{"lispy", "--no-color"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.lispy")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestEval(t *testing.T) {
	out, err := runApp(t, "", "eval", "(+", "1", "(-", "3", "2))")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = runApp(t, "", "eval", "(0 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2)\n", out)
}

func TestEvalErrors(t *testing.T) {
	_, err := runApp(t, "", "eval", "(/ 1 0)")
	assert.True(t, errors.Is(err, value.ErrDivisionByZero), "got %v", err)

	_, err = runApp(t, "", "eval")
	assert.Error(t, err)
}

func TestDefaultActionIsREPL(t *testing.T) {
	out, err := runApp(t, "(* 6 7)\nexit\n")
	require.NoError(t, err)
	assert.Equal(t, "lispy> 42\nlispy> ", out)
}

func TestREPLPrompt(t *testing.T) {
	out, err := runApp(t, "(+ 1 1)\n", "--prompt", "> ", "repl")
	require.NoError(t, err)
	assert.Equal(t, "> 2\n> ", out)
}

func TestTokens(t *testing.T) {
	out, err := runApp(t, "", "tokens", writeFile(t, "(+ 12 3)"))
	require.NoError(t, err)

	var got []tokenOut
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var tok tokenOut
		require.NoError(t, dec.Decode(&tok))
		got = append(got, tok)
	}
	assert.Equal(t, []tokenOut{
		{"begin", "("},
		{"function", "+"},
		{"number", "12"},
		{"number", "3"},
		{"end", ")"},
	}, got)
}

func TestAST(t *testing.T) {
	out, err := runApp(t, "", "ast", writeFile(t, "(* 2 3)"))
	require.NoError(t, err)
	want := `{
	  "tag": "sexpr", "value": "(", "children": [
	    {"tag": "operator", "value": "*", "children": []},
	    {"tag": "number", "value": "2", "children": []},
	    {"tag": "number", "value": "3", "children": []}
	  ]
	}`
	assert.JSONEq(t, want, out)
}

func TestASTEmpty(t *testing.T) {
	_, err := runApp(t, "", "ast", writeFile(t, "   "))
	assert.True(t, errors.Is(err, value.ErrEmptyInput), "got %v", err)
}

func TestMissingFile(t *testing.T) {
	_, err := runApp(t, "", "tokens", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
