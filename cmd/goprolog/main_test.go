package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBuiltinDemoAnswersGrandparentQuery(t *testing.T) {
	in := strings.NewReader("grandparent(tom, X).y\n\n")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	code := run(nil, in, out, errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "X = ann")
	assert.Contains(t, out.String(), "X = pat")
}

func TestRunWithProgramFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.pl")
	require.NoError(t, os.WriteFile(path, []byte("bar(a).\nbar(b).\n"), 0o644))

	in := strings.NewReader("bar(X).\n\n")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	code := run([]string{path}, in, out, errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "X = a")
}

func TestRunMissingProgramFileExitsOne(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	code := run([]string{"/no/such/file.pl"}, strings.NewReader(""), out, errOut)

	assert.Equal(t, 1, code)
}

func TestRunHelpFlagExitsOne(t *testing.T) {
	for _, flag := range []string{"-h", "--help", "-?"} {
		out := &bytes.Buffer{}
		errOut := &bytes.Buffer{}
		code := run([]string{flag}, strings.NewReader(""), out, errOut)
		assert.Equal(t, 1, code, "flag %s", flag)
		assert.NotEmpty(t, errOut.String(), "flag %s should print usage", flag)
	}
}

func TestRunTooManyArgumentsExitsOne(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	code := run([]string{"a.pl", "b.pl"}, strings.NewReader(""), out, errOut)
	assert.Equal(t, 1, code)
}
