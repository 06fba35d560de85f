package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bcampbell/qsgen"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGolden(t *testing.T) {
	data := []struct {
		golden string
		args   []string
	}{
		{"shoes", []string{"testdata/shoes.yaml"}},
		{"nested", []string{"testdata/nested.yaml"}},
		{"citrus", []string{"testdata/citrus.yaml"}},
		{"citrus_bleve", []string{"--bleve", "testdata/citrus.yaml"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, dat := range data {
		t.Run(dat.golden, func(t *testing.T) {
			out, _, err := execute(t, "", dat.args...)
			require.NoError(t, err)
			g.Assert(t, dat.golden, []byte(out))
		})
	}
}

func TestStdin(t *testing.T) {
	out, _, err := execute(t, "clauses: [{value: citrus}]\n", "-")
	require.NoError(t, err)
	assert.Equal(t, "(citrus) \n", out)

	out, _, err = execute(t, "clauses: [{value: lime}]\n")
	require.NoError(t, err)
	assert.Equal(t, "(lime) \n", out)
}

func TestErrors(t *testing.T) {
	_, stderr, err := execute(t, "", filepath.Join("testdata", "empty_group.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, qsgen.ErrEmptyClause)
	assert.Contains(t, stderr, "clauses[1]")

	_, _, err = execute(t, "", filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "clauses: [{value: a, bogus: 1}]\n", "-")
	assert.ErrorIs(t, err, qsgen.ErrInvalidIntent)

	_, _, err = execute(t, "", "a.yaml", "b.yaml")
	assert.Error(t, err)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := execute(t, "clauses: [{value: citrus}]\n", "-v", "-")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rendered intent")

	_, stderr, err = execute(t, "clauses: [{value: citrus}]\n", "-")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
