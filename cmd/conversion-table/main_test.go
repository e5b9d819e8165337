package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversion-oracle/boundary"
	"conversion-oracle/primitive"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestGenerateToStdout(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-target", "int8", "-sources", "UInt8,Float32")
	require.Equal(t, 0, code, stderr)

	suite, err := boundary.Parse([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "ToInt8", suite.Name)
	require.Len(t, suite.Sections, 2)
	assert.Equal(t, primitive.KindUint8, suite.Sections[0].Source)
	assert.Equal(t, primitive.KindFloat32, suite.Sections[1].Source)
}

func TestWriteAndVerify(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "to_uint16.yaml")

	code, stdout, stderr := runCLI(t, "-target", "UInt16", "-o", path)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "suite written")

	code, _, stderr = runCLI(t, "-verify", path)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "cases")
	assert.NotContains(t, stderr, "fault recorded")

	code, _, stderr = runCLI(t, "-v", "-verify", path)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "fault recorded")

	suite, err := boundary.LoadFile(path)
	require.NoError(t, err)
	suite.Sections[0].Group(boundary.NeverTraps).Cases[0].Expected = "+1"
	require.NoError(t, boundary.WriteFile(suite, path))

	code, _, stderr = runCLI(t, "-verify", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unexpected-value")
}

func TestInvalidInvocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"-nope"}, 2},
		{"float target", []string{"-target", "Float32"}, 1},
		{"unknown target", []string{"-target", "Int128"}, 2},
		{"unknown source", []string{"-sources", "UInt8,Complex64"}, 2},
		{"extra argument", []string{"-target", "UInt8", "extra"}, 2},
		{"missing suite", []string{"-verify", filepath.Join(os.TempDir(), "conversion-table-missing.yaml")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout)
		})
	}
}
