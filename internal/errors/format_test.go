package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFprintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, &CLIError{
		Category:    Manifest,
		Message:     "no version found",
		Usage:       "relnotes generate --manifest <path>",
		Remediation: []string{"Check the manifest path", "Pass --artifact-id"},
	})

	got := buf.String()
	assert.Contains(t, got, "Manifest Error")
	assert.Contains(t, got, "no version found")
	assert.Contains(t, got, "Usage:")
	assert.Contains(t, got, "relnotes generate --manifest <path>")
	assert.Contains(t, got, "To fix this:")
	assert.Contains(t, got, "Check the manifest path")
	assert.Contains(t, got, "Pass --artifact-id")
}

func TestFprintError_MinimalError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, &CLIError{Category: Repository, Message: "not a repository"})

	got := buf.String()
	assert.Contains(t, got, "Repository Error")
	assert.NotContains(t, got, "Usage:")
	assert.NotContains(t, got, "To fix this:")
}

func TestFprintError_NilIsNoop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	base := fmt.Errorf("open failed")

	wrapped := Wrap(base, Repository, "Run inside a git repository")
	assert.Equal(t, Repository, wrapped.Category)
	assert.Equal(t, "open failed", wrapped.Message)
	assert.ErrorIs(t, wrapped, base)

	withMsg := WrapWithMessage(base, Manifest, "reading manifest")
	assert.Equal(t, "reading manifest: open failed", withMsg.Message)
	assert.ErrorIs(t, withMsg, base)

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))
}
