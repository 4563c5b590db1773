package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	out, err := RenderString("echo {{ .msg }}", Data{"msg": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "echo hello", out)
}

func TestRenderString_NoVariables(t *testing.T) {
	out, err := RenderString("ls -la", nil)
	require.NoError(t, err)
	assert.Equal(t, "ls -la", out)
}

func TestRenderString_ParseError(t *testing.T) {
	_, err := RenderString("echo {{ .msg", Data{"msg": "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template string")
}

func TestRenderString_MissingKey(t *testing.T) {
	_, err := RenderString("echo {{ .missing }}", Data{"msg": "hello"})
	require.Error(t, err)
}
