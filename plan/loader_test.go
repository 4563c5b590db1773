package plan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensylisir/xmprogress/step"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validPlan = `
apiVersion: xmprogress/v1
kind: Plan
metadata:
  name: release
spec:
  maxProgress: 100
  vars:
    version: 1.2.3
  steps:
    - code: build
      name: Build
      description: builds the artifact
      command: "make build VERSION={{ .version }}"
      timeoutSeconds: 30
    - code: publish
      name: Publish
      command: "make publish"
      workDir: /tmp
      env:
        DRY_RUN: "1"
`

func TestLoader_LoadValidPlan(t *testing.T) {
	path := writePlanFile(t, validPlan)

	p, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "release", p.Metadata.Name)
	require.NotNil(t, p.Spec)
	require.Len(t, p.Spec.Steps, 2)
	assert.Equal(t, 100, p.Spec.MaxProgress)
}

func TestPlan_BuildRendersCommands(t *testing.T) {
	path := writePlanFile(t, validPlan)
	p, err := NewLoader(path).Load()
	require.NoError(t, err)

	list, err := p.Build()
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, 100, list.MaxProgress())

	got, ok := list.Get("build")
	require.True(t, ok)
	cs, ok := got.(*step.CommandStep)
	require.True(t, ok)
	assert.Equal(t, "make build VERSION=1.2.3", cs.Command)
	assert.Equal(t, 30*time.Second, cs.Timeout)

	got, ok = list.Get("publish")
	require.True(t, ok)
	cs = got.(*step.CommandStep)
	assert.Equal(t, "/tmp", cs.WorkDir)
	assert.Equal(t, map[string]string{"DRY_RUN": "1"}, cs.Env)
}

func TestPlan_BuildDefaultsMaxProgress(t *testing.T) {
	p := &Plan{
		APIVersion: "xmprogress/v1",
		Kind:       KindPlan,
		Metadata:   Metadata{Name: "defaults"},
		Spec: &Spec{
			Steps: []StepSpec{{Name: "Only", Command: "true"}},
		},
	}

	list, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxProgress, list.MaxProgress())
}

func TestPlan_BuildFailsOnBadTemplate(t *testing.T) {
	p := &Plan{
		APIVersion: "xmprogress/v1",
		Kind:       KindPlan,
		Metadata:   Metadata{Name: "bad"},
		Spec: &Spec{
			Steps: []StepSpec{{Name: "Broken", Command: "echo {{ .missing }}"}},
		},
	}

	_, err := p.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render command")
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing apiVersion",
			content: "kind: Plan\nmetadata:\n  name: x\nspec:\n  steps:\n    - name: a\n      command: b\n",
			wantErr: "apiVersion",
		},
		{
			name:    "wrong kind",
			content: "apiVersion: v1\nkind: Cluster\nmetadata:\n  name: x\nspec:\n  steps:\n    - name: a\n      command: b\n",
			wantErr: "kind must be 'Plan'",
		},
		{
			name:    "missing name",
			content: "apiVersion: v1\nkind: Plan\nspec:\n  steps:\n    - name: a\n      command: b\n",
			wantErr: "metadata.name",
		},
		{
			name:    "no steps",
			content: "apiVersion: v1\nkind: Plan\nmetadata:\n  name: x\nspec:\n  maxProgress: 10\n",
			wantErr: "at least one step",
		},
		{
			name:    "step without command",
			content: "apiVersion: v1\nkind: Plan\nmetadata:\n  name: x\nspec:\n  steps:\n    - name: a\n",
			wantErr: "steps[0].command",
		},
		{
			name:    "not yaml",
			content: "{{{{",
			wantErr: "failed to unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePlanFile(t, tt.content)
			_, err := NewLoader(path).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_MissingAndEmptyFile(t *testing.T) {
	_, err := NewLoader("").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is empty")

	_, err = NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	require.Error(t, err)

	path := writePlanFile(t, "")
	_, err = NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}
