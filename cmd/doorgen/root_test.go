package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromYAMLEdges(t *testing.T) {
	dir := t.TempDir()
	edgesPath := filepath.Join(dir, "edges.yaml")
	content := `
- name: door_1
  length: 1.0
  x: 3.5
  y: -2.0
  yaw: 1.5708
- name: door_2
  length: 2
  kind: double_sliding
`
	require.NoError(t, os.WriteFile(edgesPath, []byte(content), 0o644))

	var stdout, stderr bytes.Buffer
	err := runGenerate(&stdout, &stderr, &generateOptions{edgesPath: edgesPath, kind: "sliding", world: "test"})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, `<world name="test">`)
	assert.Contains(t, out, "<pose>3.5 -2.0 0 0 0 1.5708</pose>")
	assert.Contains(t, out, `<link name="door_1_right">`)
	assert.Contains(t, out, `<link name="door_2_left">`)
	assert.Contains(t, stderr.String(), "door_1")
}

func TestGenerateToFile(t *testing.T) {
	dir := t.TempDir()
	edgesPath := filepath.Join(dir, "edges.json")
	require.NoError(t, os.WriteFile(edgesPath, []byte(`[{"name": "d", "length": 1}]`), 0o644))

	outPath := filepath.Join(dir, "doors.sdf")
	var stdout, stderr bytes.Buffer
	err := runGenerate(&stdout, &stderr, &generateOptions{edgesPath: edgesPath, kind: "sliding", output: outPath})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<model name="d">`)
}

func TestGenerateRequiresInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runGenerate(&stdout, &stderr, &generateOptions{kind: "sliding"})
	assert.Error(t, err)
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	edgesPath := filepath.Join(dir, "edges.yaml")
	require.NoError(t, os.WriteFile(edgesPath, []byte("- name: d\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := runGenerate(&stdout, &stderr, &generateOptions{edgesPath: edgesPath, kind: "revolving"})
	assert.Error(t, err)
}
