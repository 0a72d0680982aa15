package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomforge/roomforge/pkg/layout"
	"github.com/roomforge/roomforge/pkg/room"
	"github.com/roomforge/roomforge/pkg/vision"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"generate", "validate", "catalog", "completion"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestReadRoomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	content := `{"dimensions":{"width":2.8,"length":4.0},"doors":[{"position":{"x":1.0,"y":0},"width":0.9,"orientation":"horizontal"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	desc, err := readRoomFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2.8, desc.Dimensions.Width)
	assert.Equal(t, 4.0, desc.Dimensions.Length)
	require.Len(t, desc.Doors, 1)
	assert.Equal(t, 0.9, desc.Doors[0].Width)
}

func TestReadRoomFileMissing(t *testing.T) {
	_, err := readRoomFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "room.plan.json", defaultPath("room.json", "", ".plan.json"))
	assert.Equal(t, "custom.json", defaultPath("room.json", "custom.json", ".plan.json"))
	assert.Equal(t, "a/b/room.conditioning.png", defaultPath("a/b/room.json", "", ".conditioning.png"))
}

func TestGenerateAndValidateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	roomPath := filepath.Join(dir, "room.json")
	content := `{"dimensions":{"width":4.5,"length":5.0}}`
	require.NoError(t, os.WriteFile(roomPath, []byte(content), 0o644))

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"generate", roomPath, "--type", "kitchen"})
	require.NoError(t, root.Execute())

	planPath := filepath.Join(dir, "room.plan.json")
	condPath := filepath.Join(dir, "room.conditioning.png")
	floorPath := filepath.Join(dir, "room.floorplan.png")
	for _, p := range []string{planPath, condPath, floorPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected output %s: %v", p, err)
		}
	}

	var plan layout.Plan
	data, err := os.ReadFile(planPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Equal(t, layout.TypeIsland, plan.LayoutType)
	assert.NotEmpty(t, plan.Furniture)

	reportPath := filepath.Join(dir, "report.json")
	root = c.RootCommand()
	root.SetArgs([]string{"validate", planPath, condPath, "--output", reportPath})
	require.NoError(t, root.Execute())

	var report vision.ComplianceReport
	data, err = os.ReadFile(reportPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &report))
	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 1.0)
}

func TestUsableWallRun(t *testing.T) {
	desc := room.Description{
		Dimensions: room.Dimensions{Width: 4.0, Length: 5.0, Height: 2.7},
		Windows:    []room.Window{{Position: room.Point{X: 1.0}, Width: 1.2, Wall: room.WallNorth}},
	}
	// Perimeter 2*(4+5) minus the window span.
	assert.InDelta(t, 16.8, usableWallRun(desc), 1e-9)
}

func TestGenerateRejectsInvalidRoom(t *testing.T) {
	dir := t.TempDir()
	roomPath := filepath.Join(dir, "room.json")
	require.NoError(t, os.WriteFile(roomPath, []byte(`{"dimensions":{"width":1.0,"length":1.0}}`), 0o644))

	root := New(os.Stderr, LogInfo).RootCommand()
	root.SetArgs([]string{"generate", roomPath})
	assert.Error(t, root.Execute())
}

func TestCatalogCommand(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()
	root.SetArgs([]string{"catalog", "kitchen"})
	assert.NoError(t, root.Execute())

	root = New(os.Stderr, LogInfo).RootCommand()
	root.SetArgs([]string{"catalog", "ballroom"})
	assert.Error(t, root.Execute())
}
