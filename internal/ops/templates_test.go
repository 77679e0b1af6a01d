package ops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const chestTemplate = `- Bench Press
  - [video](videos/bench.mp4)
- Incline Dumbbell Press
- Cable Fly
`

func TestListTemplates(t *testing.T) {
	v := testVault(t)
	cfg := testConfig()

	require.NoError(t, v.WriteFile("templates/w-chest-t.md", chestTemplate))
	require.NoError(t, v.WriteFile("templates/w-hams-glutes-t.md", "- Romanian Deadlift\n"))
	require.NoError(t, v.WriteFile("templates/journal-t.md", "# Daily\n"))
	require.NoError(t, v.WriteFile("templates/notes.md", "- Not A Template\n"))

	out, err := ListTemplates(v, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)

	require.Equal(t, "Chest", out.Templates[0].DisplayName)
	require.Equal(t, "w-chest-t.md", out.Templates[0].FileName)
	require.Len(t, out.Templates[0].Exercises, 3)
	require.Equal(t, "templates/videos/bench.mp4", out.Templates[0].Exercises[0].VideoRef)

	require.Equal(t, "Hams Glutes", out.Templates[1].DisplayName)
}

func TestListTemplatesMissingFolder(t *testing.T) {
	v := testVault(t)

	_, err := ListTemplates(v, testConfig())
	require.Error(t, err)
}

func TestFindTemplate(t *testing.T) {
	v := testVault(t)
	cfg := testConfig()
	require.NoError(t, v.WriteFile("templates/w-chest-t.md", chestTemplate))

	byName, err := FindTemplate(v, cfg, "Chest")
	require.NoError(t, err)
	require.NotNil(t, byName)

	byFile, err := FindTemplate(v, cfg, "w-chest-t.md")
	require.NoError(t, err)
	require.NotNil(t, byFile)

	missing, err := FindTemplate(v, cfg, "Legs")
	require.NoError(t, err)
	require.Nil(t, missing)
}
