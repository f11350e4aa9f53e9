package compose_test

import (
	"context"
	"fmt"
	"testing"

	"composectl/internal/compose"
	"composectl/internal/compose/composetest"
	"composectl/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpWithConfiguredBaseFile(t *testing.T) {
	env := composetest.NewEnv(folderPath)
	env.Settings.ComposeFile = "docker-compose.yml"
	env.Settings.Build = composetest.Bool(true)
	env.Settings.Detached = composetest.Bool(true)

	require.NoError(t, env.Commands().Up(context.Background(), ""))

	assert.Equal(t, []string{
		`cd "/work/project"`,
		`docker-compose -f "docker-compose.yml" up -d --build`,
	}, env.Terminal.Lines())
	assert.Zero(t, env.Finder.Calls)
	assert.Empty(t, env.Notifier.Messages)
}

func TestDownWithDiscoveredSelection(t *testing.T) {
	env := composetest.NewEnv(folderPath)
	env.Finder.Locations = []string{
		folderPath + "/a/docker-compose.yml",
		folderPath + "/b/docker-compose.yml",
	}
	env.Chooser.Pick = 1

	require.NoError(t, env.Commands().Down(context.Background(), ""))

	assert.Equal(t, []string{
		`cd "/work/project"`,
		`docker-compose -f "b/docker-compose.yml" down`,
	}, env.Terminal.Lines())
	assert.Equal(t, []string{"Choose Docker Compose file to take down"}, env.Chooser.Prompts)
}

func TestNothingDiscoveredSendsNothing(t *testing.T) {
	env := composetest.NewEnv(folderPath)

	require.NoError(t, env.Commands().Up(context.Background(), ""))

	assert.Empty(t, env.Terminal.Events, "no cd line and no command line")
	assert.Equal(t, []string{compose.NoComposeFilesMessage}, env.Notifier.Messages)
}

func TestDismissedChooserSendsNothing(t *testing.T) {
	env := composetest.NewEnv(folderPath)
	env.Finder.Locations = []string{folderPath + "/docker-compose.yml"}
	env.Chooser.Dismiss = true

	require.NoError(t, env.Commands().Start(context.Background(), ""))

	assert.Empty(t, env.Terminal.Events)
	assert.Equal(t, []string{compose.NoSelectionMessage}, env.Notifier.Messages)
}

func TestExplicitFileWithQuoteSendsNothing(t *testing.T) {
	env := composetest.NewEnv(folderPath)

	err := env.Commands().Up(context.Background(), `a"b.yml`)
	require.Error(t, err)
	assert.Equal(t, errors.InvalidPath, errors.KindOf(err))
	assert.Empty(t, env.Terminal.Events)
	assert.Empty(t, env.Notifier.Messages)
}

func TestNoFolderFailsFast(t *testing.T) {
	env := composetest.NewEnv("")
	env.Settings.ComposeFile = "docker-compose.yml"

	err := env.Commands().Up(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsNoWorkspaceFolder(err))
	assert.Contains(t, err.Error(), compose.NoFolderMessage)
	assert.Empty(t, env.Terminal.Events)
	assert.Zero(t, env.Finder.Calls)
	assert.Empty(t, env.Settings.Reads, "settings are not read before a folder is known")

	env = composetest.NewEnv(folderPath)
	env.Folders.Err = fmt.Errorf("getwd: no such file or directory")
	err = env.Commands().Down(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsNoWorkspaceFolder(err))
	assert.Empty(t, env.Terminal.Events)
}

func TestRestartSendsStopThenStartForSameFiles(t *testing.T) {
	env := composetest.NewEnv(folderPath)
	env.Settings.ComposeFile = "docker-compose.yml"
	env.Settings.ComposeAdditionalFiles = []string{"docker-compose.dev.yml"}

	require.NoError(t, env.Commands().Restart(context.Background(), ""))

	assert.Equal(t, []string{
		`cd "/work/project"`,
		`docker-compose -f "docker-compose.yml" -f "docker-compose.dev.yml" stop`,
		`docker-compose -f "docker-compose.yml" -f "docker-compose.dev.yml" start`,
	}, env.Terminal.Lines())
}

func TestExplicitFileIgnoresSettingsAndDiscovery(t *testing.T) {
	env := composetest.NewEnv(folderPath)
	env.Settings.ComposeFile = "docker-compose.yml"
	env.Finder.Locations = []string{folderPath + "/docker-compose.yml"}

	require.NoError(t, env.Commands().Stop(context.Background(), "services/docker-compose.yml"))

	assert.Equal(t, []string{
		`cd "/work/project"`,
		`docker-compose -f "services/docker-compose.yml" stop`,
	}, env.Terminal.Lines())
	assert.Zero(t, env.Finder.Calls)
	assert.Zero(t, env.Chooser.Calls)
}

func TestEntryPointsMapToActions(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		run  func(c *compose.Commands) error
		want []string
	}{
		{"up", func(c *compose.Commands) error { return c.Up(ctx, "") }, []string{"up -d --build"}},
		{"down", func(c *compose.Commands) error { return c.Down(ctx, "") }, []string{"down"}},
		{"restart", func(c *compose.Commands) error { return c.Restart(ctx, "") }, []string{"stop", "start"}},
		{"start", func(c *compose.Commands) error { return c.Start(ctx, "") }, []string{"start"}},
		{"stop", func(c *compose.Commands) error { return c.Stop(ctx, "") }, []string{"stop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := composetest.NewEnv(folderPath)
			env.Settings.ComposeFile = "x.yml"
			require.NoError(t, tt.run(env.Commands()))

			lines := env.Terminal.Lines()
			require.Len(t, lines, 1+len(tt.want))
			for i, suffix := range tt.want {
				assert.Equal(t, `docker-compose -f "x.yml" `+suffix, lines[i+1])
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	env := composetest.NewEnv(folderPath)
	env.Finder.Locations = []string{folderPath + "/docker-compose.yml", folderPath + "/db/docker-compose.yaml"}

	folder, files, err := env.Commands().Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, folderPath, folder.Path)
	assert.Equal(t, []string{"docker-compose.yml", "db/docker-compose.yaml"}, paths(files))
	assert.Zero(t, env.Chooser.Calls)
}
