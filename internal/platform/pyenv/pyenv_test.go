package pyenv

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	env := New("/srv/tplink-deco/venv")

	assert.Equal(t, "/srv/tplink-deco/venv", env.Dir())
	assert.Equal(t, "/srv/tplink-deco/venv/bin/python", env.Python())
	assert.Equal(t, "/srv/tplink-deco/venv/bin/pip", env.pip())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, New(dir).Exists())
	assert.False(t, New(filepath.Join(dir, "venv")).Exists())
}

func TestCreate(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })

	var gotName string
	var gotArgs []string
	runCommand = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return nil, nil
	}

	env := New("/srv/tplink-deco/venv")
	require.NoError(t, env.Create(context.Background()))

	assert.Equal(t, "python3", gotName)
	assert.Equal(t, []string{"-m", "venv", "/srv/tplink-deco/venv"}, gotArgs)
}

func TestPipCommands(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })

	var calls [][]string
	runCommand = func(_ context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{name}, args...))
		return nil, nil
	}

	env := New("/srv/tplink-deco/venv")
	ctx := context.Background()

	require.NoError(t, env.UpgradePip(ctx))
	require.NoError(t, env.InstallRequirements(ctx, "/srv/tplink-deco/requirements.txt"))
	require.NoError(t, env.InstallPackage(ctx, "tplinkrouterc6u>=5.4.0"))

	pip := "/srv/tplink-deco/venv/bin/pip"
	assert.Equal(t, [][]string{
		{pip, "install", "--upgrade", "pip"},
		{pip, "install", "-r", "/srv/tplink-deco/requirements.txt"},
		{pip, "install", "tplinkrouterc6u>=5.4.0"},
	}, calls)
}

func TestCreateFailureIncludesOutput(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })
	runCommand = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte("The virtual environment was not created successfully\n"), fmt.Errorf("exit status 1")
	}

	err := New("/srv/tplink-deco/venv").Create(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create virtual environment")
	assert.Contains(t, err.Error(), "not created successfully")
}

func TestInstallPackageFailure(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })
	runCommand = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte("No matching distribution found\n"), fmt.Errorf("exit status 1")
	}

	err := New("/srv/tplink-deco/venv").InstallPackage(context.Background(), "tplinkrouterc6u>=5.4.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tplinkrouterc6u>=5.4.0")
}
