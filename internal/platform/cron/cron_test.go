package cron

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entry = "0 * * * * /srv/tplink-deco/run_generate_hosts.sh"

func TestAppend(t *testing.T) {
	tests := []struct {
		name  string
		table string
		want  string
	}{
		{
			name:  "empty table",
			table: "",
			want:  entry + "\n",
		},
		{
			name:  "existing entries are preserved",
			table: "30 2 * * * /usr/local/bin/backup.sh\n",
			want:  "30 2 * * * /usr/local/bin/backup.sh\n" + entry + "\n",
		},
		{
			name:  "missing trailing newline is normalized",
			table: "30 2 * * * /usr/local/bin/backup.sh",
			want:  "30 2 * * * /usr/local/bin/backup.sh\n" + entry + "\n",
		},
		{
			name:  "extra trailing newlines are collapsed",
			table: "30 2 * * * /usr/local/bin/backup.sh\n\n\n",
			want:  "30 2 * * * /usr/local/bin/backup.sh\n" + entry + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Append(tt.table, entry))
		})
	}
}

func TestContains(t *testing.T) {
	table := "# poller job\n" + entry + "\n"
	assert.True(t, Contains(table, entry))
	assert.False(t, Contains("30 2 * * * /usr/local/bin/backup.sh\n", entry))

	// Exact substring match only: differing whitespace is not a duplicate.
	spaced := "0  * * * * /srv/tplink-deco/run_generate_hosts.sh\n"
	assert.False(t, Contains(spaced, entry))
}

func TestCurrent(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })
	runCommand = func(_ context.Context, stdin io.Reader, args ...string) ([]byte, error) {
		assert.Nil(t, stdin)
		assert.Equal(t, []string{"-l"}, args)
		return []byte(entry + "\n"), nil
	}

	table, err := NewTable().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entry+"\n", table)
}

func TestCurrentNoCrontab(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })
	runCommand = func(_ context.Context, _ io.Reader, _ ...string) ([]byte, error) {
		// crontab -l exits nonzero when the user has no table yet.
		return nil, exitError(t)
	}

	table, err := NewTable().Current(context.Background())
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestCurrentCommandMissing(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })
	runCommand = func(_ context.Context, _ io.Reader, _ ...string) ([]byte, error) {
		return nil, fmt.Errorf("exec: \"crontab\": executable file not found in $PATH")
	}

	_, err := NewTable().Current(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crontab -l failed")
}

func TestReplace(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })

	var gotArgs []string
	var gotStdin string
	runCommand = func(_ context.Context, stdin io.Reader, args ...string) ([]byte, error) {
		gotArgs = args
		data, err := io.ReadAll(stdin)
		require.NoError(t, err)
		gotStdin = string(data)
		return nil, nil
	}

	table := entry + "\n"
	require.NoError(t, NewTable().Replace(context.Background(), table))

	assert.Equal(t, []string{"-"}, gotArgs)
	assert.Equal(t, table, gotStdin)
}

func TestReplaceFailure(t *testing.T) {
	restore := runCommand
	t.Cleanup(func() { runCommand = restore })
	runCommand = func(_ context.Context, _ io.Reader, _ ...string) ([]byte, error) {
		return nil, exitError(t)
	}

	err := NewTable().Replace(context.Background(), entry+"\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to install crontab")
}

// exitError produces a real *exec.ExitError by running a command that
// always fails.
func exitError(t *testing.T) error {
	t.Helper()
	err := exec.Command("false").Run()
	require.Error(t, err)
	return err
}
