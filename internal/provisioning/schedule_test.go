package provisioning

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleStepAddsEntry(t *testing.T) {
	f := newFixture(t)

	ctx := f.context()
	require.NoError(t, (&ScheduleStep{}).Provision(ctx))

	assert.True(t, ctx.State.CronEntryAdded)
	assert.Equal(t, 1, f.jobs.replaceCalls)
	assert.Equal(t, "0 * * * * /srv/tplink-deco/run_generate_hosts.sh\n", f.jobs.table)
	assert.Contains(t, f.out.output(), "[SUCCESS] Cron job added successfully")
}

func TestScheduleStepPreservesOtherEntries(t *testing.T) {
	f := newFixture(t)
	f.jobs.table = "MAILTO=ops@example.net\n30 2 * * * /usr/local/bin/backup.sh\n"

	require.NoError(t, (&ScheduleStep{}).Provision(f.context()))

	assert.Equal(t,
		"MAILTO=ops@example.net\n30 2 * * * /usr/local/bin/backup.sh\n0 * * * * /srv/tplink-deco/run_generate_hosts.sh\n",
		f.jobs.table)
}

func TestScheduleStepSkipsExistingEntry(t *testing.T) {
	f := newFixture(t)
	f.jobs.table = "0 * * * * /srv/tplink-deco/run_generate_hosts.sh\n"

	ctx := f.context()
	require.NoError(t, (&ScheduleStep{}).Provision(ctx))

	assert.False(t, ctx.State.CronEntryAdded)
	assert.Zero(t, f.jobs.replaceCalls, "crontab must not be rewritten when the entry is present")
	assert.Contains(t, f.out.output(), "[INFO] Cron job already exists")
}

// Matching is by exact substring, so an entry that drifted in spacing is
// not recognized and the canonical one is appended next to it.
func TestScheduleStepDoesNotMatchWhitespaceVariant(t *testing.T) {
	f := newFixture(t)
	f.jobs.table = "0 * * * *  /srv/tplink-deco/run_generate_hosts.sh\n"

	require.NoError(t, (&ScheduleStep{}).Provision(f.context()))

	assert.Equal(t, 1, f.jobs.replaceCalls)
	assert.Equal(t, 1, strings.Count(f.jobs.table, "0 * * * * /srv/tplink-deco/run_generate_hosts.sh\n"))
	assert.Equal(t, 2, strings.Count(f.jobs.table, "run_generate_hosts.sh"))
}

func TestScheduleStepErrors(t *testing.T) {
	t.Run("reading crontab fails", func(t *testing.T) {
		f := newFixture(t)
		f.jobs.currentErr = errors.New("crontab: exit status 1")

		err := (&ScheduleStep{}).Provision(f.context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read crontab")
	})

	t.Run("replacing crontab fails", func(t *testing.T) {
		f := newFixture(t)
		f.jobs.replaceErr = errors.New("crontab: exit status 1")

		err := (&ScheduleStep{}).Provision(f.context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add cron job")
	})
}
