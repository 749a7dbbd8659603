package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "stats",
			args: []string{"stats", "--data", "testdata/vehicles.yaml"},
		},
		{
			name: "stats_skip_invalid",
			args: []string{"stats", "--data", "testdata/vehicles.yaml", "--data", "testdata/invalid.yaml", "--skip-invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestErrorGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "error_not_found",
			args: []string{"query", "Honda", "--data", "testdata/missing.yaml"},
		},
		{
			name: "error_arity",
			args: []string{"stats", "--data", "testdata/arity.yaml", "--format", "json"},
		},
		{
			name: "error_rejected",
			args: []string{"stats", "--data", "testdata/invalid.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			newGoldie(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestStats_NoData(t *testing.T) {
	out, _, err := execute(t, "stats")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestStats_VerboseLogsPerformance(t *testing.T) {
	out, errOut, err := execute(t, "stats", "--data", "testdata/vehicles.yaml", "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "rows: 45")
	assert.Contains(t, errOut, `msg="Operation completed"`)
	assert.Contains(t, errOut, "operation=load")
	assert.Contains(t, errOut, `msg="Performance metrics"`)
	assert.Contains(t, errOut, "operation=stats")
	assert.Contains(t, errOut, "metric_rows=45")
	assert.Contains(t, errOut, "metric_entries=9")
	assert.Contains(t, errOut, "component=wildq")
}

func TestStats_QuietWithoutVerbose(t *testing.T) {
	_, errOut, err := execute(t, "stats", "--data", "testdata/vehicles.yaml", "--log-level", "debug")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}
