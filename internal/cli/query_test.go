package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestQueryGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "query_by_make",
			args: []string{"query", "Honda", "--data", "testdata/vehicles.yaml"},
		},
		{
			name: "query_json",
			args: []string{"query", "-", "Civic", "Blue", "--data", "testdata/vehicles.yaml", "--format", "json"},
		},
		{
			name: "query_multiple_files",
			args: []string{"query", "*", "", "White", "-d", "testdata/vehicles.yaml", "-d", "testdata/extra.yaml"},
		},
		{
			name: "query_trimmed_keys",
			args: []string{"query", " Honda", "Civic ", "--data", "testdata/vehicles.yaml", "--data", "testdata/extra.yaml"},
		},
		{
			name: "query_no_match",
			args: []string{"query", "Ferrari", "--data", "testdata/vehicles.yaml"},
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

func TestQuery_AllWildcards(t *testing.T) {
	out, _, err := execute(t, "query", "--data", "testdata/vehicles.yaml", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   QueryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 9, resp.Data.Count)
	assert.Equal(t, []string{"123", "456", "789", "098", "468", "654", "246", "135", "579"}, resp.Data.Values)
}

func TestQuery_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "query", "a", "b", "c", "d", "--data", "testdata/vehicles.yaml")
	require.Error(t, err)
}

func TestQuery_Verbose(t *testing.T) {
	out, errOut, err := execute(t, "query", "Nissan", "--data", "testdata/vehicles.yaml", "--format", "json", "-v")
	require.NoError(t, err)

	assert.Contains(t, errOut, "Loaded 9 entries from 1 file(s), 0 rejected")
	assert.Contains(t, errOut, "Index created")
	assert.Contains(t, errOut, "component=index")
	assert.Contains(t, out, `"values":["135","579"]`)
}

func TestQuery_NormalizeUnicode(t *testing.T) {
	out, _, err := execute(t, "query", "cafe\u0301", "--data", "testdata/unicode.yaml", "--nfc", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"values":["1","2"]`)

	out, _, err = execute(t, "query", "cafe\u0301", "--data", "testdata/unicode.yaml", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"values":["2"]`)
}

func TestQueryArgs(t *testing.T) {
	assert.Equal(t, [3]string{"", "", ""}, queryArgs(nil))
	assert.Equal(t, [3]string{"Honda", "", ""}, queryArgs([]string{"Honda"}))
	assert.Equal(t, [3]string{"", "Civic", ""}, queryArgs([]string{"-", "Civic", " * "}))
}

func TestQuery_LogLevelFiltersDiagnostics(t *testing.T) {
	_, errOut, err := execute(t, "query", "Honda", "--data", "testdata/vehicles.yaml", "-v", "--log-level", "warn")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "Index created")
	assert.NotContains(t, errOut, "Operation completed")

	_, errOut, err = execute(t, "query", "Honda", "--data", "testdata/vehicles.yaml", "-v", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Put accepted")
}
