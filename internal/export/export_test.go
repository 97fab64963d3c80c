package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sftfjugg/hyperfine/internal/benchmark"
	"github.com/sftfjugg/hyperfine/internal/units"
)

func sampleResults() []*benchmark.Result {
	stddevFast := 0.0016
	stddevSlow := 0.0020
	zero := 0
	return []*benchmark.Result{
		{
			Command:   "sleep 0.1",
			Mean:      0.1057,
			Stddev:    &stddevFast,
			Median:    0.1057,
			User:      0.0009,
			System:    0.0011,
			Min:       0.1023,
			Max:       0.1080,
			Times:     []units.Second{0.1, 0.1, 0.1},
			ExitCodes: []*int{&zero, &zero, &zero},
		},
		{
			Command:   "sleep 2",
			Mean:      2.0050,
			Stddev:    &stddevSlow,
			Median:    2.0050,
			User:      0.0009,
			System:    0.0012,
			Min:       2.0020,
			Max:       2.0080,
			Times:     []units.Second{2.0, 2.0, 2.0},
			ExitCodes: []*int{&zero, &zero, &zero},
		},
	}
}

// The first entry's unit (ms here) applies to every row.
func TestMarkdownFormatMilliseconds(t *testing.T) {
	data, err := MarkdownExporter{}.Serialize(sampleResults(), nil)
	require.NoError(t, err)

	expected := "| Command | Mean [ms] | Min…Max [ms] |\n" +
		"|:---|---:|---:|\n" +
		"| `sleep 0.1` | 105.7 ± 1.6 | 102.3…108.0 |\n" +
		"| `sleep 2` | 2005.0 ± 2.0 | 2002.0…2008.0 |\n"
	assert.Equal(t, expected, string(data))
}

func TestMarkdownFormatSeconds(t *testing.T) {
	results := sampleResults()
	results[0], results[1] = results[1], results[0]

	data, err := MarkdownExporter{}.Serialize(results, nil)
	require.NoError(t, err)

	expected := "| Command | Mean [s] | Min…Max [s] |\n" +
		"|:---|---:|---:|\n" +
		"| `sleep 2` | 2.005 ± 0.002 | 2.002…2.008 |\n" +
		"| `sleep 0.1` | 0.106 ± 0.002 | 0.102…0.108 |\n"
	assert.Equal(t, expected, string(data))
}

func TestMarkdownEscapesPipes(t *testing.T) {
	results := sampleResults()[:1]
	results[0].Command = "grep foo | wc -l"

	data, err := MarkdownExporter{}.Serialize(results, nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), "`grep foo \\| wc -l`")
}

func TestCSVRoundTrip(t *testing.T) {
	results := sampleResults()
	results[1].Parameters = map[string]string{"delay": "2"}

	data, err := CSVExporter{}.Serialize(results, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t,
		[]string{"command", "mean", "stddev", "median", "user", "system", "min", "max", "parameter_delay"},
		records[0])

	assert.Equal(t, "sleep 0.1", records[1][0])
	mean, err := strconv.ParseFloat(records[1][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.1057, mean, 1e-12)

	min, err := strconv.ParseFloat(records[2][6], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.0020, min, 1e-12)
	max, err := strconv.ParseFloat(records[2][7], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.0080, max, 1e-12)

	assert.Equal(t, "2", records[2][8])
	assert.Equal(t, "", records[1][8], "results without the parameter leave the column empty")
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := JSONExporter{}.Serialize(sampleResults(), nil)
	require.NoError(t, err)

	var decoded struct {
		Results []*benchmark.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 2)

	assert.Equal(t, "sleep 0.1", decoded.Results[0].Command)
	assert.InDelta(t, 0.1057, decoded.Results[0].Mean, 1e-12)
	assert.InDelta(t, 2.0020, decoded.Results[1].Min, 1e-12)
	assert.InDelta(t, 2.0080, decoded.Results[1].Max, 1e-12)
	require.NotNil(t, decoded.Results[0].Stddev)
	assert.InDelta(t, 0.0016, *decoded.Results[0].Stddev, 1e-12)
	assert.Len(t, decoded.Results[0].Times, 3)
}

func TestJSONOmitsTimesWhenDropped(t *testing.T) {
	results := sampleResults()
	for _, r := range results {
		r.Times = nil
	}

	data, err := JSONExporter{}.Serialize(results, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\"times\"")
}

func TestManagerWritesToFile(t *testing.T) {
	dest := t.TempDir() + "/results.json"

	var m Manager
	m.Add(JSONExporter{}, dest)
	require.NoError(t, m.WriteResults(sampleResults(), nil))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"results\"")
}
