package export

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/sftfjugg/hyperfine/internal/benchmark"
	"github.com/sftfjugg/hyperfine/internal/units"
)

// CSVExporter writes one row per result with times in seconds. Any
// parameters appear as additional parameter_<name> columns, sorted by
// name so the header is stable.
type CSVExporter struct{}

func (CSVExporter) Serialize(results []*benchmark.Result, _ *units.Unit) ([]byte, error) {
	paramNames := collectParameterNames(results)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"command", "mean", "stddev", "median", "user", "system", "min", "max"}
	for _, name := range paramNames {
		header = append(header, "parameter_"+name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range results {
		stddev := ""
		if r.Stddev != nil {
			stddev = formatSeconds(*r.Stddev)
		}
		row := []string{
			r.Command,
			formatSeconds(r.Mean),
			stddev,
			formatSeconds(r.Median),
			formatSeconds(r.User),
			formatSeconds(r.System),
			formatSeconds(r.Min),
			formatSeconds(r.Max),
		}
		for _, name := range paramNames {
			row = append(row, r.Parameters[name])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatSeconds(v units.Second) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func collectParameterNames(results []*benchmark.Result) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, r := range results {
		for name := range r.Parameters {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
