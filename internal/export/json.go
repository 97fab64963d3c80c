package export

import (
	"encoding/json"

	"github.com/sftfjugg/hyperfine/internal/benchmark"
	"github.com/sftfjugg/hyperfine/internal/units"
)

// JSONExporter writes the full result set, raw samples included,
// wrapped in a {"results": [...]} envelope.
type JSONExporter struct{}

type jsonSummary struct {
	Results []*benchmark.Result `json:"results"`
}

func (JSONExporter) Serialize(results []*benchmark.Result, _ *units.Unit) ([]byte, error) {
	data, err := json.MarshalIndent(jsonSummary{Results: results}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
