package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sftfjugg/hyperfine/internal/benchmark"
	"github.com/sftfjugg/hyperfine/internal/units"
)

// MarkdownExporter writes the results as a table. Unless a unit is
// forced, the first result's mean determines the unit for all rows so
// the column stays comparable.
type MarkdownExporter struct{}

func (MarkdownExporter) Serialize(results []*benchmark.Result, forced *units.Unit) ([]byte, error) {
	unit := units.UnitSecond
	if forced != nil {
		unit = *forced
	} else if len(results) > 0 {
		unit = units.BestFor(results[0].Mean)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "| Command | Mean [%s] | Min…Max [%s] |\n", unit.ShortName(), unit.ShortName())
	buf.WriteString("|:---|---:|---:|\n")

	for _, r := range results {
		stddev := ""
		if r.Stddev != nil {
			stddev = " ± " + unit.Format(*r.Stddev)
		}
		fmt.Fprintf(&buf, "| `%s` | %s%s | %s…%s |\n",
			strings.ReplaceAll(r.Command, "|", "\\|"),
			unit.Format(r.Mean), stddev,
			unit.Format(r.Min), unit.Format(r.Max))
	}
	return buf.Bytes(), nil
}
