// Package export serializes benchmark results to the supported
// interchange formats.
package export

import (
	"fmt"
	"os"

	"github.com/sftfjugg/hyperfine/internal/benchmark"
	"github.com/sftfjugg/hyperfine/internal/units"
)

// Exporter serializes an ordered sequence of benchmark results. The
// unit is a display hint only; nil lets the format pick its own.
type Exporter interface {
	Serialize(results []*benchmark.Result, unit *units.Unit) ([]byte, error)
}

type target struct {
	exporter Exporter
	dest     string
}

// Manager pairs exporters with their destinations and writes all of
// them once the benchmark run is complete.
type Manager struct {
	targets []target
}

// Add registers an exporter writing to dest; "-" means stdout.
func (m *Manager) Add(e Exporter, dest string) {
	m.targets = append(m.targets, target{exporter: e, dest: dest})
}

// WriteResults serializes the results through every registered
// exporter.
func (m *Manager) WriteResults(results []*benchmark.Result, unit *units.Unit) error {
	for _, t := range m.targets {
		data, err := t.exporter.Serialize(results, unit)
		if err != nil {
			return fmt.Errorf("failed to serialize results: %w", err)
		}
		if t.dest == "-" {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(t.dest, data, 0o644); err != nil {
			return fmt.Errorf("failed to export results to %q: %w", t.dest, err)
		}
	}
	return nil
}
