// Package recorder writes the results of a run: property tables, the fluid
// summary, the configuration echo, the performance report and figures.
package recorder

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"realtpl/eos"
)

// 出力ファイル名
const (
	ConfigEchoFile  = "config_data.out"
	PerformanceFile = "performance.out"
	dataDir         = "data"
	graphicsDir     = "graphics"
)

// Recorder writes the output files of one fluid below
// <output_dir>/<fluid>.
type Recorder struct {
	dir    string
	logger *slog.Logger
}

// NewRecorder returns a Recorder writing below dir.
func NewRecorder(dir string, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Recorder{dir: dir, logger: logger}
}

// Dir returns the output folder of the fluid.
func (r *Recorder) Dir() string { return r.dir }

// DataDir returns the folder of the CSV files.
func (r *Recorder) DataDir() string { return filepath.Join(r.dir, dataDir) }

// GraphicsDir returns the folder of the figures.
func (r *Recorder) GraphicsDir() string { return filepath.Join(r.dir, graphicsDir) }

// writeFile creates name inside the output folder and fills it with fn.
func (r *Recorder) writeFile(name string, fn func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", r.dir, err)
	}
	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := fn(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	r.logger.Debug("file written", "path", path)
	return path, nil
}

// WriteConfigEcho writes the effective configuration to config_data.out.
func (r *Recorder) WriteConfigEcho(fn func(io.Writer) error) (string, error) {
	return r.writeFile(ConfigEchoFile, fn)
}

// WriteFluidSummary writes <fluid>.out.
func (r *Recorder) WriteFluidSummary(s eos.FluidSummary) (string, error) {
	return r.writeFile(s.Name+".out", func(w io.Writer) error {
		_, err := io.WriteString(w, s.String())
		return err
	})
}

// WritePerformance writes performance.out.
func (r *Recorder) WritePerformance(p *Performance) (string, error) {
	return r.writeFile(PerformanceFile, p.Report)
}

// WriteCSV writes one CSV file per label into the data folder.
func (r *Recorder) WriteCSV(t *Table) ([]string, error) {
	paths, err := WriteCSV(r.DataDir(), t)
	if err != nil {
		return nil, err
	}
	r.logger.Info("data saved", "dir", r.DataDir(), "files", len(paths))
	return paths, nil
}

// SavePlots saves the property figures into the graphics folder.
func (r *Recorder) SavePlots(t *Table, fluid eos.FluidSummary) ([]string, error) {
	paths, err := SavePropertyPlots(r.GraphicsDir(), t, fluid)
	if err != nil {
		return nil, err
	}
	r.logger.Info("figures saved", "dir", r.GraphicsDir(), "files", len(paths))
	return paths, nil
}

// SaveDeviationPlots saves the deviation figures into the graphics folder.
func (r *Recorder) SaveDeviationPlots(t *Table) ([]string, error) {
	paths, err := SaveDeviationPlots(r.GraphicsDir(), t)
	if err != nil {
		return nil, err
	}
	r.logger.Info("deviation figures saved", "dir", r.GraphicsDir(), "files", len(paths))
	return paths, nil
}
