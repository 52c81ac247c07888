// Package config loads and validates the run configuration.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"realtpl/eos"
)

// Defaults
const (
	DefaultConfigFile      = "config.yaml"
	DefaultOutputDir       = "results"
	DefaultTemperatureStep = 1.0 // K
	DefaultPressureStep    = 1e5 // Pa
	DefaultNasaCoeff       = 7
	DefaultLogLevel        = "info"
	EnvPrefix              = "REALTPL_"
)

// DefaultEOSList is the EOS list used when eos_list is not configured.
var DefaultEOSList = []string{"SRK", "PR", "RKPR"}

// Config holds the settings of one run.
type Config struct {
	FluidName         string   `koanf:"fluid_name"`
	EOSList           []string `koanf:"eos_list"`
	IncludeRefData    bool     `koanf:"include_ref_data"`
	ReferenceDataFile string   `koanf:"reference_data_file"`

	TemperatureStartK float64 `koanf:"temperature_start_K"`
	TemperatureEndK   float64 `koanf:"temperature_end_K"`
	TemperatureStepK  float64 `koanf:"temperature_step_K"`
	PressurePa        float64 `koanf:"pressure_Pa"`
	PressureStartPa   float64 `koanf:"pressure_start_Pa"`
	PressureEndPa     float64 `koanf:"pressure_end_Pa"`
	PressureStepPa    float64 `koanf:"pressure_step_Pa"`

	NNasaCoeff    int    `koanf:"n_nasa_coeff"`
	NasaDataFile  string `koanf:"nasa_data_file"`
	FluidDataFile string `koanf:"fluid_data_file"`

	OutputDir           string `koanf:"output_dir"`
	SaveDataToCSV       bool   `koanf:"save_data_to_csv"`
	SavePlots           bool   `koanf:"save_plots"`
	SaveDeviation       bool   `koanf:"save_deviation"`
	PerformanceTracking bool   `koanf:"performance_tracking"`
	Workers             int    `koanf:"workers"`
	LogLevel            string `koanf:"log_level"`

	// 読み込み後の設定値（config_data.out に書き出す）
	effective map[string]any
}

// defaults returns the built-in configuration values.
func defaults() map[string]any {
	return map[string]any{
		"eos_list":             DefaultEOSList,
		"include_ref_data":     false,
		"temperature_step_K":   DefaultTemperatureStep,
		"pressure_step_Pa":     DefaultPressureStep,
		"n_nasa_coeff":         DefaultNasaCoeff,
		"output_dir":           DefaultOutputDir,
		"save_data_to_csv":     true,
		"save_plots":           false,
		"save_deviation":       false,
		"performance_tracking": false,
		"workers":              0,
		"log_level":            DefaultLogLevel,
	}
}

// keys lists every configuration key in echo order.
var keys = []string{
	"fluid_name",
	"eos_list",
	"include_ref_data",
	"reference_data_file",
	"temperature_start_K",
	"temperature_end_K",
	"temperature_step_K",
	"pressure_Pa",
	"pressure_start_Pa",
	"pressure_end_Pa",
	"pressure_step_Pa",
	"n_nasa_coeff",
	"nasa_data_file",
	"fluid_data_file",
	"output_dir",
	"save_data_to_csv",
	"save_plots",
	"save_deviation",
	"performance_tracking",
	"workers",
	"log_level",
}

// canonicalKey maps a case-insensitive or kebab-case spelling of a key to
// its canonical name. Unknown keys are returned unchanged.
func canonicalKey(s string) string {
	s = strings.ReplaceAll(s, "-", "_")
	for _, k := range keys {
		if strings.EqualFold(k, s) {
			return k
		}
	}
	return s
}

// Variants parses eos_list. Entries may be comma separated.
func (c *Config) Variants() ([]eos.Variant, error) {
	var out []eos.Variant
	for _, entry := range c.EOSList {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			v, err := eos.ParseVariant(name)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: eos_list is empty", eos.ErrConfiguration)
	}
	return out, nil
}

/*
評価する温度・圧力の格子を作成する。

	Returns:
	    温度 [T_start, T_end] と圧力 [p_start, p_end] の格子

	Notes:
	    numpy.arange(start, end + step, step) と同じく、浮動小数点の丸めにより
	    end を超える点が含まれる場合がある。
*/
func (c *Config) Grid() (eos.Grid, error) {
	temps, err := eos.Arange(c.TemperatureStartK, c.TemperatureEndK+c.TemperatureStepK, c.TemperatureStepK)
	if err != nil {
		return eos.Grid{}, fmt.Errorf("temperature_step_K: %w", err)
	}
	press, err := eos.Arange(c.PressureStartPa, c.PressureEndPa+c.PressureStepPa, c.PressureStepPa)
	if err != nil {
		return eos.Grid{}, fmt.Errorf("pressure_step_Pa: %w", err)
	}
	return eos.Grid{Temps: temps, Pressures: press}, nil
}

// IsPressureRange reports whether more than one pressure is requested.
func (c *Config) IsPressureRange() bool {
	return c.PressureEndPa > c.PressureStartPa
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", eos.ErrConfiguration, c.LogLevel)
	}
	return l, nil
}

// FluidDir returns <output_dir>/<fluid_name>.
func (c *Config) FluidDir() string {
	return filepath.Join(c.OutputDir, c.FluidName)
}
