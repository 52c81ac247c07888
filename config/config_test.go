package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtpl/eos"
)

const minimalConfig = `
fluid_name: Nitrogen
temperature_start_K: 100
temperature_end_K: 110
pressure_Pa: 100000
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig), nil)
	require.NoError(t, err)

	assert.Equal(t, "Nitrogen", cfg.FluidName)
	assert.Equal(t, DefaultEOSList, cfg.EOSList)
	assert.False(t, cfg.IncludeRefData)
	assert.Equal(t, DefaultTemperatureStep, cfg.TemperatureStepK)
	assert.Equal(t, DefaultPressureStep, cfg.PressureStepPa)
	assert.Equal(t, DefaultNasaCoeff, cfg.NNasaCoeff)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.True(t, cfg.SaveDataToCSV)
	assert.False(t, cfg.SavePlots)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// 圧力の補完
	assert.Equal(t, 1e5, cfg.PressureStartPa)
	assert.Equal(t, 1e5, cfg.PressureEndPa)
	assert.False(t, cfg.IsPressureRange())

	variants, err := cfg.Variants()
	require.NoError(t, err)
	assert.Equal(t, []eos.Variant{eos.SRK, eos.PR, eos.RKPR}, variants)

	grid, err := cfg.Grid()
	require.NoError(t, err)
	assert.Len(t, grid.Temps, 11)
	assert.Equal(t, 100.0, grid.Temps[0])
	assert.Equal(t, 110.0, grid.Temps[10])
	assert.Equal(t, []float64{1e5}, grid.Pressures)

	assert.Equal(t, filepath.Join("results", "Nitrogen"), cfg.FluidDir())
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_PressureStartOnly(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
fluid_name: Nitrogen
temperature_start_K: 100
temperature_end_K: 110
pressure_start_Pa: 100000
pressure_end_Pa: 300000
`), nil)
	require.NoError(t, err)

	assert.Equal(t, 1e5, cfg.PressurePa)
	assert.True(t, cfg.IsPressureRange())

	grid, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, []float64{1e5, 2e5, 3e5}, grid.Pressures)
	assert.Equal(t, 33, grid.Size())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing fluid", "temperature_start_K: 100\ntemperature_end_K: 110\npressure_Pa: 100000\n"},
		{"missing temperature", "fluid_name: Nitrogen\ntemperature_end_K: 110\npressure_Pa: 100000\n"},
		{"missing pressure", "fluid_name: Nitrogen\ntemperature_start_K: 100\ntemperature_end_K: 110\n"},
		{"temperature order", "fluid_name: Nitrogen\ntemperature_start_K: 100\ntemperature_end_K: 90\npressure_Pa: 100000\n"},
		{"pressure order", minimalConfig + "pressure_start_Pa: 200000\npressure_end_Pa: 100000\n"},
		{"pressure range with plots", minimalConfig + "pressure_end_Pa: 300000\nsave_plots: true\n"},
		{"pressure range without csv", minimalConfig + "pressure_end_Pa: 300000\nsave_data_to_csv: false\n"},
		{"deviation without reference", minimalConfig + "save_deviation: true\n"},
		{"reference without file", minimalConfig + "include_ref_data: true\n"},
		{"nasa coefficients", minimalConfig + "n_nasa_coeff: 8\n"},
		{"unknown eos", minimalConfig + "eos_list: [SRK, VDW]\n"},
		{"empty eos list", minimalConfig + "eos_list: []\n"},
		{"zero step", minimalConfig + "temperature_step_K: -1\n"},
		{"log level", minimalConfig + "log_level: loud\n"},
		{"negative workers", minimalConfig + "workers: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), nil)
			assert.ErrorIs(t, err, eos.ErrConfiguration)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorIs(t, err, eos.ErrConfiguration)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("REALTPL_FLUID_NAME", "CarbonDioxide")
	t.Setenv("REALTPL_TEMPERATURE_END_K", "120")
	t.Setenv("REALTPL_EOS_LIST", "PR,RKPR")

	cfg, err := Load(writeConfig(t, minimalConfig), nil)
	require.NoError(t, err)

	assert.Equal(t, "CarbonDioxide", cfg.FluidName)
	assert.Equal(t, 120.0, cfg.TemperatureEndK)

	variants, err := cfg.Variants()
	require.NoError(t, err)
	assert.Equal(t, []eos.Variant{eos.PR, eos.RKPR}, variants)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("REALTPL_FLUID_NAME", "CarbonDioxide")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(ConfigFileFlag, DefaultConfigFile, "")
	flags.String("fluid-name", "", "")
	flags.Float64("temperature-end-K", 0, "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--fluid-name=Methanol", "--temperature-end-K=130"}))

	cfg, err := Load(writeConfig(t, minimalConfig), flags)
	require.NoError(t, err)

	assert.Equal(t, "Methanol", cfg.FluidName)
	assert.Equal(t, 130.0, cfg.TemperatureEndK)
	// 指定されていないフラグは既定値を上書きしない
	assert.Equal(t, 0, cfg.Workers)
}

func TestWriteEcho(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteEcho(&buf, "run-1"))

	out := buf.String()
	assert.Contains(t, out, "run_id: run-1\n")
	assert.Contains(t, out, "fluid_name: Nitrogen\n")
	assert.Contains(t, out, "pressure_end_Pa: 100000\n")
	assert.Contains(t, out, "eos_list: [SRK PR RKPR]\n")
	assert.NotContains(t, out, "reference_data_file")
}

func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, "temperature_start_K", canonicalKey("TEMPERATURE_START_K"))
	assert.Equal(t, "temperature_start_K", canonicalKey("temperature-start-K"))
	assert.Equal(t, "fluid_name", canonicalKey("fluid-name"))
	assert.Equal(t, "unknown_key", canonicalKey("unknown-key"))
}
