package config

import (
	"fmt"

	"realtpl/eos"
)

// Validate checks the consistency of the configuration. Errors wrap
// eos.ErrConfiguration.
func (c *Config) Validate() error {
	if c.FluidName == "" {
		return fmt.Errorf("%w: fluid_name is mandatory", eos.ErrConfiguration)
	}
	if _, err := c.Variants(); err != nil {
		return err
	}

	if c.TemperatureStartK > c.TemperatureEndK {
		return fmt.Errorf("%w: wrong input: temperature_start_K > temperature_end_K", eos.ErrConfiguration)
	}
	if c.PressureStartPa > c.PressureEndPa {
		return fmt.Errorf("%w: wrong input: pressure_start_Pa > pressure_end_Pa", eos.ErrConfiguration)
	}
	if !(c.TemperatureStartK > 0) || !(c.PressureStartPa > 0) {
		return fmt.Errorf("%w: temperatures and pressures must be positive", eos.ErrConfiguration)
	}
	if !(c.TemperatureStepK > 0) {
		return fmt.Errorf("%w: temperature_step_K must be positive", eos.ErrConfiguration)
	}
	if !(c.PressureStepPa > 0) {
		return fmt.Errorf("%w: pressure_step_Pa must be positive", eos.ErrConfiguration)
	}

	if c.NNasaCoeff != 7 && c.NNasaCoeff != 9 {
		return fmt.Errorf("%w: unknown NASA coefficient number: %d", eos.ErrConfiguration, c.NNasaCoeff)
	}

	if c.IsPressureRange() && (c.SavePlots || c.SaveDeviation || !c.SaveDataToCSV) {
		return fmt.Errorf("%w: wrong input: pressure array (pressure_end_Pa > pressure_start_Pa) "+
			"does not work with save plots and deviation, but requires save data to csv", eos.ErrConfiguration)
	}
	if c.SaveDeviation && !c.IncludeRefData {
		return fmt.Errorf("%w: deviation can only be evaluated with include_ref_data", eos.ErrConfiguration)
	}
	if c.IncludeRefData && c.ReferenceDataFile == "" {
		return fmt.Errorf("%w: include_ref_data requires reference_data_file", eos.ErrConfiguration)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", eos.ErrConfiguration)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}
