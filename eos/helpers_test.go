package eos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// nitrogen returns representative critical constants of nitrogen.
func nitrogen() FluidProperties {
	return NewFluidProperties("Nitrogen", 28.0134, 0.0372, 3395800, 126.192, 11.1839, 0, 0)
}

// carbonDioxide returns representative critical constants of carbon dioxide.
func carbonDioxide() FluidProperties {
	return NewFluidProperties("CarbonDioxide", 44.0098, 0.22394, 7377300, 304.1282, 10.6249, 0, 0)
}

// methanol returns a polar, associating fluid.
func methanol() FluidProperties {
	return NewFluidProperties("Methanol", 32.04216, 0.5625, 8215850, 513.38, 8.6, 2.87, 0.215175)
}

// nitrogenNasa7 is the GRI-Mech 3.0 NASA 7-coefficient table of N2.
func nitrogenNasa7(t *testing.T) *IdealGasTable {
	t.Helper()
	table, err := NewIdealGasTable("Nitrogen", []PolynomialBin{
		{TempStart: 300, TempEnd: 1000, Coeff: []float64{
			3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372}},
		{TempStart: 1000, TempEnd: 5000, Coeff: []float64{
			2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528}},
	})
	require.NoError(t, err)
	return table
}

// nitrogenNasa9 is the NASA Glenn 9-coefficient table of N2.
func nitrogenNasa9(t *testing.T) *IdealGasTable {
	t.Helper()
	table, err := NewIdealGasTable("Nitrogen", []PolynomialBin{
		{TempStart: 200, TempEnd: 1000, Coeff: []float64{
			2.210371497e+04, -3.818461820e+02, 6.082738360e+00, -8.530914410e-03,
			1.384646189e-05, -9.625793620e-09, 2.519705809e-12, 7.108460860e+02, -1.076003744e+01}},
		{TempStart: 1000, TempEnd: 6000, Coeff: []float64{
			5.877124060e+05, -2.239249073e+03, 6.066949220e+00, -6.139685500e-04,
			1.491806679e-07, -1.923105485e-11, 1.061954386e-15, 1.283210415e+04, -1.586639599e+01}},
	})
	require.NoError(t, err)
	return table
}

// carbonDioxideNasa7 is the GRI-Mech 3.0 NASA 7-coefficient table of CO2.
func carbonDioxideNasa7(t *testing.T) *IdealGasTable {
	t.Helper()
	table, err := NewIdealGasTable("CarbonDioxide", []PolynomialBin{
		{TempStart: 200, TempEnd: 1000, Coeff: []float64{
			2.35677352, 8.98459677e-3, -7.12356269e-6, 2.45919022e-9, -1.43699548e-13, -48371.9697, 9.90105222}},
		{TempStart: 1000, TempEnd: 3500, Coeff: []float64{
			3.85746029, 4.41437026e-3, -2.21481404e-6, 5.23490188e-10, -4.72084164e-14, -48759.166, 2.27163806}},
	})
	require.NoError(t, err)
	return table
}

func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + (end-start)*float64(i)/float64(n-1)
	}
	return out
}
