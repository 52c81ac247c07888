package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChungCoefficients_NonPolar(t *testing.T) {
	fp := nitrogen()
	assert.False(t, isExtended(fp))
	assert.Equal(t, 0.0, reducedDipoleMoment(fp))

	aVec, bVec := chungCoefficients(fp)
	for i := range aVec {
		assert.Equal(t, chungA0[i]+chungA1[i]*fp.Omega, aVec[i])
	}
	for i := range bVec {
		assert.Equal(t, chungB0[i]+chungB1[i]*fp.Omega, bVec[i])
	}
}

func TestChungCoefficients_Polar(t *testing.T) {
	fp := methanol()
	assert.True(t, isExtended(fp))

	muR := 131.3 * fp.DipoleMoment / math.Sqrt(fp.VC*1e3*fp.TempC)
	assert.InEpsilon(t, muR, reducedDipoleMoment(fp), 1e-15)

	aVec, bVec := chungCoefficients(fp)
	muR4 := math.Pow(muR, 4)
	for i := range aVec {
		want := chungA0[i] + chungA1[i]*fp.Omega + chungA2[i]*muR4 + chungA3[i]*fp.AssociationParameter
		assert.InDelta(t, want, aVec[i], 1e-12*math.Max(1, math.Abs(want)))
	}
	for i := range bVec {
		want := chungB0[i] + chungB1[i]*fp.Omega + chungB2[i]*muR4 + chungB3[i]*fp.AssociationParameter
		assert.InDelta(t, want, bVec[i], 1e-12*math.Max(1, math.Abs(want)))
	}
}

func TestViscCondChung_ExtendedTermsVanish(t *testing.T) {
	base := nitrogen()
	tiny := NewFluidProperties(base.Name, base.Mass, base.Omega, base.PC, base.TempC, base.RhoC, 1e-40, 0)
	assert.True(t, isExtended(tiny))

	temps := []float64{150, 300, 600}
	rho := []float64{400, 1.123, 20}
	cv := []float64{21000, 20800, 21500}

	want := ViscCondChung(base, temps, rho, cv)
	got := ViscCondChung(tiny, temps, rho, cv)
	assert.Equal(t, want, got)
}

func TestViscCondChung_Nitrogen(t *testing.T) {
	fp := nitrogen()
	// dilute gas at 300 K and 1 bar
	cv := (3.49698 - 1) * RUniv
	tr := ViscCondChung(fp, []float64{300}, []float64{1.123}, []float64{cv})

	assert.InDelta(t, 1.78e-5, tr.Visc[0], 0.05e-5)
	assert.InDelta(t, 0.0264, tr.Cond[0], 0.001)
}

// TestViscCondChung_Dense pins both fluids at a reduced density y = ρ v_c/6
// near 0.3, where the y^2 terms carry a large share of the result.
func TestViscCondChung_Dense(t *testing.T) {
	tests := []struct {
		name            string
		fp              FluidProperties
		temp, rho, cv   float64
		wantY           float64
		wantVisc, wantK float64
	}{
		{"nitrogen", nitrogen(), 120, 560, 21000,
			0.29790492210304864, 4.113799897186966e-05, 0.05813165858700802},
		{"methanol", methanol(), 700, 460, 60000,
			0.27821871815665805, 1.1804911112414553e-05, 0.8932206407788369},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := tt.rho / tt.fp.Mass * tt.fp.VC / 6
			assert.InEpsilon(t, tt.wantY, y, 1e-12)

			tr := ViscCondChung(tt.fp, []float64{tt.temp}, []float64{tt.rho}, []float64{tt.cv})
			assert.InEpsilon(t, tt.wantVisc, tr.Visc[0], 1e-6)
			assert.InEpsilon(t, tt.wantK, tr.Cond[0], 1e-6)
		})
	}
}

func TestViscCondChung_PolarDiffers(t *testing.T) {
	fp := methanol()
	nonPolar := NewFluidProperties(fp.Name, fp.Mass, fp.Omega, fp.PC, fp.TempC, fp.RhoC, 0, 0)

	temps := []float64{600}
	rho := []float64{10}
	cv := []float64{60000}

	polar := ViscCondChung(fp, temps, rho, cv)
	plain := ViscCondChung(nonPolar, temps, rho, cv)
	assert.NotEqual(t, plain.Visc[0], polar.Visc[0])
	assert.NotEqual(t, plain.Cond[0], polar.Cond[0])
}

func TestViscCondChung_ZeroDensity(t *testing.T) {
	tr := ViscCondChung(nitrogen(), []float64{300}, []float64{0}, []float64{20800})
	assert.True(t, math.IsNaN(tr.Visc[0]))
	assert.True(t, math.IsNaN(tr.Cond[0]))
}
