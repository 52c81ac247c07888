package eos

import (
	"fmt"
	"strings"
)

// FluidProperties は純物質の臨界点物性値を保持する。
// NewFluidProperties で生成した後は変更しない。
type FluidProperties struct {
	Name                 string  // 物質名
	Mass                 float64 // モル質量, kg/kmol
	Omega                float64 // 偏心因子, -
	PC                   float64 // 臨界圧力, Pa
	TempC                float64 // 臨界温度, K
	RhoC                 float64 // 臨界モル密度, kmol/m3
	VC                   float64 // 臨界モル体積, m3/kmol
	ZC                   float64 // 臨界圧縮係数, -
	DipoleMoment         float64 // 双極子モーメント, D
	AssociationParameter float64 // 会合パラメータ, -
}

/*
臨界点物性値から FluidProperties を作成する。

	Args:
	    name: 物質名
	    mass: モル質量, kg/kmol
	    omega: 偏心因子, -
	    pC: 臨界圧力, Pa
	    tempC: 臨界温度, K
	    rhoC: 臨界モル密度, kmol/m3
	    dipoleMoment: 双極子モーメント, D
	    associationParameter: 会合パラメータ, -

	Notes:
	    v_c = 1/rho_c, Z_c = p_c v_c / (R T_c)
*/
func NewFluidProperties(name string, mass, omega, pC, tempC, rhoC, dipoleMoment, associationParameter float64) FluidProperties {
	vC := 1 / rhoC
	return FluidProperties{
		Name:                 name,
		Mass:                 mass,
		Omega:                omega,
		PC:                   pC,
		TempC:                tempC,
		RhoC:                 rhoC,
		VC:                   vC,
		ZC:                   pC * vC / (RUniv * tempC),
		DipoleMoment:         dipoleMoment,
		AssociationParameter: associationParameter,
	}
}

// Summary returns the persisted view of the fluid: its name and the seven
// critical and derived scalars.
func (fp FluidProperties) Summary() FluidSummary {
	return FluidSummary{
		Name:  fp.Name,
		Mass:  fp.Mass,
		Omega: fp.Omega,
		PC:    fp.PC,
		TempC: fp.TempC,
		RhoC:  fp.RhoC,
		VC:    fp.VC,
		ZC:    fp.ZC,
	}
}

// FluidSummary is the value object written next to the property tables.
type FluidSummary struct {
	Name  string
	Mass  float64
	Omega float64
	PC    float64
	TempC float64
	RhoC  float64
	VC    float64
	ZC    float64
}

func (s FluidSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Name)
	fmt.Fprintf(&b, "mass: %v kg/kmol\n", s.Mass)
	fmt.Fprintf(&b, "acentric factor: %v\n", s.Omega)
	fmt.Fprintf(&b, "critical pressure: %v Pa\n", s.PC)
	fmt.Fprintf(&b, "critical temperature: %v K\n", s.TempC)
	fmt.Fprintf(&b, "critical density: %v kmol/m3\n", s.RhoC)
	fmt.Fprintf(&b, "critical volume: %v m3/kmol\n", s.VC)
	fmt.Fprintf(&b, "critical compressibility: %v\n", s.ZC)
	return b.String()
}
