package eos

import (
	"fmt"
	"math"
)

// AlphaFunctions は引力パラメータの温度補正関数 alpha(T) とその温度微分を表す。
// 状態方程式の種類と、偏心因子などから求めた相関係数のみを保持する。
type AlphaFunctions struct {
	Variant Variant
	C       float64 // 相関係数 c_alpha
	TempC   float64 // 臨界温度, K
}

// RKPR の alpha 相関式の定数
const (
	rkprA1 = 66.125
	rkprA0 = -23.359
	rkprB1 = -40.594
	rkprB0 = 16.855
	rkprC1 = 5.27345
	rkprC0 = -0.25826
)

/*
状態方程式の種類と臨界点物性値から alpha 関数を求める。

	Args:
	    variant: 状態方程式の種類
	    fp: 臨界点物性値

	Returns:
	    alpha 関数

	Notes:
	    SRK, PR: alpha = (1 + c (1 - √(T/T_c)))^2
	    RKPR:    alpha = (3 / (2 + T/T_c))^c
*/
func NewAlphaFunctions(variant Variant, fp FluidProperties) (AlphaFunctions, error) {
	omega := fp.Omega

	var c float64
	switch variant {
	case SRK:
		c = 0.48508 + 1.55171*omega - 0.15613*omega*omega

	case PR:
		c = 0.37464 + 1.54226*omega - 0.26992*omega*omega

	case RKPR:
		zc := rkprCZ * fp.ZC
		c = (zc*rkprA1+rkprA0)*omega*omega +
			(zc*rkprB1+rkprB0)*omega +
			(zc*rkprC1 + rkprC0)

	default:
		return AlphaFunctions{}, fmt.Errorf("%w: unknown EOS: %v", ErrConfiguration, variant)
	}

	return AlphaFunctions{Variant: variant, C: c, TempC: fp.TempC}, nil
}

// Alpha returns alpha(T).
func (af AlphaFunctions) Alpha(temp float64) float64 {
	tc := af.TempC
	c := af.C
	if af.Variant == RKPR {
		return math.Pow(3/(2+temp/tc), c)
	}
	m := 1 + c*(1-math.Sqrt(temp/tc))
	return m * m
}

// DAlphaDTemp returns dalpha/dT, 1/K.
func (af AlphaFunctions) DAlphaDTemp(temp float64) float64 {
	tc := af.TempC
	c := af.C
	if af.Variant == RKPR {
		return -math.Pow(3, c) * c / (tc * math.Pow(2+temp/tc, c+1))
	}
	m := 1 + c*(1-math.Sqrt(temp/tc))
	return m * (-c / math.Sqrt(tc*temp))
}

// D2AlphaDTemp2 returns d2alpha/dT2, 1/K2.
func (af AlphaFunctions) D2AlphaDTemp2(temp float64) float64 {
	tc := af.TempC
	c := af.C
	if af.Variant == RKPR {
		return math.Pow(3, c) * c * (c + 1) / (tc * tc * math.Pow(2+temp/tc, c+2))
	}
	m := 1 + c*(1-math.Sqrt(temp/tc))
	return m*c/(2*math.Sqrt(temp*temp*temp*tc)) + c*c/(2*tc*temp)
}

// AlphaVec evaluates Alpha elementwise.
func (af AlphaFunctions) AlphaVec(temp []float64) []float64 {
	out := make([]float64, len(temp))
	for i, t := range temp {
		out[i] = af.Alpha(t)
	}
	return out
}

// DAlphaDTempVec evaluates DAlphaDTemp elementwise.
func (af AlphaFunctions) DAlphaDTempVec(temp []float64) []float64 {
	out := make([]float64, len(temp))
	for i, t := range temp {
		out[i] = af.DAlphaDTemp(t)
	}
	return out
}

// D2AlphaDTemp2Vec evaluates D2AlphaDTemp2 elementwise.
func (af AlphaFunctions) D2AlphaDTemp2Vec(temp []float64) []float64 {
	out := make([]float64, len(temp))
	for i, t := range temp {
		out[i] = af.D2AlphaDTemp2(t)
	}
	return out
}
