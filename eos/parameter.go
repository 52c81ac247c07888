package eos

import (
	"fmt"
	"math"
)

// Parameter は一般化三次状態方程式の定数を保持する。
// NewParameter で全ての派生値を計算した後は変更しない。
type Parameter struct {
	Variant Variant
	D1      float64 // 形状パラメータ d1
	D2      float64 // (1 - d1)/(1 + d1)
	D1PD2   float64 // d1 + d2
	D1TD2   float64 // d1 d2
	D1MD2   float64 // d1 - d2
	A       float64 // 引力パラメータ, Pa m6/kmol2
	B       float64 // 排除体積, m3/kmol
}

func newParameter(variant Variant, d1, a, b float64) Parameter {
	d2 := (1 - d1) / (1 + d1)
	return Parameter{
		Variant: variant,
		D1:      d1,
		D2:      d2,
		D1PD2:   d1 + d2,
		D1TD2:   d1 * d2,
		D1MD2:   d1 - d2,
		A:       a,
		B:       b,
	}
}

// RKPR の d1 相関式の定数
const (
	rkprCZ = 1.168
	rkprD1 = 0.428363
	rkprD2 = 18.496215
	rkprD3 = 0.338426
	rkprD4 = 0.660000
	rkprD5 = 789.723105
	rkprD6 = 2.512392
)

/*
状態方程式の種類と臨界点物性値から状態方程式の定数を求める。

	Args:
	    variant: 状態方程式の種類
	    fp: 臨界点物性値

	Returns:
	    状態方程式の定数

	Notes:
	    a = coeff_a R^2 T_c^2 / p_c, b = coeff_b R T_c / p_c
	    Kim, Choi & Kim (2012), Combustion and Flame 159(3), 1351-1365.
*/
func NewParameter(variant Variant, fp FluidProperties) (Parameter, error) {
	var d1, aCoeff, bCoeff float64

	switch variant {
	case SRK:
		d1 = 1
		aCoeff = 0.42747
		bCoeff = 0.08664

	case PR:
		d1 = 1 + math.Sqrt2
		aCoeff = 0.45724
		bCoeff = 0.07780

	case RKPR:
		x := rkprD3 - rkprCZ*fp.ZC
		d1 = rkprD1 + rkprD2*math.Pow(x, rkprD4) + rkprD5*math.Pow(x, rkprD6)

		d := (1 + d1*d1) / (1 + d1)
		y := 1 + math.Cbrt(2*(1+d1)) + math.Cbrt(4/(1+d1))

		aCoeff = (3*y*y + 3*y*d + d*d + d - 1) / math.Pow(3*y+d-1, 2)
		bCoeff = 1 / (3*y + d - 1)

	default:
		return Parameter{}, fmt.Errorf("%w: unknown EOS: %v", ErrConfiguration, variant)
	}

	return newParameter(
		variant,
		d1,
		aCoeff*RUniv*RUniv*fp.TempC*fp.TempC/fp.PC,
		bCoeff*RUniv*fp.TempC/fp.PC,
	), nil
}
