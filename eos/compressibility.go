package eos

import (
	"math"
)

// CubicCoefficients は Z^3 + C2 Z^2 + C1 Z + C0 = 0 の係数と無次元数 A, B を表す。
type CubicCoefficients struct {
	A, B       float64
	C2, C1, C0 float64
}

/*
三次方程式の係数を求める。

	Args:
	    ed: 状態方程式の定数
	    alpha: alpha(T) の値
	    temp: 温度, K
	    press: 圧力, Pa

	Returns:
	    三次方程式の係数
*/
func NewCubicCoefficients(ed Parameter, alpha, temp, press float64) CubicCoefficients {
	rt := RUniv * temp
	aa := ed.A * alpha * press / (rt * rt)
	bb := ed.B * press / rt

	return CubicCoefficients{
		A:  aa,
		B:  bb,
		C2: bb*(ed.D1PD2-1) - 1,
		C1: aa + bb*(ed.D1TD2*bb-ed.D1PD2*(bb+1)),
		C0: -bb * (ed.D1TD2*(bb*bb+bb) + aa),
	}
}

// Residual returns Z^3 + C2 Z^2 + C1 Z + C0.
func (c CubicCoefficients) Residual(z float64) float64 {
	return ((z+c.C2)*z+c.C1)*z + c.C0
}

/*
圧縮係数を三次状態方程式から求める。

	Args:
	    ed: 状態方程式の定数
	    af: alpha 関数
	    temp: 温度, K, [n]
	    press: 圧力, Pa

	Returns:
	    圧縮係数, -, [n]

	Notes:
	    Q = (c2^2 - 3 c1)/9, R = (2 c2^3 - 9 c2 c1 + 27 c0)/54, D = R^2 - Q^3 とし、
	    D >= 0 では実根は1つ (Cardano)、D < 0 では実根が3つ (三角関数解) となる。
	    3つの実根のうち最大値が気相、最小値が液相の解であり、中間の根は物理的意味を持たない。
	    液相の解が Z_l < B となる場合は気相の解を採用し、それ以外はギブズエネルギーの比較で決める。
	    Matheis (2018), Trummler et al. (2022)
	    要素ごとに独立に解くため、採用されなかった分岐の値が結果に混入することはない。
*/
func Compressibility(ed Parameter, af AlphaFunctions, temp []float64, press float64) []float64 {
	alpha := af.AlphaVec(temp)
	z := make([]float64, len(temp))
	for i, t := range temp {
		c := NewCubicCoefficients(ed, alpha[i], t, press)
		z[i] = solveCubic(ed, c)
	}
	return z
}

// CompressibilityAt solves the cubic EOS for a single state point.
func CompressibilityAt(ed Parameter, af AlphaFunctions, temp, press float64) float64 {
	return solveCubic(ed, NewCubicCoefficients(ed, af.Alpha(temp), temp, press))
}

func solveCubic(ed Parameter, c CubicCoefficients) float64 {
	qq := (c.C2*c.C2 - 3*c.C1) / 9
	rr := (2*c.C2*c.C2*c.C2 - 9*c.C2*c.C1 + 27*c.C0) / 54
	dd := rr*rr - qq*qq*qq

	if dd >= 0 {
		return oneRealRoot(c, qq, rr, dd)
	}

	zl, zv := threeRealRoots(c, qq, rr)
	return selectRoot(ed, c, zl, zv)
}

// oneRealRoot は D >= 0 の場合の実根を返す。
func oneRealRoot(c CubicCoefficients, qq, rr, dd float64) float64 {
	e := -math.Cbrt(math.Abs(rr) + math.Sqrt(dd))
	if rr < 0 {
		e = -e
	}
	if e == 0 {
		// R = D = 0 のとき三重根
		return -c.C2 / 3
	}
	return e + qq/e - c.C2/3
}

// threeRealRoots は D < 0 の場合の液相解（最小根）と気相解（最大根）を返す。
func threeRealRoots(c CubicCoefficients, qq, rr float64) (zl, zv float64) {
	sqrtQQ := math.Sqrt(math.Abs(qq))
	// 丸め誤差で |cos φ| が 1 をわずかに超える場合がある
	phi := math.Acos(math.Max(-1, math.Min(1, rr/(sqrtQQ*qq))))

	x1 := -2*sqrtQQ*math.Cos(phi/3) - c.C2/3
	x2 := -2*sqrtQQ*math.Cos((phi+2*math.Pi)/3) - c.C2/3
	x3 := -2*sqrtQQ*math.Cos((phi-2*math.Pi)/3) - c.C2/3

	zl = math.Min(x1, math.Min(x2, x3))
	zv = math.Max(x1, math.Max(x2, x3))
	return zl, zv
}

/*
液相解と気相解から熱力学的に妥当な解を選ぶ。

	Notes:
	    Z_l < B の場合、体積が排除体積より小さくなるため気相解を採用する。
	    それ以外は
	        dG = ln((Z_l - B)/(Z_v - B))
	             + A/(B (d1 - d2)) ln((Z_l + d1 B)/(Z_l + d2 B) (Z_v + d2 B)/(Z_v + d1 B))
	             - (Z_l - Z_v)
	    が dG >= 0 なら液相解、dG < 0 なら気相解を採用する。
	    Matheis (2018) Eq. 2.58
*/
func selectRoot(ed Parameter, c CubicCoefficients, zl, zv float64) float64 {
	bb := c.B
	if zl < bb {
		return zv
	}

	dg := GibbsDifference(ed, c, zl, zv)
	if dg >= 0 {
		return zl
	}
	return zv
}

// GibbsDifference returns the dimensionless Gibbs energy difference between
// the vapor and the liquid root. Arguments of logarithms are floored at 1e-16.
func GibbsDifference(ed Parameter, c CubicCoefficients, zl, zv float64) float64 {
	aa, bb := c.A, c.B

	zlMinusB := math.Max(zl-bb, eps)
	zvMinusB := math.Max(zv-bb, eps)
	ddL1 := math.Max(zl+ed.D1*bb, eps)
	ddL2 := math.Max(zl+ed.D2*bb, eps)
	ddV1 := math.Max(zv+ed.D1*bb, eps)
	ddV2 := math.Max(zv+ed.D2*bb, eps)

	return math.Log(zlMinusB/zvMinusB) +
		aa/(bb*ed.D1MD2)*math.Log(ddL1/ddL2*ddV2/ddV1) -
		(zl - zv)
}
