package eos

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Caloric は要素ごとの定積モル比熱、定圧比熱、音速を保持する。
type Caloric struct {
	Cv    []float64 // 定積モル比熱, J/(kmol K)
	Cp    []float64 // 定圧比熱, J/(kg K)
	Sound []float64 // 音速, m/s
}

/*
離脱関数を用いて定積比熱、定圧比熱、音速を求める。

	Args:
	    fp: 臨界点物性値
	    table: 理想気体比熱の多項式係数表
	    temp: 温度, K, [n]
	    ed: 状態方程式の定数
	    af: alpha 関数
	    vol: モル体積, m3/kmol, [n]

	Returns:
	    定積モル比熱, 定圧比熱, 音速

	Notes:
	    (dp/dT)_v = R/(v - b) - d(a alpha)/dT / denom
	    (dp/dv)_T = -(R T/(v - b)^2 - a alpha (2 v + (d1 + d2) b)/denom^2)
	    denom = v^2 + (d1 + d2) b v + d1 d2 b^2
	    cv = cv_ref - T d2(a alpha)/dT2 ln((v + b d2)/(v + b d1)) / (b (d1 - d2))
	    cp = (cv - T (dp/dT)_v^2 / (dp/dv)_T) / M
	    c  = v √(-cp/cv (dp/dv)_T)
	    Trummler et al. (2022), Matheis (2018)
*/
func CvCpSound(fp FluidProperties, table *IdealGasTable, temp []float64, ed Parameter, af AlphaFunctions, vol []float64) (Caloric, error) {
	cpRef, err := CpRef(table, temp)
	if err != nil {
		return Caloric{}, err
	}

	n := len(temp)
	out := Caloric{
		Cv:    make([]float64, n),
		Cp:    make([]float64, n),
		Sound: make([]float64, n),
	}

	// a alpha とその温度微分
	aAlpha := af.AlphaVec(temp)
	floats.Scale(ed.A, aAlpha)
	dAAlpha := af.DAlphaDTempVec(temp)
	floats.Scale(ed.A, dAAlpha)
	ddAAlpha := af.D2AlphaDTemp2Vec(temp)
	floats.Scale(ed.A, ddAAlpha)

	b := ed.B
	for i, t := range temp {
		v := vol[i]

		denom := v*v + ed.D1PD2*b*v + ed.D1TD2*b*b

		dpdT := RUniv/(v-b) - dAAlpha[i]/denom
		dpdv := -(RUniv*t/((v-b)*(v-b)) - aAlpha[i]*(2*v+ed.D1PD2*b)/(denom*denom))

		cvRef := cpRef[i] - RUniv
		right := math.Log((v + b*ed.D2) / (v + b*ed.D1))
		dcv := -t * ddAAlpha[i] * right / (b * ed.D1MD2)

		cv := cvRef + dcv
		cp := (cv - t*dpdT*dpdT/dpdv) / fp.Mass

		out.Cv[i] = cv
		out.Cp[i] = cp
		out.Sound[i] = v * math.Sqrt(-cp/cv*dpdv)
	}
	return out, nil
}
