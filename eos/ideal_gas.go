package eos

import (
	"fmt"
	"sort"
)

// PolynomialBin は温度区間 [TempStart, TempEnd) の多項式係数を表す。
type PolynomialBin struct {
	TempStart float64   // 区間の下限温度, K
	TempEnd   float64   // 区間の上限温度, K
	Coeff     []float64 // 多項式係数
}

// IdealGasTable は温度区間ごとに分割された理想気体比熱の多項式係数表である。
// 生成後は変更しない。
type IdealGasTable struct {
	name      string
	binEdges  []float64   // 区間境界, K, [n_bin+1]
	nCoeff    int         // 係数の数
	coeff     [][]float64 // 係数, [n_coeff][n_bin]
	binCoeffs [][]float64 // 区間ごとの係数, [n_bin][n_coeff]
}

/*
多項式係数表を作成する。

	Args:
	    name: 物質名
	    bins: 温度区間ごとの係数（順不同）

	Returns:
	    係数表

	Notes:
	    区間は下限温度で整列したうえで、下限・上限とも単調増加かつ連続
	    (T_end[i] == T_start[i+1]) であること、係数の数が全区間で等しいことを確認する。
*/
func NewIdealGasTable(name string, bins []PolynomialBin) (*IdealGasTable, error) {
	if len(bins) == 0 {
		return nil, fmt.Errorf("%w: no temperature ranges provided for %s", ErrDataInconsistency, name)
	}

	sorted := make([]PolynomialBin, len(bins))
	copy(sorted, bins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TempStart < sorted[j].TempStart
	})

	for i := 1; i < len(sorted); i++ {
		if !(sorted[i-1].TempStart < sorted[i].TempStart) ||
			!(sorted[i-1].TempEnd < sorted[i].TempEnd) ||
			sorted[i-1].TempEnd != sorted[i].TempStart {
			return nil, fmt.Errorf(
				"%w: temperature ranges provided for %s are not consistent",
				ErrDataInconsistency, name)
		}
	}

	nCoeff := len(sorted[0].Coeff)
	for _, b := range sorted[1:] {
		if len(b.Coeff) != nCoeff {
			return nil, fmt.Errorf(
				"%w: inconsistent coefficient data provided for %s",
				ErrDataInconsistency, name)
		}
	}

	edges := make([]float64, 0, len(sorted)+1)
	binCoeffs := make([][]float64, len(sorted))
	for i, b := range sorted {
		edges = append(edges, b.TempStart)
		binCoeffs[i] = append([]float64(nil), b.Coeff...)
	}
	edges = append(edges, sorted[len(sorted)-1].TempEnd)

	coeff := make([][]float64, nCoeff)
	for k := range coeff {
		coeff[k] = make([]float64, len(sorted))
		for i := range sorted {
			coeff[k][i] = binCoeffs[i][k]
		}
	}

	return &IdealGasTable{
		name:      name,
		binEdges:  edges,
		nCoeff:    nCoeff,
		coeff:     coeff,
		binCoeffs: binCoeffs,
	}, nil
}

// Name returns the fluid the table belongs to.
func (t *IdealGasTable) Name() string { return t.name }

// NCoeff returns the coefficient count shared by all bins.
func (t *IdealGasTable) NCoeff() int { return t.nCoeff }

// TempRange returns the validity range of the table, K.
func (t *IdealGasTable) TempRange() (float64, float64) {
	return t.binEdges[0], t.binEdges[len(t.binEdges)-1]
}

// binIndex は温度 temp が属する区間の番号を返す。
// 内部境界と等しい温度は下側の区間に属し、範囲外の温度は最も近い区間に丸められる。
func (t *IdealGasTable) binIndex(temp float64) int {
	interior := t.binEdges[1 : len(t.binEdges)-1]
	return sort.SearchFloat64s(interior, temp)
}

// Coeff returns coefficient idx of the bin that temp falls into.
func (t *IdealGasTable) Coeff(idx int, temp float64) float64 {
	return t.coeff[idx][t.binIndex(temp)]
}

// CoeffVec returns coefficient idx for every temperature in temp.
func (t *IdealGasTable) CoeffVec(idx int, temp []float64) []float64 {
	out := make([]float64, len(temp))
	for i, v := range temp {
		out[i] = t.Coeff(idx, v)
	}
	return out
}

/*
理想気体の定圧モル比熱を多項式係数表から計算する。

	Args:
	    table: 多項式係数表（係数の数は 7 または 9）
	    temp: 温度, K, [n]

	Returns:
	    理想気体の定圧モル比熱, J/(kmol K), [n]

	Notes:
	    7係数: cp/R = a0 + a1 T + a2 T^2 + a3 T^3 + a4 T^4
	    9係数: cp/R = a0 T^-2 + a1 T^-1 + a2 + a3 T + a4 T^2 + a5 T^3 + a6 T^4
*/
func CpRef(table *IdealGasTable, temp []float64) ([]float64, error) {
	if table.nCoeff != 7 && table.nCoeff != 9 {
		return nil, fmt.Errorf("%w: unknown coefficient count %d for %s",
			ErrDataInconsistency, table.nCoeff, table.name)
	}

	cp := make([]float64, len(temp))
	for i, t := range temp {
		c := table.binCoeffs[table.binIndex(t)]
		t2 := t * t
		t3 := t2 * t
		t4 := t3 * t

		var v float64
		if table.nCoeff == 7 {
			v = c[0] + c[1]*t + c[2]*t2 + c[3]*t3 + c[4]*t4
		} else {
			tInv := 1 / t
			tInv2 := tInv / t
			v = c[0]*tInv2 + c[1]*tInv + c[2] + c[3]*t + c[4]*t2 + c[5]*t3 + c[6]*t4
		}
		cp[i] = v * RUniv
	}
	return cp, nil
}
