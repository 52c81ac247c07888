package eos

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// RefKind は独立な参照データの行に付けるラベルである。
const RefKind = "ref_data"

// PropertyRecord は (ラベル, 圧力, 温度) ごとの物性値の1行である。
type PropertyRecord struct {
	Kind  string  `csv:"kind"`
	Press float64 `csv:"press_Pa"`
	Temp  float64 `csv:"temp_K"`
	Rho   float64 `csv:"rho_kg/m3"`
	Cp    float64 `csv:"cp_J/(kgK)"`
	Sound float64 `csv:"sound_m/s"`
	Visc  float64 `csv:"visc_Pas"`
	Cond  float64 `csv:"cond_W/(mK)"`
}

// Model は1つの状態方程式で物性値を評価するための定数一式である。
type Model struct {
	Fluid  FluidProperties
	Table  *IdealGasTable
	Param  Parameter
	Alphas AlphaFunctions
}

// NewModel builds the EOS constants and alpha functions of variant for fp.
func NewModel(variant Variant, fp FluidProperties, table *IdealGasTable) (*Model, error) {
	ed, err := NewParameter(variant, fp)
	if err != nil {
		return nil, err
	}
	af, err := NewAlphaFunctions(variant, fp)
	if err != nil {
		return nil, err
	}
	return &Model{Fluid: fp, Table: table, Param: ed, Alphas: af}, nil
}

/*
1つの圧力における温度配列に対して全ての物性値を計算する。

	Args:
	    temp: 温度, K, [n]
	    press: 圧力, Pa

	Returns:
	    物性値, [n]

	Notes:
	    圧縮係数 → モル体積・密度 → 比熱・音速 → 粘性係数・熱伝導率 の順に求める。
*/
func (m *Model) EvaluateIsobar(temp []float64, press float64) ([]PropertyRecord, error) {
	z := Compressibility(m.Param, m.Alphas, temp, press)

	// v = Z R T / p
	vol := make([]float64, len(temp))
	floats.MulTo(vol, z, temp)
	floats.Scale(RUniv/press, vol)

	// rho = M / v
	rho := make([]float64, len(temp))
	floats.AddConst(m.Fluid.Mass, rho)
	floats.Div(rho, vol)

	cal, err := CvCpSound(m.Fluid, m.Table, temp, m.Param, m.Alphas, vol)
	if err != nil {
		return nil, err
	}
	tr := ViscCondChung(m.Fluid, temp, rho, cal.Cv)

	kind := m.Param.Variant.String()
	rows := make([]PropertyRecord, len(temp))
	for i, t := range temp {
		rows[i] = PropertyRecord{
			Kind:  kind,
			Press: press,
			Temp:  t,
			Rho:   rho[i],
			Cp:    cal.Cp[i],
			Sound: cal.Sound[i],
			Visc:  tr.Visc[i],
			Cond:  tr.Cond[i],
		}
	}
	return rows, nil
}

// Evaluate returns the rows of one variant over the grid, pressure-major.
func (m *Model) Evaluate(grid Grid) ([]PropertyRecord, error) {
	rows := make([]PropertyRecord, 0, grid.Size())
	for _, p := range grid.Pressures {
		r, err := m.EvaluateIsobar(grid.Temps, p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

/*
複数の状態方程式について物性値を計算する。

	Args:
	    variants: 状態方程式の種類（出力順）
	    fp: 臨界点物性値
	    table: 理想気体比熱の多項式係数表
	    grid: 評価する温度・圧力
	    workers: 同時に計算する状態方程式の数 (0 以下なら GOMAXPROCS)

	Returns:
	    物性値（状態方程式 → 圧力 → 温度 の順）

	Notes:
	    各状態方程式は独立に計算され、出力順は variants の順に揃える。
*/
func EvaluateAll(variants []Variant, fp FluidProperties, table *IdealGasTable, grid Grid, workers int) ([]PropertyRecord, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([][]PropertyRecord, len(variants))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			m, err := NewModel(v, fp, table)
			if err != nil {
				return err
			}
			rows, err := m.Evaluate(grid)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]PropertyRecord, 0, len(variants)*grid.Size())
	for _, rows := range results {
		out = append(out, rows...)
	}
	return out, nil
}
