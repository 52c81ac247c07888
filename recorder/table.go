package recorder

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"realtpl/eos"
)

// Property describes one column of a property table.
type Property struct {
	Name string // ファイル名・軸ラベルに使う名前
	Unit string
	Get  func(eos.PropertyRecord) float64
}

// Properties are the plotted and compared columns, in column order.
var Properties = []Property{
	{"rho", "kg/m3", func(r eos.PropertyRecord) float64 { return r.Rho }},
	{"cp", "J/(kgK)", func(r eos.PropertyRecord) float64 { return r.Cp }},
	{"sound", "m/s", func(r eos.PropertyRecord) float64 { return r.Sound }},
	{"visc", "Pas", func(r eos.PropertyRecord) float64 { return r.Visc }},
	{"cond", "W/(mK)", func(r eos.PropertyRecord) float64 { return r.Cond }},
}

// Table is the ordered, write-once collection of property rows of one run.
type Table struct {
	rows   []eos.PropertyRecord
	labels []string
	groups map[string][]eos.PropertyRecord
}

/*
物性値の表を作成する。

	Args:
	    ref: 参照データ（空でもよい）
	    computed: 状態方程式による計算値（ラベル → 圧力 → 温度 の順）

	Notes:
	    参照データは常に先頭に置く。ラベルの順は最初に現れた順とする。
*/
func NewTable(ref, computed []eos.PropertyRecord) *Table {
	rows := make([]eos.PropertyRecord, 0, len(ref)+len(computed))
	rows = append(rows, ref...)
	rows = append(rows, computed...)

	t := &Table{rows: rows, groups: map[string][]eos.PropertyRecord{}}
	for _, r := range rows {
		if _, ok := t.groups[r.Kind]; !ok {
			t.labels = append(t.labels, r.Kind)
		}
		t.groups[r.Kind] = append(t.groups[r.Kind], r)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Labels returns the row labels in order of first appearance.
func (t *Table) Labels() []string { return t.labels }

// Group returns the rows of label in table order.
func (t *Table) Group(label string) []eos.PropertyRecord { return t.groups[label] }

// HasReference reports whether the table carries reference rows.
func (t *Table) HasReference() bool {
	_, ok := t.groups[eos.RefKind]
	return ok
}

// TempRange returns the smallest and largest temperature in the table.
// An empty table yields (+Inf, -Inf).
func (t *Table) TempRange() (lo, hi float64) {
	if len(t.rows) == 0 {
		return math.Inf(1), math.Inf(-1)
	}
	temps := t.column(func(r eos.PropertyRecord) float64 { return r.Temp })
	return floats.Min(temps), floats.Max(temps)
}

// MaxPressure returns the largest pressure in the table, -Inf when empty.
func (t *Table) MaxPressure() float64 {
	if len(t.rows) == 0 {
		return math.Inf(-1)
	}
	return floats.Max(t.column(func(r eos.PropertyRecord) float64 { return r.Press }))
}

// column は全行の1列を取り出す。
func (t *Table) column(get func(eos.PropertyRecord) float64) []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = get(r)
	}
	return out
}

// stateKey identifies a (pressure, temperature) point.
type stateKey struct {
	press, temp float64
}

func keyOf(r eos.PropertyRecord) stateKey {
	return stateKey{press: r.Press, temp: r.Temp}
}
