package recorder

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"realtpl/eos"
)

// Deviation summarizes the relative deviation of one label from the
// reference data for one property.
type Deviation struct {
	Label    string
	Property string
	N        int     // 比較した点の数
	Mean     float64 // 相対偏差の絶対値の平均, %
	Max      float64 // 相対偏差の絶対値の最大, %
}

/*
参照データに対する相対偏差を求める。

	Args:
	    rows: 比較する行
	    ref: 参照データ

	Returns:
	    temps: 比較できた点の温度, K
	    dev: 相対偏差 (x - x_ref) / x_ref * 100, %, [property][n]
	    unmatched: 同じ (圧力, 温度) の参照データが無い行の数
*/
func RelativeDeviation(rows, ref []eos.PropertyRecord) (temps []float64, dev [][]float64, unmatched int) {
	byState := make(map[stateKey]eos.PropertyRecord, len(ref))
	for _, r := range ref {
		byState[keyOf(r)] = r
	}

	dev = make([][]float64, len(Properties))
	for _, r := range rows {
		rr, ok := byState[keyOf(r)]
		if !ok {
			unmatched++
			continue
		}
		temps = append(temps, r.Temp)
		for k, p := range Properties {
			x, xRef := p.Get(r), p.Get(rr)
			dev[k] = append(dev[k], (x-xRef)/xRef*100)
		}
	}
	return temps, dev, unmatched
}

// Deviations returns the deviation summary of every non-reference label of
// t, in label then property order, and the number of rows that had no
// reference counterpart.
func Deviations(t *Table) ([]Deviation, int) {
	ref := t.Group(eos.RefKind)

	var out []Deviation
	var unmatched int
	for _, label := range t.Labels() {
		if label == eos.RefKind {
			continue
		}
		_, dev, n := RelativeDeviation(t.Group(label), ref)
		unmatched += n
		for k, p := range Properties {
			out = append(out, summarize(label, p.Name, dev[k]))
		}
	}
	return out, unmatched
}

func summarize(label, property string, dev []float64) Deviation {
	d := Deviation{Label: label, Property: property}

	abs := make([]float64, 0, len(dev))
	for _, v := range dev {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		abs = append(abs, math.Abs(v))
	}
	d.N = len(abs)
	if d.N == 0 {
		d.Mean, d.Max = math.NaN(), math.NaN()
		return d
	}
	d.Mean = stat.Mean(abs, nil)
	d.Max = floats.Max(abs)
	return d
}
