package recorder

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"realtpl/eos"
)

// 図の大きさ
const (
	figWidth  = 8 * vg.Inch
	figHeight = 5 * vg.Inch
)

// finiteXYs returns the points of x, y whose coordinates are both finite.
func finiteXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) || math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	return pts
}

func newPlot(title, yLabel string, tMin, tMax float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "temperature [K]"
	p.Y.Label.Text = yLabel
	p.X.Min, p.X.Max = tMin, tMax
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, i int, label string, pts plotter.XYs) error {
	if len(pts) == 0 {
		return nil
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	line.Color = plotutil.Color(i)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

/*
物性値ごとに温度に対するグラフを PNG で保存する。

	Args:
	    dir: 出力フォルダ
	    t: 物性値の表（1 つの圧力のみ）
	    fluid: 物質の臨界点物性値

	Returns:
	    保存したファイルのパス（Properties の順）
*/
func SavePropertyPlots(dir string, t *Table, fluid eos.FluidSummary) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	press := t.MaxPressure()
	title := fmt.Sprintf("%s at p = %g MPa (p/p_c = %.2f)", fluid.Name, press/1e6, press/fluid.PC)
	tMin, tMax := t.TempRange()

	paths := make([]string, 0, len(Properties))
	for _, prop := range Properties {
		p := newPlot(title, fmt.Sprintf("%s [%s]", prop.Name, prop.Unit), tMin, tMax)
		for i, label := range t.Labels() {
			rows := t.Group(label)
			x := make([]float64, len(rows))
			y := make([]float64, len(rows))
			for j, r := range rows {
				x[j], y[j] = r.Temp, prop.Get(r)
			}
			if err := addLine(p, i, label, finiteXYs(x, y)); err != nil {
				return nil, err
			}
		}

		path := filepath.Join(dir, prop.Name+".png")
		if err := p.Save(figWidth, figHeight, path); err != nil {
			return nil, fmt.Errorf("saving %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

/*
参照データに対する相対偏差のグラフを PNG で保存する。

	Args:
	    dir: 出力フォルダ
	    t: 参照データを含む物性値の表

	Returns:
	    保存したファイルのパス（Properties の順）
*/
func SaveDeviationPlots(dir string, t *Table) ([]string, error) {
	if !t.HasReference() {
		return nil, fmt.Errorf("%w: deviation plots require %s rows", eos.ErrConfiguration, eos.RefKind)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	ref := t.Group(eos.RefKind)
	tMin, tMax := t.TempRange()

	paths := make([]string, 0, len(Properties))
	for k, prop := range Properties {
		p := newPlot("", fmt.Sprintf("deviation %s [%%]", prop.Name), tMin, tMax)
		for i, label := range t.Labels() {
			temps, dev, _ := RelativeDeviation(t.Group(label), ref)
			if err := addLine(p, i, label, finiteXYs(temps, dev[k])); err != nil {
				return nil, err
			}
		}

		path := filepath.Join(dir, "deviation_"+prop.Name+".png")
		if err := p.Save(figWidth, figHeight, path); err != nil {
			return nil, fmt.Errorf("saving %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
