package recorder

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"realtpl/eos"
)

// RenderFluidSummary writes the fluid summary as a console table.
func RenderFluidSummary(w io.Writer, s eos.FluidSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(s.Name)

	t.AppendHeader(table.Row{"Property", "Value", "Unit"})
	t.AppendRows([]table.Row{
		{"mass", s.Mass, "kg/kmol"},
		{"acentric factor", s.Omega, "-"},
		{"critical pressure", s.PC, "Pa"},
		{"critical temperature", s.TempC, "K"},
		{"critical density", s.RhoC, "kmol/m3"},
		{"critical volume", s.VC, "m3/kmol"},
		{"critical compressibility", s.ZC, "-"},
	})
	t.Render()
}

// RenderDeviations writes the deviation summary as a console table.
func RenderDeviations(w io.Writer, devs []Deviation) {
	if len(devs) == 0 {
		_, _ = fmt.Fprintln(w, "(no deviation data)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("deviation from " + eos.RefKind)

	t.AppendHeader(table.Row{"EOS", "Property", "Points", "Mean |dev| [%]", "Max |dev| [%]"})
	for _, d := range devs {
		t.AppendRow(table.Row{d.Label, d.Property, d.N, formatPercent(d.Mean), formatPercent(d.Max)})
	}
	t.Render()
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
