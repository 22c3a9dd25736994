/*
 * abiplot.go, part of abitools.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package abiplot renders (parameter, energy) series together with a fitted
curve. The output backend is chosen by an explicit Config value, never by
process-global state: preview mode produces a quick PNG to look at, while
publication mode produces a .tex (PGF) file to \input into LaTeX.*/
package abiplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Config selects the rendering destination. Out, when set, wins; otherwise
//Preview selects "preview.png" and publication mode "fit.tex".
type Config struct {
	Preview bool
	Out     string
}

//Path returns the file the plot will be written to.
func (c Config) Path() string {
	if c.Out != "" {
		return c.Out
	}
	if c.Preview {
		return "preview.png"
	}
	return "fit.tex"
}

//Plot draws the samples (x, y) as black points and the fitted curve
//(fitX, fitY) as a black line, and saves to cfg.Path(). The format follows
//the file extension (png, pdf, svg, tex, ...).
func Plot(cfg Config, x, y, fitX, fitY []float64, xlabel, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Energy (Ha)"
	p.Add(plotter.NewGrid())

	data := make(plotter.XYs, len(x))
	for i := range x {
		data[i].X = x[i]
		data[i].Y = y[i]
	}
	s, err := plotter.NewScatter(data)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.Black
	p.Add(s)
	p.Legend.Add("Data", s)

	curve := make(plotter.XYs, len(fitX))
	for i := range fitX {
		curve[i].X = fitX[i]
		curve[i].Y = fitY[i]
	}
	l, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.Black
	p.Add(l)
	p.Legend.Add("Fit", l)

	return p.Save(13*vg.Centimeter, 10*vg.Centimeter, cfg.Path())
}

//FitGrid returns n evenly spaced points spanning [min(x), max(x)], the
//abscissae to evaluate a fitted model on for a smooth curve.
func FitGrid(x []float64, n int) []float64 {
	if len(x) == 0 || n < 2 {
		return nil
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	grid := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}
