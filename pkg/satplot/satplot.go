// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

// Package satplot renders saturated-liquid property charts versus
// reduced temperature.  It sits outside the evaluation core: it only
// consumes saturation sweeps from pkg/prop and hands them to
// gonum.org/v1/plot.
package satplot

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/prop"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

// nSweep is the number of saturation stations plotted per curve.
const nSweep = 60

type panel struct {
	title string
	yUnit string
	logY  bool
	value func(prop.SatRow) float64
}

var panels = []panel{
	{"Pvap", "psia", true, func(r prop.SatRow) float64 { return r.Pvap }},
	{"SGliq", "g/cc", false, func(r prop.SatRow) float64 { return r.SGliq }},
	{"SGvap", "g/cc", true, func(r prop.SatRow) float64 { return r.SGvap }},
	{"visc", "poise", true, func(r prop.SatRow) float64 { return r.Visc }},
	{"cond", "BTU/hr/ft/delF", false, func(r prop.SatRow) float64 { return r.Cond }},
	{"Cp", "BTU/lbm/delF", false, func(r prop.SatRow) float64 { return r.Cp }},
	{"Hvap", "BTU/lbm", false, func(r prop.SatRow) float64 { return r.Hvap }},
	{"surf", "lbf/in", false, func(r prop.SatRow) float64 { return r.Surf }},
}

// Save renders the substance's saturation chart to
// <dir>/<name>_sat.png and returns the written path.  The file is
// written via a temp file and rename so a failed render leaves no
// partial output.
func Save(sub *refdata.Substance, dir string) (string, error) {
	rows, err := prop.Saturation(sub, nSweep)
	if err != nil {
		return "", fmt.Errorf("satplot.Save: %w", err)
	}

	const cols, prows = 2, 4
	plots := make([][]*plot.Plot, prows)
	for r := 0; r < prows; r++ {
		plots[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			pan := panels[r*cols+c]
			p := plot.New()
			p.Title.Text = fmt.Sprintf("%s %s", sub.Name, pan.title)
			p.X.Label.Text = "Tr"
			p.Y.Label.Text = pan.yUnit
			if pan.logY {
				p.Y.Scale = plot.LogScale{}
				p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
			}
			xys := make(plotter.XYs, len(rows))
			for i, row := range rows {
				xys[i].X = row.Tr
				xys[i].Y = pan.value(row)
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return "", fmt.Errorf("satplot.Save: %s: %w", pan.title, err)
			}
			p.Add(plotter.NewGrid(), line)
			plots[r][c] = p
		}
	}

	img := vgimg.New(8*vg.Inch, 11*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: prows, Cols: cols,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < prows; r++ {
		for c := 0; c < cols; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	out := filepath.Join(dir, sub.Name+"_sat.png")
	tmp, err := os.CreateTemp(dir, "."+sub.Name+"_sat-*.png")
	if err != nil {
		return "", fmt.Errorf("satplot.Save: %w", err)
	}
	defer os.Remove(tmp.Name())
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("satplot.Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("satplot.Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return "", fmt.Errorf("satplot.Save: %w", err)
	}
	return out, nil
}
