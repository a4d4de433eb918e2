// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"

	"github.com/cybrota/bbst/balanced"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

const (
	minChartSize = 16
	maxChartSize = 1 << 20
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// chartSeries holds one height curve per engine plus the height of a
// perfectly balanced tree, sampled at the same sizes.
type chartSeries struct {
	Sizes []float64
	Lines [][]float64
	Names []string
}

// buildChartSeries samples heights for 1..size ascending insertions.
func buildChartSeries(size, samples int) (chartSeries, error) {
	var series chartSeries
	for _, kind := range balanced.Kinds() {
		xs, heights, err := heightSeries(kind, size, samples)
		if err != nil {
			return chartSeries{}, err
		}
		series.Sizes = xs
		series.Lines = append(series.Lines, heights)
		series.Names = append(series.Names, kind.Title())
	}

	optimal := make([]float64, len(series.Sizes))
	for i, n := range series.Sizes {
		optimal[i] = math.Ceil(math.Log2(n + 1))
	}
	series.Lines = append(series.Lines, optimal)
	series.Names = append(series.Names, "Perfectly balanced")
	return series, nil
}

func chartLegend(series chartSeries, size int) string {
	last := len(series.Sizes) - 1
	text := fmt.Sprintf("keys inserted in ascending order: %d\n", size)
	colors := []string{"cyan", "red", "green"}
	for i, name := range series.Names {
		text += fmt.Sprintf("[━━ %s](fg:%s) final height %.0f\n", name, colors[i%len(colors)], series.Lines[i][last])
	}
	text += "\n[<+>/<->](fg:green) double / halve keys  [<q>](fg:green) or [<esc>](fg:green) quit"
	return text
}

// runChart shows a termui line plot of tree height against key count until
// the user quits.
func runChart(size int) error {
	if size <= 0 {
		return ErrInvalidSize
	}
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := colorSchemeFor(detectTerminalMode())

	plot := widgets.NewPlot()
	plot.Title = " Height vs keys "
	plot.Marker = widgets.MarkerBraille
	plot.AxesColor = scheme.Axes
	plot.LineColors = []ui.Color{scheme.AVLLine, scheme.RedBlackLine, scheme.Optimal}
	plot.BorderStyle = StyleBorder(scheme, true)
	plot.TitleStyle = ui.NewStyle(scheme.Text, ui.ColorClear, ui.ModifierBold)

	legend := widgets.NewParagraph()
	legend.Title = " Legend "
	legend.BorderStyle = StyleBorder(scheme, false)
	legend.TextStyle = ui.NewStyle(scheme.TextMuted)
	legend.WrapText = true

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.75, plot),
		ui.NewRow(0.25, legend),
	)

	redraw := func() error {
		// a braille cell holds two samples horizontally
		w, _ := ui.TerminalDimensions()
		series, err := buildChartSeries(size, max(w*2-16, 8))
		if err != nil {
			return err
		}
		plot.Data = series.Lines
		legend.Text = chartLegend(series, size)
		ui.Clear()
		ui.Render(grid)
		return nil
	}
	if err := redraw(); err != nil {
		return err
	}

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "+", "=":
			if size < maxChartSize {
				size *= 2
			}
		case "-", "_":
			if size > minChartSize {
				size /= 2
			}
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			}
		default:
			continue
		}
		if err := redraw(); err != nil {
			return err
		}
	}
	return nil
}
