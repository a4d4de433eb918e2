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
	"strings"
	"testing"
)

func TestBuildChartSeries(t *testing.T) {
	series, err := buildChartSeries(255, 15)
	if err != nil {
		t.Fatalf("buildChartSeries returned error: %v", err)
	}

	if len(series.Lines) != 3 || len(series.Names) != 3 {
		t.Fatalf("expected 3 curves, got %d lines and %d names", len(series.Lines), len(series.Names))
	}
	for i, line := range series.Lines {
		if len(line) != len(series.Sizes) {
			t.Errorf("curve %q has %d points, want %d", series.Names[i], len(line), len(series.Sizes))
		}
	}

	last := len(series.Sizes) - 1
	if series.Sizes[last] != 255 {
		t.Errorf("last sample at %v, want 255", series.Sizes[last])
	}
	optimal := series.Lines[2][last]
	if optimal != 8 {
		t.Errorf("perfectly balanced height for 255 keys = %v, want 8", optimal)
	}
	for i := 0; i < 2; i++ {
		if h := series.Lines[i][last]; h < optimal {
			t.Errorf("%s height %v is below the optimum %v", series.Names[i], h, optimal)
		}
	}
}

func TestBuildChartSeriesInvalidSize(t *testing.T) {
	if _, err := buildChartSeries(0, 10); err == nil {
		t.Error("expected an error for an empty chart")
	}
}

func TestChartLegend(t *testing.T) {
	series, err := buildChartSeries(64, 8)
	if err != nil {
		t.Fatalf("buildChartSeries returned error: %v", err)
	}
	legend := chartLegend(series, 64)

	for _, want := range []string{"AVL Tree", "Red-Black Tree", "Perfectly balanced", "64"} {
		if !strings.Contains(legend, want) {
			t.Errorf("legend missing %q:\n%s", want, legend)
		}
	}
}

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name     string
		colorfg  string
		theme    string
		expected TerminalMode
	}{
		{"dark background", "15;0", "", TerminalModeDark},
		{"light background", "0;15", "", TerminalModeLight},
		{"theme variable", "", "Solarized-Light", TerminalModeLight},
		{"nothing set", "", "", TerminalModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfg)
			t.Setenv("TERM_THEME", tt.theme)
			t.Setenv("THEME", "")

			if got := detectTerminalMode(); got != tt.expected {
				t.Errorf("detectTerminalMode() = %v, want %v", got, tt.expected)
			}
		})
	}
}
