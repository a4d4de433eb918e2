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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ColorScheme holds the termui colors used by the height chart.
type ColorScheme struct {
	AVLLine      ui.Color
	RedBlackLine ui.Color
	Optimal      ui.Color
	Axes         ui.Color
	Border       ui.Color
	BorderFocus  ui.Color
	Text         ui.Color
	TextMuted    ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		AVLLine:      ui.Color(4), // Dark Blue
		RedBlackLine: ui.ColorRed,
		Optimal:      ui.Color(2), // Dark Green
		Axes:         ui.ColorBlack,
		Border:       ui.Color(8),
		BorderFocus:  ui.Color(4),
		Text:         ui.ColorBlack,
		TextMuted:    ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		AVLLine:      ui.Color(14), // Bright Cyan
		RedBlackLine: ui.Color(9),  // Bright Red
		Optimal:      ui.Color(10), // Bright Green
		Axes:         ui.ColorWhite,
		Border:       ui.Color(240),
		BorderFocus:  ui.Color(14),
		Text:         ui.ColorWhite,
		TextMuted:    ui.Color(245),
	}
}

// colorSchemeFor picks the scheme matching the terminal background.
func colorSchemeFor(mode TerminalMode) *ColorScheme {
	if mode == TerminalModeLight {
		return createLightColorScheme()
	}
	return createDarkColorScheme()
}

// StyleBorder returns the border style for a widget.
func StyleBorder(scheme *ColorScheme, focused bool) ui.Style {
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}
