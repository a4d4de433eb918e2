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

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Header         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	InfoMessage    lipgloss.Style
	Echo           lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("33")).
			Padding(0, 1).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		InfoMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true),
	}
}

// FormatResult renders one session result the way both the script runner
// and the interactive UI print it.
func (s *Styles) FormatResult(r Result) string {
	var head string
	switch r.Outcome {
	case OutcomeSuccess:
		head = s.SuccessMessage.Render("✓ " + r.Message)
	case OutcomeFailure:
		head = s.ErrorMessage.Render("✗ " + r.Message)
	default:
		head = s.InfoMessage.Render(r.Message)
	}
	if r.Body == "" {
		return head
	}
	return head + "\n" + strings.TrimRight(r.Body, "\n")
}

// FormatError renders an error returned by the session.
func (s *Styles) FormatError(err error) string {
	return s.ErrorMessage.Render("✗ " + err.Error())
}

// Banner renders a boxed header line.
func (s *Styles) Banner(text string) string {
	return s.Header.Render(text)
}
