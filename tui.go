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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bbst/balanced"
	"github.com/rs/zerolog"
)

// Focus targets cycled with tab
const (
	focusInput = iota
	focusLog
	focusTree
	focusCount
)

// maxLogLines bounds the session log kept in memory.
const maxLogLines = 500

// Model is the Bubble Tea state of the interactive menu.
type Model struct {
	ready bool

	input    textinput.Model
	logView  viewport.Model
	treeView viewport.Model

	session *Session
	log     zerolog.Logger

	focusIndex int
	logLines   []string
	history    []string
	historyPos int
	quitting   bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// clipboardMsg reports the result of a copy started from the UI.
type clipboardMsg struct {
	count int
	err   error
}

// InitialModel creates the model around an existing session.
func InitialModel(session *Session, logger zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 50 30 70, search 30, engine rb, help ..."
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	logView := viewport.New(0, 0)
	treeView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		logView:         logView,
		treeView:        treeView,
		session:         session,
		log:             logger.With().Str("component", "tui").Logger(),
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.input.PromptStyle = m.styles.InputPrompt

	m.appendLog(m.styles.InfoMessage.Render(fmt.Sprintf("Using the %s. Type help for the command list.", session.Kind().Title())))
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.appendLog(m.styles.FormatError(fmt.Errorf("failed to copy keys: %w", msg.err)))
		} else {
			m.appendLog(m.styles.SuccessMessage.Render(fmt.Sprintf("📋 Copied %d keys to clipboard", msg.count)))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
			return m, nil
		case "ctrl+y":
			return m, m.copyKeys()
		case "ctrl+e":
			next := balanced.KindRedBlack
			if m.session.Kind() == balanced.KindRedBlack {
				next = balanced.KindAVL
			}
			return m.execute("engine " + next.String())
		case "ctrl+l":
			m.logLines = nil
			m.logView.SetContent("")
			return m, nil
		}

		switch m.focusIndex {
		case focusInput:
			return m.updateInput(msg)
		case focusLog:
			m.logView, cmd = m.logView.Update(msg)
			cmds = append(cmds, cmd)
		case focusTree:
			m.treeView, cmd = m.treeView.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		if line == "" {
			return m, nil
		}
		m.history = append(m.history, line)
		m.historyPos = len(m.history)
		return m.execute(line)
	case "up":
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		}
		return m, nil
	case "down":
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.input.SetValue("")
		}
		return m, nil
	case "pgup":
		m.logView.LineUp(m.logView.Height)
		return m, nil
	case "pgdown":
		m.logView.LineDown(m.logView.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one command line through the session and records the output.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	m.appendLog(m.styles.Echo.Render("› " + line))

	results, err := m.session.Exec(line)
	if err != nil {
		m.log.Debug().Err(err).Str("line", line).Msg("command rejected")
		m.appendLog(m.styles.FormatError(err))
		return m, nil
	}

	for _, r := range results {
		if r.Outcome == OutcomeQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.appendLog(m.formatResult(r))
	}
	m.refreshTree()
	return m, nil
}

// formatResult renders markdown bodies through glamour and everything else
// with the shared styles.
func (m Model) formatResult(r Result) string {
	if !r.Markdown || m.glamourRenderer == nil {
		return m.styles.FormatResult(r)
	}
	rendered, err := m.glamourRenderer.Render(r.Body)
	if err != nil {
		return m.styles.FormatResult(r)
	}
	return m.styles.FormatResult(Result{Outcome: r.Outcome, Message: r.Message}) + "\n" + strings.TrimRight(rendered, "\n")
}

func (m *Model) appendLog(text string) {
	m.logLines = append(m.logLines, text)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
	m.logView.SetContent(strings.Join(m.logLines, "\n"))
	m.logView.GotoBottom()
}

func (m *Model) refreshTree() {
	m.treeView.SetContent(m.session.render())
}

func (m *Model) setFocus(idx int) {
	m.focusIndex = idx
	if idx == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) copyKeys() tea.Cmd {
	text := m.session.InOrderText()
	count := m.session.Tree().Size()
	return func() tea.Msg {
		return clipboardMsg{count: count, err: clipboard.WriteAll(text)}
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	pick := func(idx int, title string) (lipgloss.Style, string) {
		if m.focusIndex == idx {
			return m.styles.BorderFocused, title + " (Active) "
		}
		return m.styles.BorderBlurred, title + " "
	}

	inputStyle, inputTitle := pick(focusInput, " ⌨  Command")
	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.input.View(),
		))

	logStyle, logTitle := pick(focusLog, " 📜 Session Log")
	logBox := logStyle.
		Width(leftWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(logTitle),
			m.logView.View(),
		))

	treeTitle := fmt.Sprintf(" 🌳 %s · %d keys · height %d", m.session.Kind().Title(), m.session.Tree().Size(), m.session.Tree().Height())
	treeStyle, treeTitle := pick(focusTree, treeTitle)
	treeBox := treeStyle.
		Width(rightWidth).
		Height(logHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(treeTitle),
			m.treeView.View(),
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, treeBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Banner("bbst · balanced search trees"),
		main,
		m.renderHelp(),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 6
	m.logView.Width = leftWidth - 2
	m.logView.Height = max(logHeight-2, 1)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = max(logHeight+inputHeight, 1)

	m.logView.GotoBottom()
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "↑/↓", "ctrl+e", "ctrl+y", "ctrl+l", "esc"}
	descs := []string{"run command", "switch focus", "history / scroll", "switch engine", "copy keys", "clear log", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runInteractive starts the Bubble Tea application
func runInteractive(session *Session, logger zerolog.Logger) error {
	program := tea.NewProgram(
		InitialModel(session, logger),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
