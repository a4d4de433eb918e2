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
	"testing"

	"github.com/cybrota/bbst/balanced"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, kind balanced.Kind) *Session {
	t.Helper()
	s, err := NewSession(kind, SessionOptions{Logger: zerolog.Nop()})
	require.NoError(t, err)
	return s
}

func mustExec(t *testing.T, s *Session, line string) []Result {
	t.Helper()
	results, err := s.Exec(line)
	require.NoError(t, err, line)
	return results
}

func outcomes(results []Result) []Outcome {
	out := make([]Outcome, len(results))
	for i, r := range results {
		out[i] = r.Outcome
	}
	return out
}

func TestSessionReferenceScenario(t *testing.T) {
	for _, kind := range balanced.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			s := newTestSession(t, kind)

			results := mustExec(t, s, "insert 50 30 70 20 40 60 80 10 25 35")
			require.Len(t, results, 10)
			for _, r := range results {
				require.Equal(t, OutcomeSuccess, r.Outcome, r.Message)
			}
			require.Equal(t, "10, 20, 25, 30, 35, 40, 50, 60, 70, 80", s.InOrderText())

			results = mustExec(t, s, "rm 20 30 50")
			require.Equal(t, []Outcome{OutcomeSuccess, OutcomeSuccess, OutcomeSuccess}, outcomes(results))
			require.Equal(t, 7, s.Tree().Size())
			require.Equal(t, "10, 25, 35, 40, 60, 70, 80", s.InOrderText())

			results = mustExec(t, s, "search 20 35")
			require.Equal(t, []Outcome{OutcomeFailure, OutcomeSuccess}, outcomes(results))
			require.NoError(t, s.Tree().Validate())
		})
	}
}

func TestSessionDuplicateAndMissing(t *testing.T) {
	s := newTestSession(t, balanced.KindRedBlack)

	mustExec(t, s, "i 5")
	results := mustExec(t, s, "i 5")
	require.Equal(t, []Outcome{OutcomeInfo}, outcomes(results))
	require.Equal(t, 1, s.Tree().Size())

	results = mustExec(t, s, "remove 6")
	require.Equal(t, []Outcome{OutcomeFailure}, outcomes(results))
	require.Equal(t, "6 not found", results[0].Message)
}

func TestSessionErrors(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)
	mustExec(t, s, "insert 1 2 3")

	tests := []struct {
		name string
		line string
		err  error
	}{
		{"unknown command", "rotate 3", ErrUnknownCommand},
		{"insert without keys", "insert", ErrMissingArgument},
		{"search without keys", "find", ErrMissingArgument},
		{"engine without name", "engine", ErrMissingArgument},
		{"malformed key", "insert 4 five 6", ErrInvalidKey},
		{"float key", "remove 2.5", ErrInvalidKey},
		{"unknown engine", "engine splay", balanced.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Exec(tt.line)
			require.ErrorIs(t, err, tt.err)
		})
	}

	// a line with one bad key changes nothing
	require.Equal(t, "1, 2, 3", s.InOrderText())

	_, err := s.Exec(`insert "unterminated`)
	require.Error(t, err)
}

func TestSessionIgnoresBlankAndComments(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)

	for _, line := range []string{"", "   ", "# insert 5", "\t# comment"} {
		results, err := s.Exec(line)
		require.NoError(t, err)
		require.Empty(t, results)
	}
	require.True(t, s.Tree().IsEmpty())
}

func TestSessionCommandsAreCaseInsensitive(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)
	mustExec(t, s, "INSERT 3 1 2")
	require.Equal(t, "1, 2, 3", s.InOrderText())
}

func TestSessionShowUsesRenderCache(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)

	empty := mustExec(t, s, "show")
	require.Len(t, empty, 1)
	require.Equal(t, "(empty)", empty[0].Body)

	mustExec(t, s, "insert 2 1 3")
	first := mustExec(t, s, "tree")[0].Body
	require.Contains(t, first, "2")
	require.Contains(t, first, "3")
	require.Equal(t, s.Tree().Visualize(), first)

	_, cached := s.renders.Get("avl#3")
	require.True(t, cached)

	// a failed lookup does not invalidate the drawing
	mustExec(t, s, "search 9")
	require.Equal(t, first, mustExec(t, s, "print")[0].Body)
	require.Equal(t, 2, s.renders.ItemCount())
}

func TestSessionInfo(t *testing.T) {
	s := newTestSession(t, balanced.KindRedBlack)
	mustExec(t, s, "insert 3 1 2")

	results := mustExec(t, s, "info")
	require.Len(t, results, 1)
	require.True(t, results[0].Markdown)
	require.Contains(t, results[0].Body, "Red-Black Tree")
	require.Contains(t, results[0].Body, "**Nodes:** 3")
	require.Contains(t, results[0].Body, "**Height:** 2")
	require.Contains(t, results[0].Body, "1, 2, 3")
}

func TestSessionClear(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)
	mustExec(t, s, "insert 1 2 3")

	results := mustExec(t, s, "clear")
	require.Equal(t, []Outcome{OutcomeSuccess}, outcomes(results))
	require.True(t, s.Tree().IsEmpty())
	require.Equal(t, balanced.KindAVL, s.Kind())
}

func TestSessionSwitchEngineKeepsKeys(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)
	mustExec(t, s, "insert 8 4 12 2 6 10 14")

	results := mustExec(t, s, "engine rb")
	require.Equal(t, []Outcome{OutcomeSuccess}, outcomes(results))
	require.Equal(t, balanced.KindRedBlack, s.Kind())
	require.Equal(t, "2, 4, 6, 8, 10, 12, 14", s.InOrderText())
	require.NoError(t, s.Tree().Validate())

	results = mustExec(t, s, "engine red-black")
	require.Equal(t, []Outcome{OutcomeInfo}, outcomes(results))

	mustExec(t, s, "use avl")
	require.Equal(t, balanced.KindAVL, s.Kind())
	require.Equal(t, 7, s.Tree().Size())
}

func TestSessionWithFilter(t *testing.T) {
	s, err := NewSession(balanced.KindAVL, SessionOptions{Filter: true, Logger: zerolog.Nop()})
	require.NoError(t, err)

	mustExec(t, s, "insert 1 2 3")
	_, ok := s.Tree().(*balanced.Filtered[int])
	require.True(t, ok)

	results := mustExec(t, s, "search 1 2 3 4")
	require.Equal(t, []Outcome{OutcomeSuccess, OutcomeSuccess, OutcomeSuccess, OutcomeFailure}, outcomes(results))

	// the filter follows the tree across an engine switch
	mustExec(t, s, "engine rb")
	_, ok = s.Tree().(*balanced.Filtered[int])
	require.True(t, ok)
	require.Contains(t, mustExec(t, s, "info")[0].Body, "filter")
}

func TestSessionHelpAndQuit(t *testing.T) {
	s := newTestSession(t, balanced.KindAVL)

	help := mustExec(t, s, "help")
	require.Len(t, help, 1)
	require.Contains(t, help[0].Body, "engine avl|rb")

	for _, line := range []string{"quit", "exit", "q"} {
		require.Equal(t, []Outcome{OutcomeQuit}, outcomes(mustExec(t, s, line)))
	}
}

func TestSessionOptionsFromConfig(t *testing.T) {
	config := defaultConfig
	config.Search.BloomPrefilter = true
	config.Search.BloomCapacity = 42

	opts := SessionOptionsFromConfig(&config, zerolog.Nop())
	require.True(t, opts.Filter)
	require.Equal(t, uint(42), opts.FilterCapacity)
	require.Equal(t, balanced.DefaultFilterFPRate, opts.FilterFPRate)
}
