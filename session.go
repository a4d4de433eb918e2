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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/bbst/balanced"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Outcome classifies a session result for display.
type Outcome int

const (
	OutcomeInfo Outcome = iota
	OutcomeSuccess
	OutcomeFailure
	OutcomeQuit
)

// Result is the outcome of one session command, or of one key when a
// command names several keys.
type Result struct {
	Outcome Outcome
	Message string
	Body    string
	// Markdown is set when Body is meant to go through a markdown renderer.
	Markdown bool
}

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidKey      = errors.New("invalid key")
)

// SessionOptions tune how a session builds its trees.
type SessionOptions struct {
	Filter         bool
	FilterCapacity uint
	FilterFPRate   float64
	Logger         zerolog.Logger
	Renders        *cache.Cache
}

// SessionOptionsFromConfig maps the settings file onto session options.
func SessionOptionsFromConfig(config *Config, logger zerolog.Logger) SessionOptions {
	return SessionOptions{
		Filter:         config.Search.BloomPrefilter,
		FilterCapacity: config.Search.BloomCapacity,
		FilterFPRate:   config.Search.BloomFPRate,
		Logger:         logger,
	}
}

// Session drives one tree of integer keys through text commands. It is the
// glue between the tree engines and the terminal front-ends.
//
// A Session is not safe for concurrent use.
type Session struct {
	kind     balanced.Kind
	tree     balanced.Tree[int]
	opts     SessionOptions
	revision uint64
	renders  *cache.Cache
	log      zerolog.Logger
}

// NewSession returns a session holding an empty tree of the given kind.
func NewSession(kind balanced.Kind, opts SessionOptions) (*Session, error) {
	s := &Session{
		opts:    opts,
		renders: opts.Renders,
		log:     opts.Logger.With().Str("component", "session").Logger(),
	}
	if s.renders == nil {
		s.renders = NewRenderCache()
	}

	tree, err := s.newTree(kind)
	if err != nil {
		return nil, err
	}
	s.kind, s.tree = kind, tree
	return s, nil
}

func (s *Session) newTree(kind balanced.Kind) (balanced.Tree[int], error) {
	tree, err := balanced.New[int](kind)
	if err != nil {
		return nil, err
	}
	if s.opts.Filter {
		return balanced.NewFiltered(tree, s.opts.FilterCapacity, s.opts.FilterFPRate), nil
	}
	return tree, nil
}

// Kind returns the engine currently in use.
func (s *Session) Kind() balanced.Kind {
	return s.kind
}

// Tree returns the tree the session operates on.
func (s *Session) Tree() balanced.Tree[int] {
	return s.tree
}

// Exec runs one command line. Empty lines and lines starting with # are
// ignored. A malformed line returns an error and leaves the tree untouched.
func (s *Session) Exec(line string) ([]Result, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, nil
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	s.log.Debug().Str("cmd", cmd).Strs("args", rest).Msg("exec")

	switch cmd {
	case "insert", "i", "add":
		keys, err := parseKeys(rest)
		if err != nil {
			return nil, err
		}
		return s.insert(keys), nil
	case "remove", "rm", "r", "delete", "del":
		keys, err := parseKeys(rest)
		if err != nil {
			return nil, err
		}
		return s.remove(keys), nil
	case "search", "s", "find", "f":
		keys, err := parseKeys(rest)
		if err != nil {
			return nil, err
		}
		return s.search(keys), nil
	case "show", "tree", "print", "p":
		return []Result{s.show()}, nil
	case "info", "list", "ls":
		return []Result{s.info()}, nil
	case "clear", "reset":
		return []Result{s.clear()}, nil
	case "engine", "use":
		if len(rest) == 0 {
			return nil, fmt.Errorf("%w: engine name (avl | rb)", ErrMissingArgument)
		}
		kind, err := balanced.ParseKind(rest[0])
		if err != nil {
			return nil, err
		}
		res, err := s.switchEngine(kind)
		if err != nil {
			return nil, err
		}
		return []Result{res}, nil
	case "help", "h", "?":
		return []Result{{Outcome: OutcomeInfo, Message: "commands", Body: sessionHelp}}, nil
	case "quit", "exit", "q":
		return []Result{{Outcome: OutcomeQuit, Message: "bye"}}, nil
	}
	return nil, fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, args[0])
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: at least one integer key", ErrMissingArgument)
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidKey, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *Session) insert(keys []int) []Result {
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		before := s.tree.Size()
		s.tree.Insert(key)
		if s.tree.Size() == before {
			results = append(results, Result{Outcome: OutcomeInfo, Message: fmt.Sprintf("%d is already in the tree", key)})
			continue
		}
		s.revision++
		results = append(results, Result{Outcome: OutcomeSuccess, Message: fmt.Sprintf("inserted %d", key)})
	}
	return results
}

func (s *Session) remove(keys []int) []Result {
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		if !s.tree.Remove(key) {
			results = append(results, Result{Outcome: OutcomeFailure, Message: fmt.Sprintf("%d not found", key)})
			continue
		}
		s.revision++
		results = append(results, Result{Outcome: OutcomeSuccess, Message: fmt.Sprintf("removed %d", key)})
	}
	return results
}

func (s *Session) search(keys []int) []Result {
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		if s.tree.Search(key) {
			results = append(results, Result{Outcome: OutcomeSuccess, Message: fmt.Sprintf("found %d", key)})
		} else {
			results = append(results, Result{Outcome: OutcomeFailure, Message: fmt.Sprintf("%d not found", key)})
		}
	}
	return results
}

func (s *Session) show() Result {
	return Result{
		Outcome: OutcomeInfo,
		Message: fmt.Sprintf("%s structure", s.kind.Title()),
		Body:    s.render(),
	}
}

// render returns the tree drawing, reusing the cached copy while the tree
// is unchanged.
func (s *Session) render() string {
	key := fmt.Sprintf("%s#%d", s.kind, s.revision)
	if text := GetRendering(s.renders, key); text != "" {
		return text
	}
	text := s.tree.Visualize()
	CacheRendering(s.renders, key, text)
	return text
}

func (s *Session) info() Result {
	var b strings.Builder
	fmt.Fprintf(&b, "- **Engine:** %s\n", s.kind.Title())
	fmt.Fprintf(&b, "- **Nodes:** %d\n", s.tree.Size())
	fmt.Fprintf(&b, "- **Empty:** %s\n", yesNo(s.tree.IsEmpty()))
	fmt.Fprintf(&b, "- **Height:** %d\n", s.tree.Height())
	if f, ok := s.tree.(*balanced.Filtered[int]); ok {
		fmt.Fprintf(&b, "- **Lookups answered by the filter:** %d\n", f.Rejected())
	}
	if !s.tree.IsEmpty() {
		fmt.Fprintf(&b, "- **In order:** %s\n", s.InOrderText())
	}
	return Result{Outcome: OutcomeInfo, Message: "tree information", Body: b.String(), Markdown: true}
}

func (s *Session) clear() Result {
	tree, err := s.newTree(s.kind)
	if err != nil {
		// the kind was accepted once already
		return Result{Outcome: OutcomeFailure, Message: err.Error()}
	}
	s.tree = tree
	s.revision++
	return Result{Outcome: OutcomeSuccess, Message: "tree cleared"}
}

// switchEngine moves every key into a fresh tree of the requested kind.
func (s *Session) switchEngine(kind balanced.Kind) (Result, error) {
	if kind == s.kind {
		return Result{Outcome: OutcomeInfo, Message: fmt.Sprintf("already using the %s", kind.Title())}, nil
	}
	tree, err := s.newTree(kind)
	if err != nil {
		return Result{}, err
	}
	keys := s.tree.InOrder()
	for _, key := range keys {
		tree.Insert(key)
	}
	s.log.Info().Stringer("from", s.kind).Stringer("to", kind).Int("keys", len(keys)).Msg("switched engine")

	s.kind, s.tree = kind, tree
	s.revision++
	return Result{Outcome: OutcomeSuccess, Message: fmt.Sprintf("switched to the %s (%d keys moved)", kind.Title(), len(keys))}, nil
}

// InOrderText lists the keys in ascending order separated by commas.
func (s *Session) InOrderText() string {
	keys := s.tree.InOrder()
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.Itoa(key)
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

const sessionHelp = `insert|i KEY...     insert one or more integer keys
remove|rm KEY...    remove keys
search|s KEY...     look keys up
show                draw the tree
info                size, height and keys in order
clear               drop every key
engine avl|rb       switch engine, keeping the keys
quit                leave`
