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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrScriptFailed = errors.New("script had failing lines")

// demoScript walks through the reference scenario: ten keys, three
// removals, then lookups of a removed and a kept key.
var demoScript = []string{
	"# load ten keys",
	"insert 50 30 70 20 40 60 80 10 25 35",
	"show",
	"info",
	"# remove three of them, including the root",
	"remove 20 30 50",
	"show",
	"search 20 35",
	"info",
}

// runScript executes one session command per line. Lines that fail are
// reported and skipped. Execution stops at the first quit command.
func runScript(r io.Reader, w io.Writer, session *Session, styles *Styles) error {
	scanner := bufio.NewScanner(r)
	lineNo, failed := 0, 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			fmt.Fprintln(w, styles.HelpDesc.Render(line))
			continue
		}

		fmt.Fprintln(w, styles.Echo.Render("› "+line))
		results, err := session.Exec(line)
		if err != nil {
			failed++
			fmt.Fprintln(w, styles.FormatError(fmt.Errorf("line %d: %w", lineNo, err)))
			continue
		}
		for _, res := range results {
			if res.Outcome == OutcomeQuit {
				return scriptResult(failed)
			}
			fmt.Fprintln(w, styles.FormatResult(res))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return scriptResult(failed)
}

func scriptResult(failed int) error {
	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrScriptFailed, failed)
	}
	return nil
}

// runDemo plays demoScript against the session.
func runDemo(w io.Writer, session *Session, styles *Styles) error {
	fmt.Fprintln(w, styles.Banner(fmt.Sprintf("%s demo", session.Kind().Title())))
	return runScript(strings.NewReader(strings.Join(demoScript, "\n")), w, session, styles)
}
