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
	"io"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cybrota/bbst/balanced"
	"github.com/schollz/progressbar/v3"
)

var ErrInvalidSize = errors.New("size must be positive")

// benchResult is the outcome of loading 1..Size into one engine.
type benchResult struct {
	Kind     balanced.Kind
	Size     int
	Height   int
	Bound    int
	Lookups  int
	Misses   int
	Insert   time.Duration
	Search   time.Duration
	Validate error
}

// heightBound is the worst-case height allowed for n keys.
func heightBound(kind balanced.Kind, n int) int {
	switch kind {
	case balanced.KindAVL:
		return int(1.44 * math.Log2(float64(n+2)))
	case balanced.KindRedBlack:
		return int(2 * math.Log2(float64(n+1)))
	}
	return n
}

// benchmarkEngine inserts 1..size in ascending order, then looks every key
// up and probes size keys that are absent. step is called once per insert.
func benchmarkEngine(kind balanced.Kind, size int, step func()) (benchResult, error) {
	if size <= 0 {
		return benchResult{}, ErrInvalidSize
	}
	tree, err := balanced.New[int](kind)
	if err != nil {
		return benchResult{}, err
	}

	res := benchResult{Kind: kind, Size: size, Bound: heightBound(kind, size)}

	start := time.Now()
	for k := 1; k <= size; k++ {
		tree.Insert(k)
		if step != nil {
			step()
		}
	}
	res.Insert = time.Since(start)

	start = time.Now()
	for k := 1; k <= size; k++ {
		res.Lookups++
		if !tree.Search(k) {
			res.Misses++
		}
		res.Lookups++
		if tree.Search(-k) {
			res.Misses++
		}
	}
	res.Search = time.Since(start)

	res.Height = tree.Height()
	res.Validate = tree.Validate()
	return res, nil
}

// heightSeries returns the height of a tree of the given kind after each
// sampled number of ascending insertions. At most samples points are taken.
func heightSeries(kind balanced.Kind, size, samples int) (xs []float64, heights []float64, err error) {
	if size <= 0 || samples <= 0 {
		return nil, nil, ErrInvalidSize
	}
	tree, err := balanced.New[int](kind)
	if err != nil {
		return nil, nil, err
	}

	stride := max(size/samples, 1)
	for k := 1; k <= size; k++ {
		tree.Insert(k)
		if k%stride == 0 || k == size {
			xs = append(xs, float64(k))
			heights = append(heights, float64(tree.Height()))
		}
	}
	return xs, heights, nil
}

// runBenchmark loads both engines and prints a comparison table.
func runBenchmark(w io.Writer, size int, showProgress bool) error {
	if size <= 0 {
		return ErrInvalidSize
	}
	kinds := balanced.Kinds()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(size*len(kinds),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("🌳 Loading trees..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(w, "\n✅ Done!\n\n")
			}),
		)
	}
	step := func() {
		if bar != nil {
			bar.Add(1)
		}
	}

	results := make([]benchResult, 0, len(kinds))
	for _, kind := range kinds {
		if bar != nil {
			bar.Describe(fmt.Sprintf("🌳 Loading %s...", kind.Title()))
		}
		res, err := benchmarkEngine(kind, size, step)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Fprintln(w, benchTable(results))

	for _, res := range results {
		if res.Validate != nil {
			return fmt.Errorf("%s failed validation: %w", res.Kind.Title(), res.Validate)
		}
		if res.Misses > 0 {
			return fmt.Errorf("%s answered %d lookups wrongly", res.Kind.Title(), res.Misses)
		}
	}
	return nil
}

func benchTable(results []benchResult) string {
	styles := NewStyles()
	headerStyle := styles.Title.Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("Engine", "Keys", "Height", "Bound", "Insert", "Lookups", "Wrong", "Valid").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, res := range results {
		valid := styles.SuccessMessage.Render("✓")
		if res.Validate != nil {
			valid = styles.ErrorMessage.Render("✗")
		}
		t.Row(
			res.Kind.Title(),
			strconv.Itoa(res.Size),
			strconv.Itoa(res.Height),
			strconv.Itoa(res.Bound),
			res.Insert.Round(time.Microsecond).String(),
			strconv.Itoa(res.Lookups),
			strconv.Itoa(res.Misses),
			valid,
		)
	}
	return t.String()
}
