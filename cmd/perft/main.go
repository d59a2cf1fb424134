// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command perft exercises the move generator: it either counts the
// leaf nodes of a single position, with a per-move breakdown, or runs
// the built-in verification suite and checks every count against its
// published value.
//
//	perft -fen <fen> -depth <n>       count one position
//	perft                             run the fast suite
//	perft -full                       include the expensive positions
//	perft -report perft.html          also render a nodes/s bar chart
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvidchess/corvid/internal/log"
	"github.com/corvidchess/corvid/pkg/fen"
)

// suite is the verification suite, carried over from the standard
// perft positions with their published node counts. Cases marked slow
// take minutes rather than seconds and only run under -full.
var suite = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
	slow  bool
}{
	{"starting d4", fen.Starting, 4, 197_281, false},
	{"starting d5", fen.Starting, 5, 4_865_609, false},
	{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97_862, false},
	{"kiwipete d4", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4_085_603, false},
	{"endgame d5", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674_624, false},
	{"en passant pin d6", "8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1", 6, 824_064, false},
	{"mirror d4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422_333, false},
	{"talkchess d4", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2_103_487, false},
	{"kiwipete d5", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193_690_690, true},
	{"symmetric d5", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 5, 164_075_551, true},
}

func main() {
	var (
		position = flag.String("fen", "", "position to count instead of running the suite")
		depth    = flag.Int("depth", 5, "depth to count a single position to")
		full     = flag.Bool("full", false, "include the expensive suite positions")
		report   = flag.String("report", "", "write a nodes/s bar chart to this HTML file")
	)
	flag.Parse()

	if *position != "" {
		if err := countOne(*position, *depth); err != nil {
			log.Log.Fatalf("perft: %v", err)
		}
		return
	}

	if err := runSuite(*full, *report); err != nil {
		log.Log.Fatalf("perft: %v", err)
	}
}

func countOne(position string, depth int) error {
	b, err := fen.Parse(position)
	if err != nil {
		return err
	}

	start := time.Now()
	divide := b.Divide(depth)
	elapsed := time.Since(start)

	moves := make([]string, 0, len(divide))
	for mv := range divide {
		moves = append(moves, mv)
	}
	sort.Strings(moves)

	var total uint64
	for _, mv := range moves {
		fmt.Printf("%s: %d\n", mv, divide[mv])
		total += divide[mv]
	}

	fmt.Printf("\nnodes %d time %s nps %.0f\n", total, elapsed, float64(total)/elapsed.Seconds())
	return nil
}

func runSuite(full bool, report string) error {
	cases := suite
	if !full {
		kept := cases[:0:0]
		for _, c := range cases {
			if !c.slow {
				kept = append(kept, c)
			}
		}
		cases = kept
	}

	bar := progressbar.NewOptions(
		len(cases),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("position"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
	)

	names := make([]string, 0, len(cases))
	speeds := make([]opts.BarData, 0, len(cases))
	failed := 0

	for _, c := range cases {
		b, err := fen.Parse(c.fen)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}

		start := time.Now()
		nodes := b.Perft(c.depth)
		elapsed := time.Since(start)

		if nodes != c.nodes {
			log.Log.Errorf("%s: counted %d nodes, published count is %d", c.name, nodes, c.nodes)
			failed++
		}

		names = append(names, c.name)
		speeds = append(speeds, opts.BarData{Value: float64(nodes) / elapsed.Seconds()})

		_ = bar.Add(1)
	}
	_ = bar.Close()

	if report != "" {
		plot := charts.NewBar()
		plot.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "perft nodes per second"}))
		plot.SetXAxis(names).AddSeries("nodes/s", speeds)

		file, err := os.Create(report)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := plot.Render(file); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d positions failed", failed, len(cases))
	}

	fmt.Printf("all %d positions verified\n", len(cases))
	return nil
}
