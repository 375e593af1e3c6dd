// perft.go implements the perft driver used to debug and benchmark the
// move generator.  It is internal, as it is only used for testing
// purposes.
//
// Usage:
//
//	go run ./internal/perft -depth 5
//	go run ./internal/perft -fen "<fen>" -depth 4 -divide
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/clinaresl/table"
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hardcode3/bitbishop"
)

var log = logging.MustGetLogger("perft")

// out localizes the big node counts, e.g. 193,690,690.
var out = message.NewPrinter(language.English)

// result collects the per-move-type counters reported in divide mode.
type result struct {
	nodes      uint64
	captures   int
	epCaptures int
	castles    int
	promotions int
	checks     int
}

// count tallies the bookkeeping counters for a single generated move and
// the position that follows it.
func (r *result) count(p *bitbishop.Position, m bitbishop.Move) {
	if m.IsCapture {
		r.captures++
	}
	if m.IsEnPassant {
		r.epCaptures++
	}
	if m.IsCastling {
		r.castles++
	}
	if m.Promotion != bitbishop.NoPieceType {
		r.promotions++
	}
	if p.InCheck() {
		r.checks++
	}
}

// divide runs a one-ply split of the perft count: every root move is
// logged with the size of its subtree.  Comparing the split against a
// trusted engine pins down the branch that generates wrong moves.
func divide(p *bitbishop.Position, depth int, r *result) uint64 {
	var l bitbishop.MoveList
	p.LegalMoves(&l)

	var nodes uint64
	for _, m := range l.Slice() {
		p.Make(m)

		cnt := bitbishop.Perft(p, depth-1)
		r.count(p, m)

		p.Unmake(m)

		log.Infof("%v %d", m, cnt)
		nodes += cnt
	}

	return nodes
}

func main() {
	depth := flag.Int("depth", 5, "perft depth")
	fen := flag.String("fen", bitbishop.InitialFEN, "position to enumerate")
	div := flag.Bool("divide", false, "log per-root-move subtree counts")
	cpuprofile := flag.String("cpuprofile", "", "file to write a cpu profile")
	memprofile := flag.String("memprofile", "", "file to write a memory profile")
	flag.Parse()

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{message}")
	logging.SetBackend(logging.NewBackendFormatter(backend, format))

	p, err := bitbishop.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Infof("position:\n%v", &p)

	if *div {
		r := &result{}
		start := time.Now()
		r.nodes = divide(&p, *depth, r)

		log.Infof("depth %d: %s nodes in %v", *depth,
			out.Sprint(r.nodes), time.Since(start))
		log.Infof("captures %d, en passants %d, castles %d, promotions %d, checks %d",
			r.captures, r.epCaptures, r.castles, r.promotions, r.checks)
	} else {
		summary(&p, *depth)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}

// summary enumerates every depth up to the requested one and renders a
// depth/nodes/elapsed/speed table.
func summary(p *bitbishop.Position, depth int) {
	tab, err := table.NewTable("| r | r | r | r |")
	if err != nil {
		log.Fatal(err)
	}

	tab.AddRow("depth", "nodes", "elapsed", "nodes/s")
	tab.AddDoubleRule()

	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := bitbishop.Perft(p, d)
		elapsed := time.Since(start)

		speed := "-"
		if secs := elapsed.Seconds(); secs > 0 {
			speed = out.Sprintf("%.0f", float64(nodes)/secs)
		}

		tab.AddRow(d, out.Sprint(nodes), elapsed.Round(time.Microsecond), speed)
	}

	fmt.Printf("%v\n", tab)
}
