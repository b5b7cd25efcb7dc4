// Command wininfo prints spectral properties of DSP window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman kaiser
//	wininfo -size 4096 -alpha 8 kaiser
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/acoustic-dsp/dsp/window"
)

type windowEntry struct {
	name     string
	typ      window.Type
	hasAlpha bool
	defAlpha float64
}

var registry = []windowEntry{
	{"rectangular", window.TypeRectangular, false, 0},
	{"hann", window.TypeHann, false, 0},
	{"hamming", window.TypeHamming, false, 0},
	{"blackman", window.TypeBlackman, false, 0},
	{"blackman-harris", window.TypeBlackmanHarris, false, 0},
	{"flat-top", window.TypeFlatTop, false, 0},
	{"kaiser", window.TypeKaiser, true, 8.6},
	{"tukey", window.TypeTukey, true, 0.5},
	{"triangle", window.TypeTriangle, false, 0},
	{"cosine", window.TypeCosine, false, 0},
	{"welch", window.TypeWelch, false, 0},
	{"lanczos", window.TypeLanczos, false, 0},
	{"gauss", window.TypeGauss, true, 2.5},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	alpha := flag.Float64("alpha", math.NaN(), "alpha/beta parameter for parametric windows (kaiser, tukey, gauss)")
	list := flag.Bool("list", false, "list available window names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of DSP window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 -alpha 8 kaiser\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	entries := resolveEntries(flag.Args(), *alpha)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	printAnalysis(entries, *size, opts)
}

type resolvedEntry struct {
	windowEntry
	alphaOverride float64
}

func resolveEntries(names []string, alphaFlag float64) []resolvedEntry {
	var selected []windowEntry
	if len(names) == 0 {
		selected = registry
	} else {
		byType := make(map[window.Type]windowEntry, len(registry))
		for _, e := range registry {
			byType[e.typ] = e
		}
		for _, name := range names {
			t, err := window.Parse(strings.TrimSpace(name))
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
				continue
			}
			selected = append(selected, byType[t])
		}
	}

	result := make([]resolvedEntry, 0, len(selected))
	for _, e := range selected {
		a := e.defAlpha
		if e.hasAlpha && !math.IsNaN(alphaFlag) {
			a = alphaFlag
		}
		result = append(result, resolvedEntry{e, a})
	}
	return result
}

func printAnalysis(entries []resolvedEntry, size int, baseOpts []window.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\n")

	for _, e := range entries {
		opts := append([]window.Option(nil), baseOpts...)
		if e.hasAlpha {
			opts = append(opts, window.WithAlpha(e.alphaOverride))
		}

		coeffs := window.Generate(e.typ, size, opts...)

		gain, err := window.Gain(coeffs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}
		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		label := e.name
		if e.hasAlpha {
			label = fmt.Sprintf("%s (a=%.2f)", e.name, e.alphaOverride)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\n", label, size, gain, enbw)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
