// Command lineinfo samples a spectral line shape and prints its values.
//
// Usage:
//
//	lineinfo [flags]
//
// The model is sampled on an evenly spaced frequency grid and printed as a
// table, followed by the peak position, peak height and full width at half
// maximum measured on a dense grid.
//
// Examples:
//
//	lineinfo -model lorentzian -center 7.5 -linewidth 0.3
//	lineinfo -model dho -center 5 -linewidth 0.8 -start 0 -stop 10 -n 21
//	lineinfo -model lorentz_e -slope -0.01 -offset 0.2
//	lineinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-lineshape/lineshape"
)

// denseSamples is the grid size used to locate the peak and half maximum.
const denseSamples = 20001

type options struct {
	model     string
	offset    float64
	amplitude float64
	center    float64
	linewidth float64
	slope     float64
	start     float64
	stop      float64
	points    int
}

func main() {
	var o options
	flag.StringVar(&o.model, "model", "lorentzian", "line shape: lorentzian, lorentzian-elastic, dho, dho-elastic")
	flag.Float64Var(&o.offset, "offset", 0, "constant offset b (intercept be for elastic models)")
	flag.Float64Var(&o.amplitude, "amplitude", 1, "peak amplitude a")
	flag.Float64Var(&o.center, "center", 7.5, "center frequency nu0")
	flag.Float64Var(&o.linewidth, "linewidth", 0.5, "linewidth gamma")
	flag.Float64Var(&o.slope, "slope", 0, "baseline slope ae (elastic models only)")
	flag.Float64Var(&o.start, "start", math.NaN(), "first frequency (default center - 5*linewidth)")
	flag.Float64Var(&o.stop, "stop", math.NaN(), "last frequency (default center + 5*linewidth)")
	flag.IntVar(&o.points, "n", 11, "number of frequencies to print")
	list := flag.Bool("list", false, "list available models")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lineinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Samples a spectral line shape and prints its values.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lineinfo -model lorentzian -center 7.5 -linewidth 0.3\n")
		fmt.Fprintf(os.Stderr, "  lineinfo -model dho -start 0 -stop 10 -n 21\n")
		fmt.Fprintf(os.Stderr, "  lineinfo -list\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(os.Stdout, logger, o); err != nil {
		logger.Error("lineinfo failed", "err", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, v := range lineshape.Variants() {
		fmt.Fprintf(w, "%-20s %v\n", v, v.ParamNames())
	}
}

func run(w io.Writer, logger *slog.Logger, o options) error {
	v, err := lineshape.ParseVariant(o.model)
	if err != nil {
		return err
	}
	if o.points < 1 {
		return fmt.Errorf("%w: -n must be positive, got %d", lineshape.ErrInvalidArgument, o.points)
	}

	m, err := v.Model(params(v, o))
	if err != nil {
		return err
	}

	start, stop := o.start, o.stop
	if math.IsNaN(start) {
		start = o.center - 5*o.linewidth
	}
	if math.IsNaN(stop) {
		stop = o.center + 5*o.linewidth
	}
	logger.Debug("sampling model", "model", v, "params", m.Params(), "start", start, "stop", stop, "n", o.points)

	freq := grid(start, stop, o.points)
	values := lineshape.Sample(m, freq)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency\tIntensity\n")
	fmt.Fprintf(tw, "---------\t---------\n")
	for i, nu := range freq {
		fmt.Fprintf(tw, "%.6g\t%.6g\n", nu, values[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	s, err := summarize(m, grid(start, stop, denseSamples))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s: peak %.6g at %.6g, FWHM %.6g\n", v, s.height, s.position, s.fwhm)
	return nil
}

func params(v lineshape.Variant, o options) []float64 {
	if v.Elastic() {
		return []float64{o.slope, o.offset, o.amplitude, o.center, o.linewidth}
	}
	return []float64{o.offset, o.amplitude, o.center, o.linewidth}
}

func grid(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

type summary struct {
	position float64
	height   float64 // above the baseline
	fwhm     float64 // NaN if a half-maximum crossing is outside the grid
}

// summarize locates the largest resonant contribution on freq and measures
// its full width at half maximum by linear interpolation between samples.
func summarize(m lineshape.Model, freq []float64) (summary, error) {
	res, err := resonant(m, freq)
	if err != nil {
		return summary{}, err
	}

	peak := 0
	for i, v := range res {
		if v > res[peak] {
			peak = i
		}
	}
	half := res[peak] / 2

	s := summary{position: freq[peak], height: res[peak], fwhm: math.NaN()}

	lo := -1
	for i := peak; i > 0; i-- {
		if res[i-1] < half {
			lo = i - 1
			break
		}
	}
	hi := -1
	for i := peak; i < len(res)-1; i++ {
		if res[i+1] < half {
			hi = i + 1
			break
		}
	}
	if lo < 0 || hi < 0 {
		return s, nil
	}

	left := crossing(freq[lo], freq[lo+1], res[lo], res[lo+1], half)
	right := crossing(freq[hi-1], freq[hi], res[hi-1], res[hi], half)
	s.fwhm = right - left
	return s, nil
}

// resonant samples m with its baseline removed.
func resonant(m lineshape.Model, freq []float64) ([]float64, error) {
	v := m.Variant()
	p := m.Params()
	if len(p) < v.NumParams() {
		return nil, fmt.Errorf("%w: %v model reports %d parameters, want %d",
			lineshape.ErrInvalidArgument, v, len(p), v.NumParams())
	}

	p[0] = 0
	if v.Elastic() {
		p[1] = 0
	}
	bare, err := v.Model(p)
	if err != nil {
		return nil, err
	}
	return lineshape.Sample(bare, freq), nil
}

func crossing(x0, x1, y0, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}
	return x0 + (level-y0)*(x1-x0)/(y1-y0)
}
