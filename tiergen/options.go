package tiergen

import (
	"log"
	"runtime"
)

// Options configures one GenerateNextSize run. Zero value is never used
// directly; construct via newOptions, which applies defaults first.
type Options struct {
	forbidR              int
	forbidS              int
	numWorkers           int
	spillThreshold       int
	sweepEvery           int64
	monitorCompThreshold uint64
	logger               *log.Logger
}

// Option mutates an Options under construction.
type Option func(*Options)

// ForbidR sets the forbidden true-colored clique size (default 4).
func ForbidR(r int) Option {
	return func(o *Options) { o.forbidR = r }
}

// ForbidS sets the forbidden false-colored clique size (default 4).
func ForbidS(s int) Option {
	return func(o *Options) { o.forbidS = s }
}

// NumWorkers sets the production worker pool size (default
// runtime.NumCPU()). Values below 1 are clamped to 1.
func NumWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.numWorkers = n
	}
}

// SpillThreshold sets the unchecked-count a worker's local tier may
// reach before it spills into the shared global tier (default 500000,
// per the generator's production loop).
func SpillThreshold(n int) Option {
	return func(o *Options) { o.spillThreshold = n }
}

// SweepEvery sets how many spill cycles the coordinator waits between
// dedup sweeps of the global tier (default 10).
func SweepEvery(n int) Option {
	return func(o *Options) { o.sweepEvery = int64(n) }
}

// MonitorCompThreshold sets the chunk comp value above which the final
// dedup pass logs a warning (default 10_000_000).
func MonitorCompThreshold(c uint64) Option {
	return func(o *Options) { o.monitorCompThreshold = c }
}

// Logger overrides the destination for diagnostic output (default
// log.Default()).
func Logger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		forbidR:              4,
		forbidS:              4,
		numWorkers:           runtime.NumCPU(),
		spillThreshold:       500_000,
		sweepEvery:           10,
		monitorCompThreshold: 10_000_000,
		logger:               log.Default(),
	}
	for _, fn := range opts {
		fn(o)
	}
	if o.numWorkers < 1 {
		o.numWorkers = 1
	}

	return o
}
