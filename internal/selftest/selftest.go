// Package selftest exercises every compiled convention at every arity:
// capture, call, invoke through the exported parts, adopt the parts without a
// destructor, free, and check that destruction happened exactly once.
package selftest

import (
	"fmt"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/tinyrange/ffclosure"
)

// Options controls a run.
type Options struct {
	// Iterations is the number of capture cycles per convention and arity.
	Iterations int
	// Conventions limits the run to the named conventions. Empty means all.
	Conventions []string
	// Progress, if set, is called after each convention and arity finishes.
	Progress func()
}

// Result is the outcome for one convention and arity.
type Result struct {
	Convention string `yaml:"convention"`
	Arity      int    `yaml:"arity"`
	Iterations int    `yaml:"iterations"`
	Error      string `yaml:"error,omitempty"`
}

// Report is the outcome of a run.
type Report struct {
	Version     string                     `yaml:"version"`
	GOOS        string                     `yaml:"goos"`
	GOARCH      string                     `yaml:"goarch"`
	Conventions []ffclosure.ConventionInfo `yaml:"conventions"`
	Results     []Result                   `yaml:"results"`
	Failed      int                        `yaml:"failed"`
}

type runner struct {
	name string
	run  func(opts Options, report *Report)
}

var runners []runner

func register(name string, run func(opts Options, report *Report)) {
	runners = append(runners, runner{name: name, run: run})
}

// Steps returns how many Progress calls a run with opts makes.
func Steps(opts Options) int {
	n := 0
	for _, r := range runners {
		if selected(opts, r.name) {
			n += ffclosure.MaxArity + 2
		}
	}
	return n
}

func selected(opts Options, name string) bool {
	return len(opts.Conventions) == 0 || slices.Contains(opts.Conventions, name)
}

// Run executes the self test. It fails only for unknown convention names;
// test failures are recorded in the report.
func Run(opts Options) (*Report, error) {
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	for _, name := range opts.Conventions {
		if !slices.ContainsFunc(runners, func(r runner) bool { return r.name == name }) {
			return nil, fmt.Errorf("unknown convention %q", name)
		}
	}

	report := &Report{
		Version:     ffclosure.Version,
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		Conventions: ffclosure.Conventions(),
	}
	for _, r := range runners {
		if selected(opts, r.name) {
			r.run(opts, report)
		}
	}
	for _, res := range report.Results {
		if res.Error != "" {
			report.Failed++
		}
	}
	return report, nil
}

type suite[Cc ffclosure.Convention] struct {
	iter  int
	drops int
}

func (s *suite[Cc]) dropped() {
	s.drops++
}

// arg is the i-th argument of the current iteration, truncated to a machine
// word.
func (s *suite[Cc]) arg(i int) uintptr {
	return uintptr(uint64(s.iter)<<32 | uint64(i+1)*0x9e3779b9)
}

// fold hashes its arguments in order, so swapped arguments change the result.
func fold(args ...uintptr) uintptr {
	h := uint64(14695981039346656037)
	for _, a := range args {
		h ^= uint64(a)
		h *= 1099511628211
	}
	return uintptr(h)
}

func mismatch(stage string, arity int, got, want uintptr) error {
	return fmt.Errorf("%s with %d arguments: got %#x, want %#x", stage, arity, got, want)
}

func runConvention[Cc ffclosure.Convention](opts Options, report *Report) {
	var cc Cc
	name := cc.Name()

	for arity, cycle := range cyclesFor[Cc]() {
		res := Result{Convention: name, Arity: arity}
		s := &suite[Cc]{}
		for s.iter = 0; s.iter < opts.Iterations; s.iter++ {
			if err := cycle(s); err != nil {
				res.Error = err.Error()
				break
			}
			res.Iterations++
			if s.drops != res.Iterations {
				res.Error = fmt.Sprintf("captured state destroyed %d times after %d cycles", s.drops, res.Iterations)
				break
			}
		}
		report.Results = append(report.Results, res)
		if opts.Progress != nil {
			opts.Progress()
		}
	}

	res := Result{Convention: name, Arity: -1, Iterations: 1}
	if err := destructorOnce[Cc](); err != nil {
		res.Error = err.Error()
	}
	report.Results = append(report.Results, res)
	if opts.Progress != nil {
		opts.Progress()
	}
}

const countedContext = ffclosure.Context(0x5E1F7E57)

// counter is a destructor that counts how often it ran against countedContext.
// Foreign destructors hold a callback slot for the life of the process, so
// there is one counter per convention, shared by every run.
type counter struct {
	dtor  ffclosure.Destructor
	calls atomic.Int32
}

var counters struct {
	mu sync.Mutex
	m  map[string]*counter
}

func counterFor[Cc ffclosure.Convention]() *counter {
	var cc Cc
	counters.mu.Lock()
	defer counters.mu.Unlock()

	if c, ok := counters.m[cc.Name()]; ok {
		return c
	}
	c := &counter{}
	c.dtor = ffclosure.NewDestructor[Cc](func(ctx ffclosure.Context) {
		if ctx == countedContext {
			c.calls.Add(1)
		}
	})
	if counters.m == nil {
		counters.m = make(map[string]*counter)
	}
	counters.m[cc.Name()] = c
	return c
}

// destructorOnce adopts a context with a counting destructor and frees the
// closure twice.
func destructorOnce[Cc ffclosure.Convention]() error {
	cnt := counterFor[Cc]()
	cnt.calls.Store(0)

	first := ffclosure.Capture0[Cc](ffclosure.Local(func() uintptr { return 0 }))
	code := first.Code()
	first.Free()

	c := ffclosure.Adopt0[Cc, ffclosure.Unsync, uintptr](code, countedContext, cnt.dtor)
	c.Free()
	c.Free()
	if n := cnt.calls.Load(); n != 1 {
		return fmt.Errorf("adopted destructor ran %d times, want 1", n)
	}
	return nil
}
