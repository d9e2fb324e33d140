package selftest

import (
	"testing"

	"github.com/tinyrange/ffclosure"
)

func TestRunAllConventions(t *testing.T) {
	steps := 0
	opts := Options{Iterations: 3, Progress: func() { steps++ }}

	report, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed != 0 {
		for _, res := range report.Results {
			if res.Error != "" {
				t.Errorf("%s arity %d: %s", res.Convention, res.Arity, res.Error)
			}
		}
		t.FailNow()
	}
	if steps != Steps(opts) {
		t.Fatalf("progress called %d times, want %d", steps, Steps(opts))
	}
	if len(report.Results) != len(runners)*(ffclosure.MaxArity+2) {
		t.Fatalf("got %d results for %d conventions", len(report.Results), len(runners))
	}
}

func TestRunSelectsConventions(t *testing.T) {
	report, err := Run(Options{Conventions: []string{"Go"}})
	if err != nil {
		t.Fatal(err)
	}
	for _, res := range report.Results {
		if res.Convention != "Go" {
			t.Fatalf("unexpected convention %q in report", res.Convention)
		}
		if res.Error != "" {
			t.Fatalf("arity %d: %s", res.Arity, res.Error)
		}
	}
}

func TestRunUnknownConvention(t *testing.T) {
	if _, err := Run(Options{Conventions: []string{"fastcall"}}); err == nil {
		t.Fatal("expected an error for an unknown convention")
	}
}

func TestFoldIsOrderSensitive(t *testing.T) {
	if fold(1, 2) == fold(2, 1) {
		t.Fatal("fold ignores argument order")
	}
	if fold() == fold(0) {
		t.Fatal("fold ignores argument count")
	}
}

func TestRepeatedRunsReuseDestructors(t *testing.T) {
	for i := 0; i < 3; i++ {
		report, err := Run(Options{Iterations: 1})
		if err != nil {
			t.Fatal(err)
		}
		if report.Failed != 0 {
			t.Fatalf("run %d: %d checks failed", i, report.Failed)
		}
	}

	counters.mu.Lock()
	n := len(counters.m)
	counters.mu.Unlock()
	if n != len(runners) {
		t.Fatalf("%d counting destructors for %d conventions", n, len(runners))
	}

	a := counterFor[ffclosure.Go]()
	b := counterFor[ffclosure.Go]()
	if a != b || a.dtor != b.dtor {
		t.Fatal("counting destructor recreated for the same convention")
	}
}
