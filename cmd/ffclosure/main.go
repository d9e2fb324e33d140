// Command ffclosure reports which calling conventions this build supports and
// runs a self test of closure capture, invocation and destruction.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/tinyrange/ffclosure"
	"github.com/tinyrange/ffclosure/internal/selftest"
	"golang.org/x/mod/semver"
	"golang.org/x/term"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [command flags]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  conventions   List the calling conventions compiled into this binary\n")
	fmt.Fprintf(os.Stderr, "  selftest      Run capture/invoke/destroy cycles for every convention and arity\n")
	fmt.Fprintf(os.Stderr, "  version       Print the API version, optionally checking compatibility\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ffclosure: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigName, "Configuration file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = usage
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := loadConfig(*configPath, explicit)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *debug || cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		return fmt.Errorf("command required")
	}

	switch args[0] {
	case "conventions":
		return runConventions(args[1:])
	case "selftest":
		return runSelftest(cfg.Selftest, args[1:])
	case "version":
		return runVersion(args[1:])
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runConventions(args []string) error {
	fs := flag.NewFlagSet("conventions", flag.ExitOnError)
	asYAML := fs.Bool("yaml", false, "Print as YAML")
	if err := fs.Parse(args); err != nil {
		return err
	}

	convs := ffclosure.Conventions()
	if *asYAML {
		return writeYAML("-", struct {
			Platform    string                     `yaml:"platform"`
			MaxArity    int                        `yaml:"maxArity"`
			Conventions []ffclosure.ConventionInfo `yaml:"conventions"`
		}{platformDescription(), ffclosure.MaxArity, convs})
	}

	fmt.Printf("platform: %s\n", platformDescription())
	fmt.Printf("arity:    0..%d\n", ffclosure.MaxArity)
	for _, c := range convs {
		kind := "native"
		if c.Foreign {
			kind = "foreign"
		}
		fmt.Printf("  %-8s %-8s %s\n", c.Name, c.ABI, kind)
	}
	return nil
}

func runSelftest(cfg SelftestConfig, args []string) error {
	fs := flag.NewFlagSet("selftest", flag.ExitOnError)
	n := fs.Int("n", cfg.Iterations, "Iterations per convention and arity")
	only := fs.String("conventions", strings.Join(cfg.Conventions, ","), "Comma separated conventions to test (default: all)")
	report := fs.String("o", cfg.Report, "Write the YAML report to this file (- for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := selftest.Options{Iterations: *n}
	if *only != "" {
		opts.Conventions = strings.Split(*only, ",")
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		pb := progressbar.NewOptions(selftest.Steps(opts),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("selftest"),
			progressbar.OptionClearOnFinish(),
		)
		defer pb.Close()
		opts.Progress = func() { pb.Add(1) }
	}

	slog.Debug("running selftest", "iterations", opts.Iterations, "conventions", opts.Conventions)
	rep, err := selftest.Run(opts)
	if err != nil {
		return fmt.Errorf("selftest: %w", err)
	}

	if *report != "" {
		if err := writeYAML(*report, rep); err != nil {
			return err
		}
	}

	for _, res := range rep.Results {
		if res.Error != "" {
			slog.Error("selftest failure", "convention", res.Convention, "arity", res.Arity, "error", res.Error)
		}
	}
	if rep.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", rep.Failed, len(rep.Results))
	}
	fmt.Fprintf(os.Stderr, "selftest: %d checks passed\n", len(rep.Results))
	return nil
}

func runVersion(args []string) error {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	require := fs.String("require", "", "Fail unless this binary is API compatible with the given version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Println(ffclosure.Version)
	if *require == "" {
		return nil
	}
	return checkCompatible(ffclosure.Version, *require)
}

// checkCompatible reports whether have can serve a caller built against want:
// same major version and at least the same minor and patch.
func checkCompatible(have, want string) error {
	if !semver.IsValid(want) {
		return fmt.Errorf("invalid version %q", want)
	}
	if semver.Major(have) != semver.Major(want) {
		return fmt.Errorf("version %s is not compatible with %s", have, want)
	}
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("version %s is older than required %s", have, want)
	}
	return nil
}
