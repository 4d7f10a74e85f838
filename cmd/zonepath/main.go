// Package main provides the CLI entry point for zonepath.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"

	"zonepath/internal/audit"
	"zonepath/internal/config"
	"zonepath/internal/lister"
	"zonepath/internal/output"
	"zonepath/internal/runner"
	"zonepath/internal/watcher"
)

// testToken is the only recognized value of the optional mode argument.
// Any other second argument is ignored.
const testToken = "test"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "zonepath.json", "path to the zone configuration file")
		zoneName   = flag.String("zone", "", "force a zone by name instead of matching the filer root")
		verbose    = flag.Bool("verbose", false, "enable verbose output")
		stdin      = flag.Bool("stdin", false, "read one path per line from standard input")
		recursive  = flag.Bool("R", false, "list recursively in test mode")
		initConfig = flag.Bool("init", false, "write a starter configuration file and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *initConfig {
		if err := writeStarterConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return 0
	}

	if !*stdin && flag.NArg() < 1 {
		flag.Usage()
		return 1
	}

	cfg, fromFile, err := resolveConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	outConfig := output.DefaultConfig()
	outConfig.Verbose = *verbose
	out := output.New(outConfig)

	var auditor *audit.Writer
	if cfg.Audit != nil && cfg.Audit.Enabled {
		auditor, err = audit.NewWriter(*cfg.Audit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer auditor.Close()
		out.Verbose("audit log: %s", auditor.LogPath())
	}

	r := runner.New(cfg, out, lister.OSLister{Recursive: *recursive}, auditor)

	opts := runner.Options{
		ZoneName: *zoneName,
	}

	if *stdin {
		opts.TestMode = flag.NArg() > 0 && flag.Arg(0) == testToken
		return runStream(r, out, *configPath, fromFile, opts)
	}

	opts.TestMode = flag.NArg() > 1 && flag.Arg(1) == testToken

	result, err := r.Run(flag.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if result.ListErr != nil {
		// Already reported verbatim; the listing outcome is the exit status.
		return 1
	}
	return 0
}

// runStream normalizes paths from stdin until EOF, hot-reloading the
// configuration file when it changes.
func runStream(r *runner.Runner, out *output.Output, configPath string, fromFile bool, opts runner.Options) int {
	if fromFile {
		w, err := watcher.New(configPath, func() {
			reloaded, err := config.Load(configPath)
			if err != nil {
				out.Error("config reload: %v", err)
				return
			}
			r.SetConfig(reloaded)
			out.Verbose("configuration reloaded from %s", configPath)
		}, func(err error) {
			out.Error("config watch: %v", err)
		})
		if err != nil {
			out.Error("config watch: %v", err)
		} else if err := w.Start(); err != nil {
			out.Error("config watch: %v", err)
		} else {
			defer w.Stop()
		}
	}

	summary, err := r.RunStream(os.Stdin, opts)
	if err != nil {
		out.Error("Error: %v", err)
		return 1
	}

	out.Info("%s", summary.PrintSummary())
	if summary.HasErrors() {
		return 1
	}
	return 0
}

// resolveConfig builds the active configuration. A zone defined through the
// environment takes precedence over the configuration file, in which case the
// file is not consulted at all.
func resolveConfig(configPath string) (*config.Configuration, bool, error) {
	if zone, ok := config.FromEnvironment(); ok {
		cfg := &config.Configuration{Zones: []config.Zone{zone}}
		cfg.ApplyAuditDefaults()
		return cfg, false, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// writeStarterConfig creates an example configuration, refusing to clobber
// an existing file.
func writeStarterConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	starter := &config.Configuration{
		Zones: []config.Zone{
			{
				Name:           "share",
				FilerRoot:      `\\fileserver\share`,
				LocalFilerPath: "/mnt/share",
			},
		},
		DefaultZone: "share",
	}
	starter.ApplyAuditDefaults()
	return config.Save(starter, path)
}

func usage() {
	fmt.Fprint(os.Stderr, heredoc.Doc(`
		Usage: zonepath [flags] <path> [test]
		       zonepath [flags] -stdin [test]

		Converts a UNC network path into the local path where the share is
		mounted. The optional literal argument "test" lists the normalized
		path to verify it exists.

		Configuration comes from a JSON zone file (see -init), or from the
		ZONEPATH_FILER_ROOT and ZONEPATH_LOCAL_PATH environment variables,
		which take precedence. A .env file in the working directory is
		honored.

		Flags:
	`))
	flag.PrintDefaults()
}
