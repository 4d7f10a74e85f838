// Package runner coordinates the zonepath normalization workflow: zone
// selection, the path transform, reporting, the optional listing, and the
// optional audit record.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"zonepath/internal/audit"
	"zonepath/internal/config"
	"zonepath/internal/lister"
	"zonepath/internal/matcher"
	"zonepath/internal/normalizer"
	"zonepath/internal/output"
)

// Options configures a normalization run.
type Options struct {
	TestMode bool   // list the normalized path after reporting it
	ZoneName string // force a zone by name instead of matching
}

// Result represents the outcome of normalizing a single path.
type Result struct {
	Input      string
	Normalized string
	Zone       string
	Matched    bool
	ListErr    error // listing failure, only set in test mode
}

// Runner executes normalizations against the current configuration.
// The configuration is immutable per call; stream mode may swap in a freshly
// loaded configuration between calls via SetConfig.
type Runner struct {
	mu      sync.RWMutex
	cfg     *config.Configuration
	out     *output.Output
	lister  lister.Lister
	auditor *audit.Writer // nil when auditing is disabled
}

// New creates a Runner. The lister is the injected listing capability used by
// test mode; auditor may be nil.
func New(cfg *config.Configuration, out *output.Output, l lister.Lister, auditor *audit.Writer) *Runner {
	return &Runner{
		cfg:     cfg,
		out:     out,
		lister:  l,
		auditor: auditor,
	}
}

// SetConfig replaces the configuration used by subsequent calls.
func (r *Runner) SetConfig(cfg *config.Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

// configSnapshot returns the configuration used for one call.
func (r *Runner) configSnapshot() *config.Configuration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// selectZone picks the zone for an input. A forced zone name must exist; an
// unmatched input silently falls back to the default zone, mirroring the
// transform's own behavior of passing unmatched input through unchanged.
func (r *Runner) selectZone(cfg *config.Configuration, input string, opts Options) (*config.Zone, error) {
	if opts.ZoneName != "" {
		zone, ok := cfg.ZoneByName(opts.ZoneName)
		if !ok {
			return nil, fmt.Errorf("unknown zone: %s", opts.ZoneName)
		}
		return zone, nil
	}

	if m := matcher.Match(input, cfg.Zones); m.Matched {
		return m.Zone, nil
	}
	return cfg.Default(), nil
}

// Run normalizes a single path, prints the report block, and in test mode
// lists the normalized path. The returned error covers configuration misuse
// only; a listing failure lives in Result.ListErr, reported but not wrapped.
func (r *Runner) Run(input string, opts Options) (Result, error) {
	cfg := r.configSnapshot()

	zone, err := r.selectZone(cfg, input, opts)
	if err != nil {
		return Result{}, err
	}

	res := normalizer.Normalize(normalizer.Mapping{
		FilerRoot:      zone.FilerRoot,
		LocalFilerPath: zone.LocalFilerPath,
	}, input)

	r.out.Report(zone.FilerRoot, input, res.Path)
	r.out.Verbose("zone: %s, matched: %v", zone.Name, res.Matched)

	result := Result{
		Input:      input,
		Normalized: res.Path,
		Zone:       zone.Name,
		Matched:    res.Matched,
	}

	if opts.TestMode {
		entries, err := r.lister.List(res.Path)
		if err != nil {
			// The failure is surfaced exactly as the listing reports it.
			r.out.Error("%v", err)
			result.ListErr = err
		} else {
			r.out.Listing(entries)
		}
	}

	r.record(result, opts)
	return result, nil
}

// RunStream normalizes one path per line from in. When output goes to a
// terminal or verbose mode is enabled, each path prints the full report
// block; a piped stream gets one normalized path per line so the output
// stays machine-consumable. A summary of the whole stream is returned.
func (r *Runner) RunStream(in io.Reader, opts Options) (*Summary, error) {
	summary := &Summary{}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := scanner.Text()
		if input == "" {
			continue
		}

		cfg := r.configSnapshot()
		zone, err := r.selectZone(cfg, input, opts)
		if err != nil {
			return summary, err
		}

		res := normalizer.Normalize(normalizer.Mapping{
			FilerRoot:      zone.FilerRoot,
			LocalFilerPath: zone.LocalFilerPath,
		}, input)

		if r.out.IsVerbose() || r.out.IsTTY() {
			r.out.Report(zone.FilerRoot, input, res.Path)
		} else {
			r.out.Result(res.Path)
		}

		result := Result{
			Input:      input,
			Normalized: res.Path,
			Zone:       zone.Name,
			Matched:    res.Matched,
		}

		if opts.TestMode {
			entries, err := r.lister.List(res.Path)
			if err != nil {
				r.out.Error("%v", err)
				result.ListErr = err
			} else {
				r.out.Listing(entries)
			}
		}

		r.record(result, opts)
		summary.Add(result)
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read input stream: %w", err)
	}

	return summary, nil
}

// record writes an audit event for the result when auditing is enabled.
func (r *Runner) record(result Result, opts Options) {
	if r.auditor == nil {
		return
	}

	event := audit.Event{
		Timestamp: time.Now(),
		Zone:      result.Zone,
		Input:     result.Input,
		Output:    result.Normalized,
		Matched:   result.Matched,
		Tested:    opts.TestMode,
	}
	if result.ListErr != nil {
		event.ListError = result.ListErr.Error()
	}

	if err := r.auditor.Record(event); err != nil {
		r.out.Error("audit: %v", err)
	}
}
