// Package matcher selects the configured zone that applies to a UNC path.
package matcher

import (
	"sort"
	"strings"

	"zonepath/internal/config"
)

// MatchResult represents the result of matching a path against zones.
type MatchResult struct {
	Matched bool
	Zone    *config.Zone
}

// Match evaluates an input path against the configured zones.
// A zone applies when its filer root occurs in the input as a literal
// substring. Zones are tried longest-root-first so the most specific zone
// wins when one root is a prefix of another. A non-matched result is
// returned when no zone applies; the caller decides which mapping to fall
// back to, since an unmatched input is not an error.
func Match(input string, zones []config.Zone) *MatchResult {
	if len(zones) == 0 {
		return &MatchResult{Matched: false}
	}

	// Sort zones by root length descending for longest-match-first
	sortedZones := make([]config.Zone, len(zones))
	copy(sortedZones, zones)
	sort.Slice(sortedZones, func(i, j int) bool {
		return len(sortedZones[i].FilerRoot) > len(sortedZones[j].FilerRoot)
	})

	for i := range sortedZones {
		zone := &sortedZones[i]
		if zone.FilerRoot == "" {
			continue
		}
		if strings.Contains(input, zone.FilerRoot) {
			return &MatchResult{
				Matched: true,
				Zone:    zone,
			}
		}
	}

	return &MatchResult{Matched: false}
}
