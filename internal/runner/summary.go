package runner

import "fmt"

// Summary represents the overall results of a stream-mode run.
type Summary struct {
	Total        int
	Matched      int
	Unmatched    int
	ListFailures int
}

// Add folds a single result into the summary.
func (s *Summary) Add(result Result) {
	s.Total++
	if result.Matched {
		s.Matched++
	} else {
		s.Unmatched++
	}
	if result.ListErr != nil {
		s.ListFailures++
	}
}

// HasErrors returns true if any listing failed during the run.
func (s *Summary) HasErrors() bool {
	return s.ListFailures > 0
}

// PrintSummary returns a formatted summary string.
func (s *Summary) PrintSummary() string {
	if s.ListFailures > 0 {
		return fmt.Sprintf("Normalized %d paths: %d matched, %d unmatched, %d listing failures",
			s.Total, s.Matched, s.Unmatched, s.ListFailures)
	}
	return fmt.Sprintf("Normalized %d paths: %d matched, %d unmatched",
		s.Total, s.Matched, s.Unmatched)
}
