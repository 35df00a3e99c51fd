package test

import (
	"fmt"
	"testing"
	"time"
)

// TestResult is the outcome of one timed subtest.
type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite runs timed subtests and prints a summary when closed, the way the
// portal's test output is read in CI logs.
type Suite struct {
	t       *testing.T
	name    string
	results []TestResult
}

// NewSuite creates a suite; defer s.PrintSummary() right after.
func NewSuite(t *testing.T, name string) *Suite {
	return &Suite{t: t, name: name}
}

// Run executes fn as a subtest and fails it when it takes longer than max.
// A zero max disables the timing assertion.
func (s *Suite) Run(name string, max time.Duration, fn func(t *testing.T)) {
	s.t.Run(name, func(t *testing.T) {
		start := time.Now()
		fn(t)
		d := time.Since(start)

		s.results = append(s.results, TestResult{Name: name, Duration: d, Passed: !t.Failed()})
		if max > 0 && d > max {
			t.Errorf("❌ %s performance test failed: took %v, expected less than %v", name, d, max)
		}
	})
}

// PrintSummary prints a summary of the suite results.
func (s *Suite) PrintSummary() {
	if len(s.results) == 0 {
		return
	}
	var total time.Duration
	passed := 0
	for _, r := range s.results {
		total += r.Duration
		if r.Passed {
			passed++
		}
	}

	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.name)
	fmt.Printf("   Passed: %d/%d ✅\n", passed, len(s.results))
	fmt.Printf("   Total Time: %v (avg %v)\n", total, total/time.Duration(len(s.results)))
	for _, r := range s.results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
}
