package scanner

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"netrecon/models"
)

// Defaults applied by New for zero-valued settings.
const (
	DefaultTimeout     = 1 * time.Second
	DefaultConcurrency = 50
)

// ErrConfig reports an unusable scanner configuration.
var ErrConfig = errors.New("invalid scanner config")

// Scanner runs bounded-concurrency connect scans against a single host.
// Timeout bounds each individual connection attempt; Concurrency caps how
// many probes are in flight at once.
type Scanner struct {
	Timeout     time.Duration
	Concurrency int

	// probe stands in for Probe in tests.
	probe func(host string, port int, timeout time.Duration) models.PortInfo
}

// New returns a Scanner, filling in defaults for zero values.
func New(timeout time.Duration, concurrency int) *Scanner {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	return &Scanner{Timeout: timeout, Concurrency: concurrency}
}

// Scan probes every port in ports exactly once and aggregates the outcomes
// into a single report. It blocks until every dispatched probe has finished;
// no probe is retried or abandoned. Open ports are recorded in the order
// their probes completed, which varies run to run with network timing.
// For any completed scan, ClosedPorts + len(OpenPorts) == len(ports).
func (s *Scanner) Scan(host string, ports []int) (*models.ScanReport, error) {
	if s.Concurrency <= 0 {
		return nil, fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrConfig, s.Concurrency)
	}
	probe := s.probe
	if probe == nil {
		probe = Probe
	}

	report := &models.ScanReport{
		Host:      host,
		ScanTime:  time.Now(),
		OpenPorts: make([]models.PortInfo, 0, len(ports)),
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.Concurrency)
	resCh := make(chan models.PortInfo, len(ports))

	for _, p := range ports {
		wg.Add(1)
		sem <- struct{}{}
		go func(port int) {
			defer wg.Done()
			defer func() { <-sem }()
			resCh <- probe(host, port, s.Timeout)
		}(p)
	}

	wg.Wait()
	close(resCh)

	for pi := range resCh {
		if pi.Status == models.StatusOpen {
			report.OpenPorts = append(report.OpenPorts, pi)
		} else {
			report.ClosedPorts++
		}
	}

	return report, nil
}
