package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPortSpec reports a malformed port specification.
var ErrPortSpec = errors.New("invalid port spec")

// ResolvePorts turns a port specification into the concrete list of ports to
// probe. An empty spec selects the catalog's default ports. A spec containing
// "-" is an inclusive range, expanded ascending. Otherwise the spec is a
// comma-separated list kept exactly as written: no dedup, no sort, so the
// report order follows the user's input.
//
// Ports outside 1-65535 are not rejected here; the probe simply fails to
// connect and reports them closed.
func ResolvePorts(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return DefaultPorts(), nil
	}

	if strings.Contains(spec, "-") {
		bounds := strings.Split(spec, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: bad range %q", ErrPortSpec, spec)
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad range start %q", ErrPortSpec, bounds[0])
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad range end %q", ErrPortSpec, bounds[1])
		}
		if start > end {
			return nil, fmt.Errorf("%w: range start %d greater than end %d", ErrPortSpec, start, end)
		}
		ports := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			ports = append(ports, p)
		}
		return ports, nil
	}

	parts := strings.Split(spec, ",")
	ports := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: bad port %q", ErrPortSpec, part)
		}
		ports = append(ports, v)
	}
	return ports, nil
}
