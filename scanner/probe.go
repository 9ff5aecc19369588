package scanner

import (
	"net"
	"strconv"
	"time"

	"netrecon/models"
)

// Probe attempts one TCP connection to host:port under timeout and reports
// the outcome. It never fails outward: refusals, timeouts, unreachable hosts
// and resolution errors all fold into a closed port. The connection carries
// no data and is closed as soon as it is established.
func Probe(host string, port int, timeout time.Duration) models.PortInfo {
	pi := models.PortInfo{Port: port, Status: models.StatusClosed}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return pi
	}
	conn.Close()

	pi.Status = models.StatusOpen
	if name, ok := ServiceName(port); ok {
		pi.Service = &name
	}
	return pi
}
