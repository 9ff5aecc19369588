package scanner

// catalogOrder fixes the port order used when no port spec is given.
var catalogOrder = []int{21, 22, 23, 25, 53, 80, 110, 143, 443, 445, 993, 995, 3306, 3389, 5432, 8080}

// services maps well-known TCP ports to service names. Consulted only for
// ports found open; never mutated after init.
var services = map[int]string{
	21:   "FTP",
	22:   "SSH",
	23:   "Telnet",
	25:   "SMTP",
	53:   "DNS",
	80:   "HTTP",
	110:  "POP3",
	143:  "IMAP",
	443:  "HTTPS",
	445:  "SMB",
	993:  "IMAPS",
	995:  "POP3S",
	3306: "MySQL",
	3389: "RDP",
	5432: "PostgreSQL",
	8080: "HTTP-Proxy",
}

// ServiceName looks up the well-known service for a port.
func ServiceName(port int) (string, bool) {
	name, ok := services[port]
	return name, ok
}

// DefaultPorts returns the catalog's port numbers in their fixed order.
func DefaultPorts() []int {
	out := make([]int, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}
