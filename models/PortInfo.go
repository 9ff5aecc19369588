package models

// Port states reported by a probe.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// PortInfo is the outcome of probing a single TCP port. Service is set only
// for an open port listed in the service catalog; it stays nil otherwise.
type PortInfo struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	ReportID uint    `gorm:"index" json:"-"`
	Port     int     `json:"port"`
	Status   string  `json:"status"`
	Service  *string `json:"service"`
}
