package models

import (
	"time"
)

// ScanReport aggregates one scan of a single host. OpenPorts holds the open
// outcomes in the order their probes completed; every non-open outcome only
// bumps ClosedPorts. The gorm bookkeeping columns are kept out of the JSON
// form so a serialized report carries exactly the scan fields.
type ScanReport struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	Host        string     `gorm:"index" json:"host"`
	ScanTime    time.Time  `json:"scan_time"`
	OpenPorts   []PortInfo `gorm:"foreignKey:ReportID" json:"open_ports"`
	ClosedPorts int        `json:"closed_ports"`
}
