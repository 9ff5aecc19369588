package handlers

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"

	"netrecon/config"
	"netrecon/models"
	"netrecon/scanner"
)

// hostFanOut caps how many hosts of a CIDR target are scanned at once. Each
// host scan already runs its own bounded pool of port probes.
const hostFanOut = 16

type ScanRequest struct {
	Target      string `json:"target" binding:"required"`
	Ports       string `json:"ports"`
	Concurrency int    `json:"concurrency"`
	TimeoutMs   int    `json:"timeout_ms"`
}

type ScanHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewScanHandler(db *gorm.DB, cfg *config.Config) *ScanHandler {
	return &ScanHandler{DB: db, Cfg: cfg}
}

// HostsFromCIDR expands a CIDR block into its usable host addresses,
// trimming the network and broadcast addresses when the block has them.
func HostsFromCIDR(cidr string) ([]string, error) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	var ips []string
	for ip := ip.Mask(ipnet.Mask); ipnet.Contains(ip); incIP(ip) {
		ips = append(ips, ip.String())
	}
	if len(ips) > 2 {
		return ips[1 : len(ips)-1], nil
	}
	return ips, nil
}

func incIP(ip net.IP) {
	for j := len(ip) - 1; j >= 0; j-- {
		ip[j]++
		if ip[j] != 0 {
			break
		}
	}
}

// ScanNetwork runs a scan requested over the API. The target may be a single
// host or a CIDR block; every host gets its own report, saved to the
// database. Host-level fan-out is bounded separately from per-host probe
// concurrency.
func (h *ScanHandler) ScanNetwork(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Concurrency == 0 {
		req.Concurrency = h.Cfg.Scan.Concurrency
	}
	if req.Concurrency < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "concurrency must be at least 1"})
		return
	}
	if req.TimeoutMs == 0 {
		req.TimeoutMs = h.Cfg.Scan.TimeoutMs
	}

	ports, err := scanner.ResolvePorts(req.Ports)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ports: " + err.Error()})
		return
	}

	var targets []string
	if strings.Contains(req.Target, "/") {
		targets, err = HostsFromCIDR(req.Target)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CIDR: " + err.Error()})
			return
		}
	} else {
		targets = []string{req.Target}
	}

	s := scanner.New(time.Duration(req.TimeoutMs)*time.Millisecond, req.Concurrency)

	var (
		mu      sync.Mutex
		reports []*models.ScanReport
		alive   int
	)
	sem := semaphore.NewWeighted(hostFanOut)
	var wg sync.WaitGroup
	for _, host := range targets {
		if err := sem.Acquire(context.Background(), 1); err != nil {
			break
		}
		wg.Add(1)
		go func(host string) {
			defer wg.Done()
			defer sem.Release(1)
			report, err := s.Scan(host, ports)
			if err != nil {
				return
			}
			mu.Lock()
			reports = append(reports, report)
			if len(report.OpenPorts) > 0 {
				alive++
			}
			mu.Unlock()
		}(host)
	}
	wg.Wait()

	if len(reports) > 0 {
		if err := h.DB.Create(&reports).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save scan results: " + err.Error()})
			return
		}
	}

	ids := make([]uint, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":                  "Scan completed successfully",
		"report_ids":               ids,
		"hosts_scanned":            len(reports),
		"hosts_with_open_ports":    alive,
		"hosts_without_open_ports": len(reports) - alive,
	})
}

// GetScanResults lists every stored scan report.
func (h *ScanHandler) GetScanResults(c *gin.Context) {
	var scans []models.ScanReport
	if err := h.DB.Preload("OpenPorts").Find(&scans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scan results: " + err.Error()})
		return
	}

	out := make([]gin.H, 0, len(scans))
	for _, s := range scans {
		out = append(out, gin.H{"id": s.ID, "report": s})
	}
	c.JSON(http.StatusOK, out)
}

// GetScanByID returns one stored scan report.
func (h *ScanHandler) GetScanByID(c *gin.Context) {
	id := c.Param("id")
	var scan models.ScanReport
	if err := h.DB.Preload("OpenPorts").First(&scan, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": scan.ID, "report": scan})
}
