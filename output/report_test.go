package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"netrecon/models"
)

func sampleReport() *models.ScanReport {
	proxy := "HTTP-Proxy"
	ssh := "SSH"
	return &models.ScanReport{
		Host:     "127.0.0.1",
		ScanTime: time.Now().UTC(),
		// completion order, deliberately not sorted by port
		OpenPorts: []models.PortInfo{
			{Port: 8080, Status: models.StatusOpen, Service: &proxy},
			{Port: 22, Status: models.StatusOpen, Service: &ssh},
			{Port: 31337, Status: models.StatusOpen, Service: nil},
		},
		ClosedPorts: 13,
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	want := sampleReport()

	if err := WriteReport(path, want); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	got, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}

	if got.Host != want.Host {
		t.Fatalf("host mismatch: %q vs %q", got.Host, want.Host)
	}
	if got.ClosedPorts != want.ClosedPorts {
		t.Fatalf("closed count mismatch: %d vs %d", got.ClosedPorts, want.ClosedPorts)
	}
	if !got.ScanTime.Equal(want.ScanTime) {
		t.Fatalf("scan time mismatch: %v vs %v", got.ScanTime, want.ScanTime)
	}
	if len(got.OpenPorts) != len(want.OpenPorts) {
		t.Fatalf("open port count mismatch: %d vs %d", len(got.OpenPorts), len(want.OpenPorts))
	}
	for i := range want.OpenPorts {
		w, g := want.OpenPorts[i], got.OpenPorts[i]
		if g.Port != w.Port || g.Status != w.Status {
			t.Fatalf("entry %d mismatch: %+v vs %+v", i, g, w)
		}
		switch {
		case w.Service == nil && g.Service != nil:
			t.Fatalf("entry %d: expected nil service, got %q", i, *g.Service)
		case w.Service != nil && (g.Service == nil || *g.Service != *w.Service):
			t.Fatalf("entry %d: service mismatch", i)
		}
	}
}

func TestWriteReportCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.json")
	if err := WriteReport(path, sampleReport()); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}

func TestWriteReportUnwritablePath(t *testing.T) {
	// parent "directory" is a regular file, so the write cannot proceed
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	report := sampleReport()
	if err := WriteReport(filepath.Join(blocker, "report.json"), report); err == nil {
		t.Fatal("expected error writing under a regular file")
	}
	// the in-memory report stays usable after a failed write
	if report.Host != "127.0.0.1" || len(report.OpenPorts) != 3 {
		t.Fatalf("report corrupted by failed write: %+v", report)
	}
}

func TestReadReportMissingOrMalformed(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadReport(filepath.Join(dir, "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := ReadReport(bad); err == nil {
		t.Fatal("expected error for malformed report")
	}
}
