// Package console prints the banner, scan summaries, and password analysis
// results to the terminal.
package console

import (
	"fmt"
	"strings"

	"netrecon/models"
	"netrecon/passcheck"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBlue   = "\033[94m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorHeader = "\033[95m"
)

// Banner prints the tool banner.
func Banner() {
	fmt.Printf(`%s╔═══════════════════════════════════════════════════════════════╗
║  netrecon - Network Reconnaissance Tool                       ║
║  For Authorized Use Only                                      ║
╚═══════════════════════════════════════════════════════════════╝%s
`, colorBlue, colorReset)
}

// ScanStart announces the scan before any probe is dispatched.
func ScanStart(host string, portCount int) {
	fmt.Printf("\n%s[*] Scanning %s...%s\n", colorYellow, host, colorReset)
	fmt.Printf("%s[*] Ports to scan: %d%s\n", colorYellow, portCount, colorReset)
}

// PrintSummary prints the human-readable summary of one scan report.
func PrintSummary(report *models.ScanReport) {
	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s%s\n  SCAN SUMMARY\n%s%s\n", colorHeader, rule, rule, colorReset)
	fmt.Printf("  Host: %s\n", report.Host)
	fmt.Printf("  Scan Time: %s\n", report.ScanTime.Format("2006-01-02T15:04:05"))
	fmt.Printf("  Open Ports: %d\n", len(report.OpenPorts))
	fmt.Printf("  Closed Ports: %d\n", report.ClosedPorts)

	if len(report.OpenPorts) > 0 {
		fmt.Printf("\n%s  Open Ports:%s\n", colorGreen, colorReset)
		for _, pi := range report.OpenPorts {
			service := "Unknown"
			if pi.Service != nil {
				service = *pi.Service
			}
			fmt.Printf("    - %d/tcp (%s)\n", pi.Port, service)
		}
	}
	fmt.Printf("%s%s%s\n", colorHeader, rule, colorReset)
}

// Saved reports where the JSON report landed.
func Saved(path string) {
	fmt.Printf("%s[+] Results saved to %s%s\n", colorGreen, path, colorReset)
}

// PrintAnalysis prints the result of a password analysis.
func PrintAnalysis(a passcheck.Analysis) {
	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n  PASSWORD ANALYSIS RESULTS\n%s\n", rule, rule)
	fmt.Printf("  Length: %d characters\n", a.Length)
	fmt.Printf("  Score: %d/100\n", a.Score)
	fmt.Printf("  Strength: %s%s%s\n", strengthColor(a.Strength), a.Strength, colorReset)

	fmt.Printf("\n  Complexity Check:\n")
	fmt.Printf("    %s Uppercase letters\n", mark(a.Complexity.Uppercase))
	fmt.Printf("    %s Lowercase letters\n", mark(a.Complexity.Lowercase))
	fmt.Printf("    %s Numbers\n", mark(a.Complexity.Numbers))
	fmt.Printf("    %s Special characters\n", mark(a.Complexity.Special))

	if a.Common {
		fmt.Printf("\n  %s[!] WARNING: This is a commonly used password!%s\n", colorRed, colorReset)
	}
	if len(a.Warnings) > 0 {
		fmt.Printf("\n  Warnings:\n")
		for _, w := range a.Warnings {
			fmt.Printf("    %s[!] %s%s\n", colorYellow, w, colorReset)
		}
	}

	fmt.Printf("\n  Hash Values:\n")
	fmt.Printf("    MD5: %s\n", a.Hashes.MD5)
	fmt.Printf("    SHA-256: %s\n", a.Hashes.SHA256)
	fmt.Printf("%s\n", rule)
}

func mark(ok bool) string {
	if ok {
		return "[+]"
	}
	return "[-]"
}

func strengthColor(strength string) string {
	switch strength {
	case passcheck.StrengthStrong, passcheck.StrengthGood:
		return colorGreen
	case passcheck.StrengthModerate:
		return colorYellow
	default:
		return colorRed
	}
}
