package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"netrecon/config"
	"netrecon/console"
	"netrecon/handlers"
	"netrecon/models"
	"netrecon/output"
	"netrecon/passcheck"
	"netrecon/scanner"
)

func main() {
	var (
		target    = flag.String("target", "", "target IP address or hostname")
		portSpec  = flag.String("ports", "", "ports to scan (e.g. 22,80,443 or 1-1000); default: common ports")
		workers   = flag.Int("workers", scanner.DefaultConcurrency, "number of concurrent probes")
		timeoutMs = flag.Int("timeout", 1000, "per-port connect timeout in milliseconds")
		outPath   = flag.String("output", "", "write the JSON report to this file")
		password  = flag.String("password", "", "analyze a password instead of scanning")
		serve     = flag.Bool("serve", false, "run the HTTP API server")
		cfgPath   = flag.String("config", "config.yaml", "path to the YAML config file")
	)
	flag.Parse()

	console.Banner()

	if *password != "" {
		console.PrintAnalysis(passcheck.Analyze(*password))
		return
	}

	if *serve {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		runServer(cfg)
		return
	}

	if *target == "" {
		fmt.Fprintln(os.Stderr, "Error: specify a target with -target")
		flag.Usage()
		os.Exit(1)
	}

	ports, err := scanner.ResolvePorts(*portSpec)
	if err != nil {
		log.Fatalf("Invalid ports: %v", err)
	}

	s := scanner.New(time.Duration(*timeoutMs)*time.Millisecond, *workers)
	console.ScanStart(*target, len(ports))

	report, err := s.Scan(*target, ports)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	console.PrintSummary(report)

	if *outPath != "" {
		if err := output.WriteReport(*outPath, report); err != nil {
			log.Fatalf("Failed to save report: %v", err)
		}
		console.Saved(*outPath)
	}
}

func runServer(cfg *config.Config) {
	db, err := gorm.Open(mysql.Open(cfg.Server.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.ScanReport{}, &models.PortInfo{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	scanHandler := handlers.NewScanHandler(db, cfg)

	router := gin.Default()
	router.POST("/api/scan", scanHandler.ScanNetwork)
	router.GET("/api/scans", scanHandler.GetScanResults)
	router.GET("/api/scans/:id", scanHandler.GetScanByID)
	router.POST("/api/password", handlers.AnalyzePassword)

	log.Println("Server starting on", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
