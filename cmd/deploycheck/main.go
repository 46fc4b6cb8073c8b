// Deploy check: verifies the environment and probes the running API, then
// appends a human-readable report to logs/deploy-check.log. The exit code is
// always 0 so a failed check never blocks a deploy pipeline.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var report strings.Builder
	timestamp := time.Now().UTC().Format(time.RFC3339)
	report.WriteString(fmt.Sprintf("\n\n=== Environment check - %s ===\n", timestamp))

	logLine := func(msg string) {
		report.WriteString(msg + "\n")
		fmt.Println(msg)
	}

	logLine("Starting environment check...")

	// Required configuration
	required := []string{"DATABASE_DSN", "JWT_SECRET", "GOOGLE_API_KEY", "RESEND_API_KEY"}
	for _, key := range required {
		v := os.Getenv(key)
		if v == "" || strings.Contains(v, "<") {
			logLine(fmt.Sprintf("[WARN] %s: missing or not configured", key))
		} else {
			logLine(fmt.Sprintf("[OK]   %s: configured", key))
		}
	}

	// API probes
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	baseURL := "http://localhost:" + port
	endpoints := []string{"/api/status", "/api/auth/check", "/api/reservations"}

	client := &http.Client{Timeout: 5 * time.Second}
	for _, route := range endpoints {
		resp, err := client.Get(baseURL + route)
		if err != nil {
			logLine(fmt.Sprintf("[WARN] Endpoint %s: unreachable (%v)", route, err))
			continue
		}
		resp.Body.Close()
		if resp.StatusCode < 500 {
			logLine(fmt.Sprintf("[OK]   Endpoint %s: %s", route, resp.Status))
		} else {
			logLine(fmt.Sprintf("[WARN] Endpoint %s: %s", route, resp.Status))
		}
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" && !strings.Contains(secret, "<") {
		logLine("[OK]   JWT configured")
	} else {
		logLine("[WARN] JWT missing or not configured")
	}

	if key := os.Getenv("RESEND_API_KEY"); key != "" && !strings.Contains(key, "<") {
		logLine("[OK]   Email service configured")
	} else {
		logLine("[WARN] Email service not configured")
	}

	// Append the report
	logFile := filepath.Join("logs", "deploy-check.log")
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		log.Printf("Could not create log directory: %v", err)
		os.Exit(0)
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("Could not open %s: %v", logFile, err)
		os.Exit(0)
	}
	defer f.Close()
	if _, err := f.WriteString(report.String()); err != nil {
		log.Printf("Could not write the report: %v", err)
		os.Exit(0)
	}
	fmt.Println("Report saved to " + logFile)

	os.Exit(0)
}
