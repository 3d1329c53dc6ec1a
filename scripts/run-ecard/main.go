// Debug driver: runs one full e-arrival-card submission against the real
// portal with a visible browser. Reads configuration from .env / environment
// and the applicant form from a JSON file.
//
// Usage:
//
//	go run ./scripts/run-ecard -form=applicant.json
//	ECARD_KEEP_OPEN=1 go run ./scripts/run-ecard -form=applicant.json -headless=false
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/portal/ecd"
)

func main() {
	formPath := flag.String("form", "", "Path to applicant form JSON")
	headless := flag.Bool("headless", false, "Run the browser headless")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall run deadline")
	flag.Parse()

	if *formPath == "" {
		fmt.Println("Usage: go run ./scripts/run-ecard -form=applicant.json")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment as-is")
	}

	f, err := loadForm(*formPath)
	if err != nil {
		fmt.Printf("Error loading form: %v\n", err)
		os.Exit(1)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	opts := []ecd.Option{
		ecd.WithHeadless(*headless),
		ecd.WithTimeout(*timeout),
		ecd.WithLogger(log),
		ecd.WithProgress(func(ev form.ProgressEvent) {
			fmt.Printf("  [%3d%%] %-24s %s\n", ev.Progress, ev.Step, ev.Message)
		}),
	}
	if os.Getenv("ECARD_KEEP_OPEN") != "" {
		opts = append(opts, ecd.WithKeepOpen(true))
	}
	if url := os.Getenv("ECARD_PORTAL_URL"); url != "" {
		opts = append(opts, ecd.WithPortalURL(url))
	}

	a, err := ecd.New(opts...)
	if err != nil {
		fmt.Printf("Error launching browser: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = a.Close() }()

	fmt.Printf("Submitting arrival card for %s (%d traveller(s))\n",
		f.FullName, f.TravellerCount())

	result, err := a.Run(context.Background(), f)
	if err != nil {
		var autoErr *form.AutomationError
		if errors.As(err, &autoErr) {
			fmt.Printf("\n❌ Run failed [%s] at step %q: %v\n", autoErr.Code(), autoErr.Step, autoErr)
		} else {
			fmt.Printf("\n❌ Run failed: %v\n", err)
		}
		fmt.Printf("   Finish manually at: %s\n", result.FallbackURL)
		os.Exit(1)
	}

	fmt.Println("\n✅ Submission complete")
	fmt.Printf("   Submission ID: %s\n", result.Details.SubmissionID)
	fmt.Printf("   Passenger:     %s (%s)\n", result.Details.PassengerName, result.Details.Nationality)
	fmt.Printf("   Status:        %s\n", result.Details.Status)

	if out := os.Getenv("ECARD_QR_OUT"); out != "" && result.QRCode != nil {
		img, decErr := base64.StdEncoding.DecodeString(result.QRCode.ImageData)
		if decErr == nil {
			decErr = os.WriteFile(out, img, 0o644)
		}
		if decErr != nil {
			fmt.Printf("   ⚠️  Could not save QR image: %v\n", decErr)
		} else {
			fmt.Printf("   QR image saved: %s (%s, %d bytes)\n", out, result.QRCode.Format, result.QRCode.Size)
		}
	}
}

func loadForm(path string) (*form.ApplicantForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f form.ApplicantForm
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}
