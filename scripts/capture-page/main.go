// Interactive fixture capture tool. Opens a visible browser on the portal
// and saves each wizard page as an HTML fixture plus a reference screenshot,
// for use by the parser and detection tests.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	browserutil "github.com/hendrawanz/ecard-filler/internal/automator/browser"
)

// Pages to capture, in wizard order.
var capturePages = []PageCapture{
	{Name: "personal_info", Instructions: "Open the portal landing page (personal information step)"},
	{Name: "travel_details", Instructions: "Fill personal info and advance to travel details"},
	{Name: "travel_group", Instructions: "If testing a group: add a family member so traveller cards appear (or skip)"},
	{Name: "transportation", Instructions: "Advance to the transportation & address step"},
	{Name: "declaration", Instructions: "Advance to the declaration step"},
	{Name: "declaration_popup", Instructions: "Submit with a field left blank so the incomplete-data popup shows (or skip)"},
	{Name: "success", Instructions: "Complete the submission and wait for the QR page"},
	{Name: "success_viewqr", Instructions: "For groups: the interstitial page with the view-QR link (or skip)"},
}

type PageCapture struct {
	Name         string
	Instructions string
}

func main() {
	portalURL := flag.String("url", "https://ecd.imigrasi.go.id/arrival-card", "Portal entry URL")
	outputDir := flag.String("output", "", "Output directory (default: internal/automator/portal/ecd/testdata/fixtures)")
	flag.Parse()

	outDir := *outputDir
	if outDir == "" {
		outDir = filepath.Join("internal", "automator", "portal", "ecd", "testdata", "fixtures")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║           E-ARRIVAL-CARD FIXTURE CAPTURE TOOL                  ║")
	fmt.Println("╠════════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Portal: %-52s  ║\n", *portalURL)
	fmt.Printf("║  Output: %-52s  ║\n", outDir)
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Launch visible browser without the automation tells; the portal runs
	// bot detection on its entry page.
	url := launcher.New().
		Headless(false).
		Set("disable-blink-features", "AutomationControlled").
		Set("exclude-switches", "enable-automation").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("window-size", "1920,1080").
		Devtools(false).
		MustLaunch()

	browser := rod.New().
		ControlURL(url).
		MustConnect()

	defer browser.MustClose()

	page := stealth.MustPage(browser)
	page.MustNavigate(*portalURL)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("📋 Instructions:")
	fmt.Println("   - A browser window has opened on the portal")
	fmt.Println("   - Follow the prompts below")
	fmt.Println("   - Press ENTER after completing each step")
	fmt.Println("   - Type 'skip' to skip a page")
	fmt.Println("   - Type 'quit' to exit")
	fmt.Println()

	for _, capture := range capturePages {
		fmt.Println("────────────────────────────────────────────────────────────────")
		fmt.Printf("📄 Capturing: %s.html\n", capture.Name)
		fmt.Printf("📝 Instructions: %s\n", capture.Instructions)
		fmt.Print("   Press ENTER when ready (or 'skip'/'quit'): ")

		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))

		if input == "quit" {
			fmt.Println("\n👋 Exiting...")
			break
		}

		if input == "skip" {
			fmt.Printf("   ⏭️  Skipped %s\n\n", capture.Name)
			continue
		}

		// Let the widget framework finish its re-renders before snapshotting.
		browserutil.WaitDOMSettled(page, 3*time.Second)

		screenshotPath := filepath.Join(outDir, capture.Name+".png")
		if buf, err := page.Screenshot(false, nil); err == nil {
			if writeErr := os.WriteFile(screenshotPath, buf, 0o644); writeErr != nil {
				fmt.Printf("   ⚠️  Error saving screenshot: %v\n", writeErr)
			} else {
				fmt.Printf("   📸 Screenshot: %s\n", screenshotPath)
			}
		} else {
			fmt.Printf("   ⚠️  Screenshot failed: %v\n", err)
		}

		html, err := page.HTML()
		if err != nil {
			fmt.Printf("   ❌ Error capturing HTML: %v\n\n", err)
			continue
		}

		htmlPath := filepath.Join(outDir, capture.Name+".html")
		if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
			fmt.Printf("   ❌ Error saving HTML: %v\n\n", err)
			continue
		}

		pageURL := page.MustInfo().URL

		fmt.Printf("   ✅ Saved: %s\n", htmlPath)
		fmt.Printf("   🔗 URL: %s\n\n", pageURL)
	}

	saveMetadata(outDir, *portalURL)

	fmt.Println("════════════════════════════════════════════════════════════════")
	fmt.Println("✅ Capture complete!")
	fmt.Println()
	fmt.Println("⚠️  IMPORTANT: Strip real passport numbers, names and contact data")
	fmt.Println("   from the fixtures before committing!")
	fmt.Println("════════════════════════════════════════════════════════════════")
}

func saveMetadata(outDir, portalURL string) {
	metadata := fmt.Sprintf(`# Fixture Metadata
portal: %s
captured_at: %s
captured_by: %s

## Files
See .html files in this directory.
Screenshots (.png) provided for visual reference.

## Notes
- Replace personal data with obviously fake values before committing
- Dynamic id suffixes on inputs vary per session; parsers match prefixes
- Re-run capture if the portal markup changes and tests start failing
`, portalURL, time.Now().Format(time.RFC3339), os.Getenv("USER"))

	metaPath := filepath.Join(outDir, "README.md")
	if err := os.WriteFile(metaPath, []byte(metadata), 0o644); err != nil {
		fmt.Printf("⚠️  Error saving metadata: %v\n", err)
	}
}
