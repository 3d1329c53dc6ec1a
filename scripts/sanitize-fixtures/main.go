// Strips real traveller data from captured portal fixtures before they are
// committed. Run after scripts/capture-page.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hendrawanz/ecard-filler/internal/automator/testutil"
)

func main() {
	portalCode := flag.String("portal", "ecd", "Portal code")
	dryRun := flag.Bool("dry-run", false, "Show what would be changed without modifying files")
	flag.Parse()

	fixturesDir := filepath.Join("internal", "automator", "portal", *portalCode, "testdata", "fixtures")

	files, err := filepath.Glob(filepath.Join(fixturesDir, "*.html"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No HTML files found in %s\n", fixturesDir)
		os.Exit(1)
	}

	fmt.Printf("🔒 Sanitizing fixtures for %s\n", *portalCode)
	if *dryRun {
		fmt.Println("    (DRY RUN - no files will be modified)")
	}
	fmt.Println()

	for _, file := range files {
		sanitizeFile(file, *dryRun)
	}

	fmt.Println()
	fmt.Println("✅ Sanitization complete!")
	if *dryRun {
		fmt.Println("    Run without --dry-run to apply changes")
	}
}

func sanitizeFile(path string, dryRun bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ Error reading %s: %v\n", path, err)
		return
	}

	sanitized, changes := testutil.SanitizeFixture(string(content))
	filename := filepath.Base(path)

	if len(changes) == 0 {
		fmt.Printf("📄 %s: No personal data found\n", filename)
		return
	}

	fmt.Printf("📄 %s: Found personal data\n", filename)
	for _, change := range changes {
		fmt.Printf("  - %s\n", change)
	}

	if !dryRun {
		if err := os.WriteFile(path, []byte(sanitized), 0o644); err != nil {
			fmt.Printf("    ❌ Error writing %s: %v\n", path, err)
		} else {
			fmt.Println("    ✅ Sanitized and saved")
		}
	}
}
