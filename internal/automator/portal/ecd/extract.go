package ecd

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hendrawanz/ecard-filler/internal/automator/form"
)

// The arrival-card number is a fixed-length digit run; everything else on
// the success page lacks semantic labels, so the remaining fields are
// matched heuristically.
var (
	arrivalCardNumberRe = regexp.MustCompile(`\b\d{12}\b`)
	allCapsSegmentRe    = regexp.MustCompile(`^[A-Z][A-Z .'\-]{2,40}$`)
	dataImageRe         = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)
)

// Label prefixes scanned for passport number and travel dates, in both
// portal languages.
var (
	passportLabels  = []string{"passport no", "passport number", "no paspor"}
	arrivalLabels   = []string{"arrival date", "tanggal kedatangan"}
	departureLabels = []string{"departure date", "tanggal keberangkatan"}
	statusLabels    = []string{"status"}
)

// uiNoiseSegments are all-caps strings the success page renders that are
// never the passenger name or nationality.
var uiNoiseSegments = map[string]bool{
	"ARRIVAL CARD":      true,
	"KARTU KEDATANGAN":  true,
	"QR CODE":           true,
	"QR":                true,
	"SUBMITTED":         true,
	"APPROVED":          true,
	"DOWNLOAD":          true,
	"VIEW QR CODE":      true,
	"LIHAT KODE QR":     true,
	"IMMIGRATION":       true,
	"CUSTOMS":           true,
	"REPUBLIC OF":       true,
	"REPUBLIK":          true,
}

// ParseArtifact extracts the QR graphic and reference metadata from a
// success-page HTML snapshot.
//
// A page without a QR graphic is a hard failure of the whole run, never a
// partial success: the contract is "success implies a usable QR artifact".
func ParseArtifact(html string) (*form.QRCode, *form.SubmissionDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", form.ErrNoArtifact, err)
	}

	qr, err := extractQR(doc)
	if err != nil {
		return nil, nil, err
	}

	details := &form.SubmissionDetails{
		SubmissionTime: time.Now(),
		Status:         "SUBMITTED",
	}

	text := doc.Find("body").Text()
	details.SubmissionID = arrivalCardNumberRe.FindString(text)

	name, nationality := extractNameAndNationality(text)
	details.PassengerName = name
	details.Nationality = nationality

	for _, line := range strings.Split(text, "\n") {
		scanLabelledLine(line, details)
	}

	return qr, details, nil
}

func extractQR(doc *goquery.Document) (*form.QRCode, error) {
	var qr *form.QRCode

	doc.Find(SelectorQRImage).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok {
			return true
		}
		m := dataImageRe.FindStringSubmatch(src)
		if m == nil {
			return true
		}

		payload, err := base64.StdEncoding.DecodeString(m[2])
		if err != nil {
			return true // malformed data URI, keep looking
		}

		qr = &form.QRCode{
			ImageData: m[2],
			Format:    m[1],
			Size:      len(payload),
		}
		return false
	})

	if qr == nil {
		return nil, fmt.Errorf("%w: success page has no QR graphic", form.ErrNoArtifact)
	}
	return qr, nil
}

// extractNameAndNationality scans the page text for all-caps short segments.
// The first multi-word segment is taken as the passenger name, the next
// segment after it as the nationality. The page has no semantic labels for
// either.
func extractNameAndNationality(text string) (name, nationality string) {
	for _, line := range strings.Split(text, "\n") {
		seg := strings.TrimSpace(line)
		if !allCapsSegmentRe.MatchString(seg) || uiNoiseSegments[seg] {
			continue
		}

		if name == "" {
			if strings.Contains(seg, " ") {
				name = seg
			}
			continue
		}
		nationality = seg
		return name, nationality
	}
	return name, nationality
}

// scanLabelledLine fills passport number, dates and status from a
// "Label: value" line if the label matches a known prefix.
func scanLabelledLine(line string, details *form.SubmissionDetails) {
	label, value, found := strings.Cut(line, ":")
	if !found {
		return
	}
	label = strings.ToLower(strings.TrimSpace(label))
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	switch {
	case matchesAnyPrefix(label, passportLabels):
		if details.PassportNumber == "" {
			details.PassportNumber = value
		}
	case matchesAnyPrefix(label, arrivalLabels):
		if details.ArrivalDate == "" {
			details.ArrivalDate = value
		}
	case matchesAnyPrefix(label, departureLabels):
		if details.DepartureDate == "" {
			details.DepartureDate = value
		}
	case matchesAnyPrefix(label, statusLabels):
		details.Status = value
	}
}

func matchesAnyPrefix(label string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(label, p) {
			return true
		}
	}
	return false
}

// hasViewQRLink reports whether the success page requires following a
// secondary "view QR code" navigation before the graphic appears. Group
// submissions render this intermediate page.
func hasViewQRLink(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find(SelectorViewQRLink).Length() > 0
}
