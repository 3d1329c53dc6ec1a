package ecd

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
)

// DetectPage re-derives which wizard page is currently displayed from the
// page URL and an HTML snapshot. URL path fragments are checked first, then
// step headings, because the portal keeps the URL unchanged when it silently
// rejects a forward transition.
//
// Never assume a transition succeeded without running this against the live
// DOM.
func DetectPage(rawURL, html string) portal.Page {
	path := strings.ToLower(rawURL)

	switch {
	case strings.Contains(path, PathSuccess):
		return portal.PageSubmitted
	case strings.Contains(path, PathDeclaration):
		return portal.PageDeclaration
	case strings.Contains(path, PathTransport):
		return portal.PageTransportAddress
	case strings.Contains(path, PathTravel):
		return portal.PageTravelDetails
	case strings.Contains(path, PathPersonal):
		return portal.PagePersonalInfo
	}

	// URL was inconclusive (SPA route not updated); fall back to headings.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return portal.PageUnknown
	}

	heading := strings.ToLower(collectText(doc, SelectorStepHeading))
	if heading == "" {
		return portal.PageUnknown
	}

	for fragment, page := range map[string]portal.Page{
		PathSuccess:     portal.PageSubmitted,
		PathDeclaration: portal.PageDeclaration,
		PathTransport:   portal.PageTransportAddress,
		PathTravel:      portal.PageTravelDetails,
		PathPersonal:    portal.PagePersonalInfo,
	} {
		for _, needle := range stepHeadings[fragment] {
			if strings.Contains(heading, needle) {
				return page
			}
		}
	}

	return portal.PageUnknown
}

// IsGroupPage reports whether the current page branched into the group
// traveller flow. Detected from the live page (card containers or a /group
// URL segment), never from a precomputed flag: the portal decides the flow
// shape.
func IsGroupPage(rawURL, html string) bool {
	if strings.Contains(strings.ToLower(rawURL), "/"+PathGroup) {
		return true
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find(SelectorTravellerCard).Length() > 0
}

// hasBlockingPopup reports whether an "incomplete data" validation popup is
// present in the snapshot, in either portal language.
func hasBlockingPopup(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	text := strings.ToLower(collectText(doc, SelectorBlockingPopup))
	for _, w := range incompleteDataWording {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func collectText(doc *goquery.Document, selector string) string {
	var parts []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}
