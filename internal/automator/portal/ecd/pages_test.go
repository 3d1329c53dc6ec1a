package ecd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
	"github.com/hendrawanz/ecard-filler/internal/automator/testutil"
)

func TestDetectPage_ByURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want portal.Page
	}{
		{"personal info", PortalBaseURL + "/personal-information", portal.PagePersonalInfo},
		{"travel details", PortalBaseURL + "/travel-detail", portal.PageTravelDetails},
		{"transportation", PortalBaseURL + "/transportation", portal.PageTransportAddress},
		{"declaration", PortalBaseURL + "/declaration", portal.PageDeclaration},
		{"group travel segment", PortalBaseURL + "/travel-detail/group", portal.PageTravelDetails},
		{"success", PortalBaseURL + "/submission-success", portal.PageSubmitted},
		{"unrelated url empty html", "https://example.com/", portal.PageUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectPage(tc.url, "<html><body></body></html>"))
		})
	}
}

func TestDetectPage_ByHeadingWhenURLInconclusive(t *testing.T) {
	// SPA route not updated: the URL says nothing, the heading decides.
	tests := []struct {
		name    string
		fixture string
		want    portal.Page
	}{
		{"personal info heading", "personal_info", portal.PagePersonalInfo},
		{"travel details heading", "travel_details", portal.PageTravelDetails},
		{"declaration heading", "declaration", portal.PageDeclaration},
		{"success heading", "success", portal.PageSubmitted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			html := testutil.LoadFixture(t, "ecd", tc.fixture)
			assert.Equal(t, tc.want, DetectPage("https://ecd.imigrasi.go.id/app", html))
		})
	}
}

func TestDetectPage_SilentRejectionStaysOnPriorPage(t *testing.T) {
	// A "Next" click that changes nothing must re-derive the prior page,
	// never assume progress.
	html := testutil.LoadFixture(t, "ecd", "declaration")
	url := "https://ecd.imigrasi.go.id/app"

	before := DetectPage(url, html)
	after := DetectPage(url, html) // DOM unchanged after the click

	assert.Equal(t, portal.PageDeclaration, before)
	assert.Equal(t, before, after)
}

func TestIsGroupPage(t *testing.T) {
	groupHTML := testutil.LoadFixture(t, "ecd", "travel_group")
	singleHTML := testutil.LoadFixture(t, "ecd", "travel_details")

	assert.True(t, IsGroupPage("https://ecd.imigrasi.go.id/app", groupHTML), "traveller cards mark a group page")
	assert.True(t, IsGroupPage(PortalBaseURL+"/travel-detail/group", singleHTML), "group URL segment marks a group page")
	assert.False(t, IsGroupPage("https://ecd.imigrasi.go.id/app", singleHTML))
}

func TestHasBlockingPopup(t *testing.T) {
	withPopup := testutil.LoadFixture(t, "ecd", "declaration_popup")
	without := testutil.LoadFixture(t, "ecd", "declaration")

	assert.True(t, hasBlockingPopup(withPopup))
	assert.False(t, hasBlockingPopup(without))
}
