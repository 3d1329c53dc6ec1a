// Package testutil provides testing utilities for the automator packages,
// including a static-site replayer for hermetic browser tests.
package testutil

import (
	"log"
	"net/url"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// StaticSite serves canned HTML pages during test execution, keyed by URL
// path. Installed as a rod hijack handler, it lets navigator and extraction
// code run against a real browser without touching the portal.
type StaticSite struct {
	pages   map[string]string
	verbose bool
}

// StaticSiteOption configures a StaticSite.
type StaticSiteOption func(*StaticSite)

// WithVerbose enables logging of request matching.
func WithVerbose(enabled bool) StaticSiteOption {
	return func(s *StaticSite) { s.verbose = enabled }
}

// NewStaticSite creates an empty site.
func NewStaticSite(opts ...StaticSiteOption) *StaticSite {
	s := &StaticSite{pages: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPage registers the HTML served for a URL path (e.g. "/arrival-card").
func (s *StaticSite) AddPage(path, html string) {
	s.pages[normalizePath(path)] = html
}

// Middleware returns a rod hijack handler that serves the registered pages.
// Use with WithHijacker on the automator. Unknown document paths get a 404;
// subresource requests get an empty 200 so pages don't hang on assets.
func (s *StaticSite) Middleware() func(*rod.Hijack) {
	return func(ctx *rod.Hijack) {
		reqURL := ctx.Request.URL().String()

		path := "/"
		if parsed, err := url.Parse(reqURL); err == nil {
			path = normalizePath(parsed.Path)
		}

		if html, ok := s.pages[path]; ok {
			if s.verbose {
				log.Printf("[staticsite] %s -> %d bytes", path, len(html))
			}
			payload := ctx.Response.Payload()
			payload.ResponseCode = 200
			payload.ResponseHeaders = []*proto.FetchHeaderEntry{
				{Name: "Content-Type", Value: "text/html; charset=utf-8"},
			}
			payload.Body = []byte(html)
			return
		}

		if ctx.Request.Type() != proto.NetworkResourceTypeDocument {
			payload := ctx.Response.Payload()
			payload.ResponseCode = 200
			payload.Body = nil
			return
		}

		if s.verbose {
			log.Printf("[staticsite] 404: %s", path)
		}
		payload := ctx.Response.Payload()
		payload.ResponseCode = 404
		payload.Body = []byte("not found")
	}
}

func normalizePath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
