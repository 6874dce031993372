// Package scrape pulls client requisites from a Lursoft company page so
// they don't have to be retyped. Best effort only: whatever fields the
// page doesn't yield stay empty and the caller fills them in by hand.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/logger"
)

// registration numbers in the Latvian register are exactly 11 digits
var regNoPattern = regexp.MustCompile(`\b(\d{11})\b`)

type Scraper struct {
	client *http.Client
	log    zerolog.Logger
}

func New() *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: 15 * time.Second},
		log:    logger.WithComponent("scrape"),
	}
}

// Fetch loads the company page and extracts name, registration number,
// derived VAT number and address. A reachable page never returns an
// error; only transport and parse failures do.
func (s *Scraper) Fetch(ctx context.Context, url string) (domain.Client, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Client{}, fmt.Errorf("scrape %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; pavadzimes/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Client{}, fmt.Errorf("scrape %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Client{}, fmt.Errorf("scrape %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.Client{}, fmt.Errorf("scrape %s: %w", url, err)
	}

	c := parse(doc)
	s.log.Debug().Str("url", url).Str("name", c.Name).Str("reg_no", c.RegNo).
		Msg("scraped company page")
	return c, nil
}

func parse(doc *goquery.Document) domain.Client {
	var c domain.Client

	c.Name = companyName(doc)
	c.RegNo = labeledValue(doc, []string{"Reģistrācijas numurs", "Reģ. nr", "Reg. No"}, extractRegNo)
	if c.RegNo != "" {
		c.VATNo = "LV" + c.RegNo
	}
	c.Address = labeledValue(doc, []string{"Juridiskā adrese", "Adrese"}, cleanText)

	return c
}

func companyName(doc *goquery.Document) string {
	if h1 := cleanText(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	// Fall back to the <title>, which carries the name before a separator.
	title := doc.Find("title").Text()
	for _, sep := range []string{"|", "–", "-"} {
		if i := strings.Index(title, sep); i > 0 {
			return cleanText(title[:i])
		}
	}
	return cleanText(title)
}

// labeledValue walks label-bearing elements and returns the extracted
// value from the first sibling or row cell that follows a matching label.
func labeledValue(doc *goquery.Document, labels []string, extract func(string) string) string {
	var out string
	doc.Find("th, td, dt, dd, span, div, p, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := cleanText(sel.Text())
		for _, label := range labels {
			if !strings.Contains(strings.ToLower(text), strings.ToLower(label)) {
				continue
			}
			// The value usually sits in the next cell, otherwise on the
			// same line after the label.
			if v := extract(cleanText(sel.Next().Text())); v != "" {
				out = v
				return false
			}
			rest := text[strings.Index(strings.ToLower(text), strings.ToLower(label))+len(label):]
			rest = strings.TrimLeft(rest, ":  ")
			if v := extract(rest); v != "" {
				out = v
				return false
			}
		}
		return true
	})
	return out
}

func extractRegNo(s string) string {
	m := regNoPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
