package genius

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sukalov/lyricecho/internal/logger"
)

// Parser fetches Genius song pages and extracts their content.
type Parser struct {
	client *Client
}

// NewParser creates a parser whose page requests time out after timeout.
func NewParser(timeout time.Duration) *Parser {
	return &Parser{client: NewClient(timeout)}
}

// Page is a parsed song page.
type Page struct {
	URL string
	doc *goquery.Document
}

// FetchPage downloads and parses the song page at url.
func (p *Parser) FetchPage(ctx context.Context, url string) (*Page, error) {
	logger.Debug("fetching song page", "url", url)

	html, err := p.client.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	logger.Debug("fetched song page", "url", url, "html_length", len(html))
	return ParsePage(url, html)
}

// ParsePage parses raw markup.
func ParsePage(url, html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Page{URL: url, doc: doc}, nil
}

// ExtractLyrics fetches url and returns its lyrics.
func (p *Parser) ExtractLyrics(ctx context.Context, url string) (*LyricsResult, error) {
	page, err := p.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return page.LyricsResult(), nil
}

// ExtractFacts fetches url and returns its release date and description.
func (p *Parser) ExtractFacts(ctx context.Context, url string) (*FactsResult, error) {
	page, err := p.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return page.FactsResult(), nil
}

func (pg *Page) LyricsResult() *LyricsResult {
	text, found := pg.Lyrics()
	if !found {
		logger.Warn("lyrics container not found", "url", pg.URL, "selector", lyricsSelector)
	}
	return &LyricsResult{
		URL:       pg.URL,
		Text:      text,
		FetchedAt: time.Now(),
		Found:     found,
	}
}

func (pg *Page) FactsResult() *FactsResult {
	return &FactsResult{
		URL:         pg.URL,
		ReleaseDate: pg.ReleaseDate(),
		Facts:       pg.Facts(),
		FetchedAt:   time.Now(),
	}
}

// Lyrics returns the text of every lyrics container on the page, or the
// LyricsNotFound placeholder when there is none or all are empty.
func (pg *Page) Lyrics() (string, bool) {
	containers := pg.doc.Find(lyricsSelector)
	if containers.Length() == 0 {
		return LyricsNotFound, false
	}

	var b strings.Builder
	containers.Each(func(_ int, s *goquery.Selection) {
		writeText(&b, s)
		b.WriteString("\n")
	})

	text := cleanup(b.String())
	if text == "" {
		return LyricsNotFound, false
	}
	return text, true
}

// Facts renders every description block as "- fact" items, one block per
// line, or the FactsNotFound placeholder.
func (pg *Page) Facts() string {
	blocks := pg.doc.Find(descriptionSelector)
	if blocks.Length() == 0 {
		return FactsNotFound
	}

	var b strings.Builder
	b.WriteString("\nAdditional Information:\n")
	blocks.Each(func(_ int, block *goquery.Selection) {
		var facts []string
		block.Find("p").Each(func(_ int, p *goquery.Selection) {
			facts = append(facts, "- "+p.Text())
		})
		b.WriteString(strings.Join(facts, " "))
		b.WriteString("\n")
	})
	return b.String()
}

// ReleaseDate returns the text of the second date label on the page. The
// first label is a different dated element in the page header.
func (pg *Page) ReleaseDate() string {
	labels := pg.doc.Find(dateLabelSelector)
	if labels.Length() < 2 {
		return ReleaseDateNotFound
	}
	return strings.TrimSpace(labels.Eq(1).Text())
}

var markupSpace = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// writeText renders s as plain text: line breaks and block elements become
// newlines, excluded page furniture is skipped.
func writeText(b *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch name := goquery.NodeName(c); name {
		case "#text":
			b.WriteString(markupSpace.Replace(c.Text()))
		case "br":
			b.WriteString("\n")
		case "script", "style", "#comment":
		default:
			if c.Is(excludedSelector) {
				return
			}
			block := name == "div" || name == "p"
			if block {
				b.WriteString("\n")
			}
			writeText(b, c)
			if block {
				b.WriteString("\n")
			}
		}
	})
}
