// Package scraper fetches an advertiser website and extracts the copy the
// generator uses as hints. It is best-effort text extraction, not a crawler.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
	"adspark-ai-wizard/internal/metrics"
)

const DefaultUserAgent = "Mozilla/5.0 (compatible; AdSparkBot/1.0)"

// Per-field limits of a scraped page.
const (
	maxHeadlines    = 5
	maxParagraphs   = 10
	maxListItems    = 15
	maxTestimonials = 5
	maxStats        = 10
)

var ErrFetch = errors.New("failed to fetch URL")

var (
	testimonialRe = regexp.MustCompile(`["'“]([^"'”]{50,200})["'”]\s*[-–—]\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	statRe        = regexp.MustCompile(`(?i)\d+[KMB+%]+`)
	spaceRe       = regexp.MustCompile(`\s+`)
)

type Config struct {
	UserAgent string
	// MaxBytes caps the downloaded body; zero means 2 MiB.
	MaxBytes int64
}

// Scraper implements port.Scraper. Concurrent scrapes of the same URL
// share one fetch.
type Scraper struct {
	client *http.Client
	cfg    Config
	logger *slog.Logger
	group  singleflight.Group
	now    func() time.Time

	fetchTimeout time.Duration
}

var _ port.Scraper = (*Scraper)(nil)

func New(cfg Config, client *http.Client, logger *slog.Logger) *Scraper {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 2 << 20
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	timeout := client.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Scraper{client: client, cfg: cfg, logger: logger, now: time.Now, fetchTimeout: timeout}
}

// Scrape fetches rawURL and extracts title, meta description, headings,
// paragraphs, list items, testimonials and stats. A URL without scheme is
// fetched over https.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*domain.ScrapedPage, error) {
	target, err := normalizeURL(rawURL)
	if err != nil {
		metrics.Scrapes.WithLabelValues("invalid").Inc()
		return nil, err
	}

	// The shared fetch outlives any single caller; each caller stops
	// waiting when its own context ends.
	ch := s.group.DoChan(target, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.scrape(fetchCtx, target)
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		metrics.Scrapes.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrFetch, ctx.Err())
	}
	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		metrics.Scrapes.WithLabelValues("error").Inc()
		s.logger.Warn("scrape failed", slog.String("url", target), slog.Any("error", err))
		return nil, err
	}
	metrics.Scrapes.WithLabelValues("ok").Inc()

	page := *v.(*domain.ScrapedPage)
	s.logger.Info("scraping complete",
		slog.String("url", target),
		slog.Bool("shared", shared),
		slog.Int("headlines", len(page.Headlines)),
		slog.Int("paragraphs", len(page.Paragraphs)),
		slog.Int("stats", len(page.Stats)))
	return &page, nil
}

func (s *Scraper) scrape(ctx context.Context, target string) (*domain.ScrapedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrFetch, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, s.cfg.MaxBytes))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	page := extract(doc)
	page.URL = target
	page.Timestamp = s.now().UTC()
	return page, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: URL is required", domain.ErrInvalidRequest)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid URL %q", domain.ErrInvalidRequest, raw)
	}
	return u.String(), nil
}

func extract(doc *html.Node) *domain.ScrapedPage {
	page := &domain.ScrapedPage{
		Headlines:    []string{},
		Paragraphs:   []string{},
		ListItems:    []string{},
		Testimonials: []string{},
		Stats:        []string{},
	}
	var body strings.Builder

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			case "title":
				if page.Title == "" {
					page.Title = textOf(n)
				}
			case "meta":
				if strings.EqualFold(attr(n, "name"), "description") && page.Description == "" {
					page.Description = strings.TrimSpace(attr(n, "content"))
				}
			case "h1", "h2":
				page.Headlines = appendText(page.Headlines, n, maxHeadlines)
			case "p":
				page.Paragraphs = appendText(page.Paragraphs, n, maxParagraphs)
			case "li":
				page.ListItems = appendText(page.ListItems, n, maxListItems)
			}
		}
		if n.Type == html.TextNode {
			body.WriteString(n.Data)
			body.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	text := body.String()
	for _, m := range testimonialRe.FindAllStringSubmatch(text, maxTestimonials) {
		page.Testimonials = append(page.Testimonials, fmt.Sprintf("%q - %s", strings.TrimSpace(m[1]), m[2]))
	}
	seen := make(map[string]bool)
	for _, stat := range statRe.FindAllString(text, -1) {
		if len(page.Stats) == maxStats {
			break
		}
		if !seen[stat] {
			seen[stat] = true
			page.Stats = append(page.Stats, stat)
		}
	}
	return page
}

func appendText(list []string, n *html.Node, limit int) []string {
	if len(list) >= limit {
		return list
	}
	if t := textOf(n); t != "" {
		list = append(list, t)
	}
	return list
}

// textOf returns the whitespace-collapsed text below n.
func textOf(n *html.Node) string {
	var b strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return strings.TrimSpace(spaceRe.ReplaceAllString(b.String(), " "))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
