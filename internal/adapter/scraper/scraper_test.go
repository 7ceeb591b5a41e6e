package scraper

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/core/domain"
)

const landingPage = `<!doctype html>
<html><head>
<title>Green Mats Co</title>
<meta name="description" content="Eco-friendly cork yoga mats.">
<style>.x{color:red}</style>
<script>var stats = "999K";</script>
</head><body>
<h1>Grip that <em>lasts</em></h1>
<h2>Made from cork</h2>
<p>Join 10K+ happy yogis.</p>
<p>   </p>
<p>98% recommend us to a friend.</p>
<ul><li>Free shipping</li><li>30-day returns</li></ul>
<blockquote>"These mats changed my practice completely, the grip is unreal even in hot yoga." - Jane Doe</blockquote>
<p>Again 10K+ reviews.</p>
</body></html>`

func newScraper(t *testing.T, h http.HandlerFunc) (*Scraper, string) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	s := New(Config{}, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, srv.URL
}

func TestScrapeExtractsPage(t *testing.T) {
	s, url := newScraper(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, landingPage)
	})

	page, err := s.Scrape(context.Background(), url)

	require.NoError(t, err)
	assert.Equal(t, url, page.URL)
	assert.Equal(t, "Green Mats Co", page.Title)
	assert.Equal(t, "Eco-friendly cork yoga mats.", page.Description)
	assert.Equal(t, []string{"Grip that lasts", "Made from cork"}, page.Headlines)
	assert.Equal(t, []string{"Join 10K+ happy yogis.", "98% recommend us to a friend.", "Again 10K+ reviews."}, page.Paragraphs)
	assert.Equal(t, []string{"Free shipping", "30-day returns"}, page.ListItems)
	require.Len(t, page.Testimonials, 1)
	assert.Contains(t, page.Testimonials[0], "Jane Doe")
	assert.Equal(t, []string{"10K+", "98%"}, page.Stats)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), page.Timestamp)
}

func TestScrapeNon2xx(t *testing.T) {
	s, url := newScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := s.Scrape(context.Background(), url)
	require.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "404")
}

func TestScrapeRejectsBadURL(t *testing.T) {
	s, _ := newScraper(t, func(http.ResponseWriter, *http.Request) {})
	for _, raw := range []string{"", "   ", "ftp://example.com", "https://"} {
		_, err := s.Scrape(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest, raw)
	}
}

func TestNormalizeURLAddsScheme(t *testing.T) {
	got, err := normalizeURL("example.com/shop")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/shop", got)
}

func TestScrapeLimitsLists(t *testing.T) {
	s, url := newScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<ul>")
		for i := 0; i < 40; i++ {
			_, _ = io.WriteString(w, "<li>item</li><h1>head</h1>")
		}
		_, _ = io.WriteString(w, "</ul>")
	})

	page, err := s.Scrape(context.Background(), url)
	require.NoError(t, err)
	assert.Len(t, page.ListItems, maxListItems)
	assert.Len(t, page.Headlines, maxHeadlines)
}

func TestScrapeSharesConcurrentFetches(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	s, url := newScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = io.WriteString(w, landingPage)
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := s.Scrape(context.Background(), url)
			assert.NoError(t, err)
			assert.Equal(t, "Green Mats Co", page.Title)
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestScrapeSharedFetchSurvivesCallerCancel(t *testing.T) {
	var hits atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	s, url := newScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = io.WriteString(w, landingPage)
	})

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Scrape(firstCtx, url)
		firstErr <- err
	}()
	<-started

	type result struct {
		page *domain.ScrapedPage
		err  error
	}
	second := make(chan result, 1)
	go func() {
		page, err := s.Scrape(context.Background(), url)
		second <- result{page, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	err := <-firstErr
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrFetch)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "Green Mats Co", res.page.Title)
	assert.Equal(t, int32(1), hits.Load())
}
