package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"airside-ops/transferdesk/internal/common"
	"airside-ops/transferdesk/internal/constants"

	"golang.org/x/time/rate"
)

var (
	rowSplitRe  = regexp.MustCompile(`(?i)</tr>`)
	tagStripRe  = regexp.MustCompile(`<[^>]+>`)
	carouselRe  = regexp.MustCompile(`(?i)(?:carousel|belt|reclaim)\s*[:#]?\s*([A-Z0-9]{1,3})\b`)
	clockTimeRe = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// WebEnrichmentProvider scrapes the airport arrivals page for carousel
// assignments and bag-available times. The whole page is fetched once per
// cache window and shared across flight lookups; fetches are rate limited so
// a burst of flights doesn't hammer the site.
type WebEnrichmentProvider struct {
	client  *http.Client
	pageURL string
	limiter *rate.Limiter
	cache   common.CacheInterface
	ttl     time.Duration
}

var _ EnrichmentProvider = (*WebEnrichmentProvider)(nil)

func NewWebEnrichmentProvider(pageURL string, ratePerSecond float64, ttl time.Duration, cache common.CacheInterface) *WebEnrichmentProvider {
	return &WebEnrichmentProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		pageURL: pageURL,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		cache:   cache,
		ttl:     ttl,
	}
}

func (p *WebEnrichmentProvider) GetProviderType() string {
	return "web_arrivals_page"
}

// FetchBagInfo scrapes the arrivals page row for the given flight number.
// Returns nil (no error) when the page doesn't list the flight or the row
// carries neither a carousel nor a time. Parsed results are cached per
// flight for the same window as the page itself.
func (p *WebEnrichmentProvider) FetchBagInfo(ctx context.Context, flightNumber string, day time.Time) (*BagInfo, error) {
	key := string(constants.CachePrefixBagInfo) + flightNumber + "_" + day.Format("2006-01-02")
	val, err := p.cache.GetOrSet(key, p.ttl, func() (any, error) {
		return p.scrapeBagInfo(ctx, flightNumber, day)
	})
	if err != nil {
		return nil, err
	}
	info, ok := val.(*BagInfo)
	if !ok {
		// A shared cache hands back decoded JSON, not the typed value.
		return p.scrapeBagInfo(ctx, flightNumber, day)
	}
	return info, nil
}

func (p *WebEnrichmentProvider) scrapeBagInfo(ctx context.Context, flightNumber string, day time.Time) (*BagInfo, error) {
	page, err := p.fetchPage(ctx)
	if err != nil {
		return nil, err
	}

	row, ok := findFlightRow(page, flightNumber)
	if !ok {
		return (*BagInfo)(nil), nil
	}

	info := &BagInfo{FlightNumber: flightNumber}
	if m := carouselRe.FindStringSubmatch(row); m != nil {
		info.Carousel = strings.ToUpper(m[1])
	}
	if t, ok := parseRowTime(row, day); ok {
		info.BagAvailableTime = &t
	}

	if info.Carousel == "" && info.BagAvailableTime == nil {
		return (*BagInfo)(nil), nil
	}
	return info, nil
}

func (p *WebEnrichmentProvider) fetchPage(ctx context.Context) (string, error) {
	key := string(constants.CachePrefixArrivalsPage) + p.pageURL
	val, err := p.cache.GetOrSet(key, p.ttl, func() (any, error) {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.pageURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := p.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("arrivals page returned status %d", resp.StatusCode)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil {
			return nil, err
		}
		return string(body), nil
	})
	if err != nil {
		return "", err
	}

	page, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("unexpected cached page type %T", val)
	}
	return page, nil
}

// findFlightRow returns the stripped-text table row mentioning the flight
// number. Matching tolerates a space between airline code and number
// ("BA 123" vs "BA123").
func findFlightRow(page, flightNumber string) (string, bool) {
	compact := strings.ToUpper(strings.ReplaceAll(flightNumber, " ", ""))
	for _, chunk := range rowSplitRe.Split(page, -1) {
		text := tagStripRe.ReplaceAllString(chunk, " ")
		rowCompact := strings.ToUpper(strings.ReplaceAll(text, " ", ""))
		if strings.Contains(rowCompact, compact) {
			return text, true
		}
	}
	return "", false
}

// parseRowTime pulls the last clock time out of the row and anchors it to
// the given day. Arrivals pages list scheduled time first and the bag/status
// time last, so the last match is the useful one.
func parseRowTime(row string, day time.Time) (time.Time, bool) {
	matches := clockTimeRe.FindAllStringSubmatch(row, -1)
	if len(matches) == 0 {
		return time.Time{}, false
	}
	last := matches[len(matches)-1]
	parsed, err := time.Parse("15:04", last[0])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}
