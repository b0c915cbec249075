package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Provider looks up the exchange rate from the base currency into the
// given currency code. A failed lookup leaves the rate pending; callers
// decide whether to retry or render the pending state.
type Provider interface {
	Rate(ctx context.Context, code string) (Rate, error)
}

// StaticProvider serves a single pinned rate, typically from config.
type StaticProvider struct {
	rate Rate
}

func NewStaticProvider(value float64, code string) *StaticProvider {
	return &StaticProvider{rate: Rate{Value: value, Currency: code, AsOf: time.Now()}}
}

func (p *StaticProvider) Rate(_ context.Context, code string) (Rate, error) {
	if !p.rate.Valid() || p.rate.Currency != code {
		return Rate{}, ErrRateUnavailable
	}
	return p.rate, nil
}

// HTTPProvider fetches rates from a JSON endpoint. The endpoint is given
// the target code as a query parameter and answers
// {"rate": 1234.5, "currency": "ARS", "as_of": "..."}.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
}

func NewHTTPProvider(endpoint string) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Rate(ctx context.Context, code string) (Rate, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return Rate{}, fmt.Errorf("rate endpoint: %w", err)
	}
	q := u.Query()
	q.Set("currency", code)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Rate{}, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Rate{}, fmt.Errorf("fetch rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rate{}, fmt.Errorf("fetch rate: unexpected status %d", resp.StatusCode)
	}

	var rate Rate
	if err := json.NewDecoder(resp.Body).Decode(&rate); err != nil {
		return Rate{}, fmt.Errorf("decode rate: %w", err)
	}
	if rate.Currency == "" {
		rate.Currency = code
	}
	if !rate.Valid() {
		return Rate{}, ErrRateUnavailable
	}
	return rate, nil
}
