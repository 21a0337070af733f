package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/etnz/planilla"
	"go.uber.org/zap"
)

// ErrNoSource is returned by Load when no sheet is configured and the demo
// fallback is disabled.
var ErrNoSource = errors.New("no sheet configured")

// Loader acquires the line items of a contract.
type Loader struct {
	// Source is the URL of the published CSV, or a local file path.
	Source   string
	Currency string
	// Demo enables the demo dataset when the source is empty, unreadable or
	// has no item.
	Demo   bool
	Client *http.Client
	Logger *zap.Logger
}

// Load reads the line items. The second value reports whether the demo
// dataset was used.
func (l *Loader) Load(ctx context.Context) ([]planilla.LineItem, bool, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	items, err := l.read(ctx)
	switch {
	case err == nil && len(items) > 0:
		logger.Info("sheet loaded", zap.String("source", l.Source), zap.Int("items", len(items)))
		return items, false, nil
	case !l.Demo && err != nil:
		return nil, false, err
	case !l.Demo:
		return items, false, nil
	}
	if err != nil {
		logger.Warn("sheet unavailable, using demo data", zap.String("source", l.Source), zap.Error(err))
	} else {
		logger.Warn("sheet has no item, using demo data", zap.String("source", l.Source))
	}
	return Demo(l.Currency), true, nil
}

func (l *Loader) read(ctx context.Context) ([]planilla.LineItem, error) {
	switch {
	case l.Source == "":
		return nil, ErrNoSource
	case strings.HasPrefix(l.Source, "http://"), strings.HasPrefix(l.Source, "https://"):
		return Fetch(ctx, l.Client, l.Source, l.Currency)
	}
	f, err := os.Open(l.Source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, l.Currency)
}

// Fetch downloads and parses the sheet at url. A nil client is
// http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url, currency string) ([]planilla.LineItem, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching sheet %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return Parse(resp.Body, currency)
}
