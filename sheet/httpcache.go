package sheet

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/planilla/date"
	"go.uber.org/zap"
)

// diskCache is an http.RoundTripper keeping successful responses on disk for
// the day, so that the sheet is still readable offline.
type diskCache struct {
	base   http.RoundTripper
	dir    string
	today  func() date.Date
	logger *zap.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// one key per day, so the cached copy expires every day.
	key := fmt.Sprintf("%s %s %s", c.today(), req.Method, req.URL)
	key = fmt.Sprintf("planilla-%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil {
		c.logger.Debug("sheet served from cache", zap.String("url", req.URL.Redacted()))
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.logger.Info("sheet downloaded",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("status", resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		c.logger.Warn("cache write failed (ignored)", zap.Error(err))
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response on disk.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// NewDailyClient returns an HTTP client caching responses for the day in dir,
// the temporary directory when dir is empty.
func NewDailyClient(dir string, logger *zap.Logger) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &http.Client{Transport: &diskCache{
		base:   http.DefaultTransport,
		dir:    dir,
		today:  date.Today,
		logger: logger,
	}}
}
