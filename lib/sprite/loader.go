// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sprite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
)

// maxImageSize bounds a downloaded image. Official artwork is a few
// hundred kilobytes.
const maxImageSize = 8 << 20

// Config configures a Loader.
type Config struct {
	// Width is the rendered width in cells. Required.
	Width int

	// Profile selects the color encoding. Defaults to TrueColor.
	Profile termenv.Profile

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Loader fetches and renders artwork, caching by URL. Safe for
// concurrent use.
type Loader struct {
	width      int
	profile    termenv.Profile
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewLoader returns a Loader.
func NewLoader(config Config) *Loader {
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Loader{
		width:      config.Width,
		profile:    config.Profile,
		httpClient: config.HTTPClient,
		logger:     config.Logger,
		cache:      make(map[string]string),
	}
}

// Cached returns the rendered art for url if it has been loaded.
func (loader *Loader) Cached(url string) (string, bool) {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	art, ok := loader.cache[url]
	return art, ok
}

// Load fetches url and renders it. Failures are logged at debug level
// and returned; they are not cached, so a later Load retries.
func (loader *Loader) Load(ctx context.Context, url string) (string, error) {
	if art, ok := loader.Cached(url); ok {
		return art, nil
	}
	art, err := loader.fetch(ctx, url)
	if err != nil {
		loader.logger.Debug("sprite load failed", "url", url, "error", err)
		return "", err
	}
	loader.mu.Lock()
	loader.cache[url] = art
	loader.mu.Unlock()
	return art, nil
}

func (loader *Loader) fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("sprite: no image URL")
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("sprite: %w", err)
	}
	response, err := loader.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("sprite: fetching %s: %w", url, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sprite: fetching %s: %s", url, response.Status)
	}

	img, err := imaging.Decode(io.LimitReader(response.Body, maxImageSize))
	if err != nil {
		return "", fmt.Errorf("sprite: decoding %s: %w", url, err)
	}
	return Render(img, loader.width, loader.profile), nil
}
