// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package hub

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the public Hugging Face Hub.
const DefaultEndpoint = "https://huggingface.co"

// Client downloads dataset files and caches them on disk.
type Client struct {
	Table      *Table
	Endpoint   string
	CacheDir   string
	Token      string // sent as a bearer token when set
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient returns a Client for the public Hub caching into cacheDir.
func NewClient(table *Table, cacheDir string) *Client {
	return &Client{
		Table:      table,
		Endpoint:   DefaultEndpoint,
		CacheDir:   cacheDir,
		HTTPClient: &http.Client{Timeout: 5 * time.Minute},
		Logger:     slog.Default(),
	}
}

// Fetch resolves id through the coordinate table and returns the local path of
// the dataset file, downloading it unless it is already cached.
func (c *Client) Fetch(ctx context.Context, id string) (string, Coords, error) {
	coords, err := c.Table.Lookup(id)
	if err != nil {
		return "", Coords{}, err
	}

	local, err := c.LocalPath(coords)
	if err != nil {
		return "", coords, err
	}

	if info, statErr := os.Stat(local); statErr == nil && info.Mode().IsRegular() && info.Size() > 0 {
		c.Logger.Debug("dataset cache hit", "dataset", id, "path", local)
		return local, coords, nil
	}

	src := c.URL(coords)
	c.Logger.Info("downloading dataset", "dataset", id, "url", src)

	if err := c.download(ctx, src, local); err != nil {
		return "", coords, fmt.Errorf("download %s: %w", id, err)
	}
	return local, coords, nil
}

// URL returns the resolve URL of the file described by coords.
func (c *Client) URL(coords Coords) string {
	segments := strings.Split(coords.File, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimSuffix(c.Endpoint, "/") +
		"/datasets/" + coords.Name +
		"/resolve/" + url.PathEscape(coords.Revision) +
		"/" + strings.Join(segments, "/")
}

// LocalPath returns where coords are cached:
// <cache>/datasets--<name>/<revision>/<file>, with "/" in name and revision
// replaced by "--".
func (c *Client) LocalPath(coords Coords) (string, error) {
	file := path.Clean(coords.File)
	if !filepath.IsLocal(filepath.FromSlash(file)) {
		return "", fmt.Errorf("dataset file %q escapes the cache directory", coords.File)
	}
	return filepath.Join(
		c.CacheDir,
		"datasets--"+strings.ReplaceAll(coords.Name, "/", "--"),
		strings.ReplaceAll(coords.Revision, "/", "--"),
		filepath.FromSlash(file),
	), nil
}

func (c *Client) download(ctx context.Context, src, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(dst), "."+uuid.NewString()+".incomplete")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600) //nolint:gosec // tmp is inside the cache dir
	if err != nil {
		return err
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	c.Logger.Debug("dataset downloaded", "path", dst, "bytes", n)
	return nil
}
