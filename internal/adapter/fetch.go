// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-elevate-uploader/internal/logger"
	"github.com/MKhiriev/go-elevate-uploader/internal/utils"
)

// fallbackFileName is used when a URL has no usable last path segment.
const fallbackFileName = "download"

type httpFetcher struct {
	client *utils.HTTPClient
	dir    string

	logger *logger.Logger
}

// NewHTTPFetcher returns a [RemoteFetcher] that stores downloads in dir
// (an empty dir means the working directory).
func NewHTTPFetcher(dir string, timeout time.Duration, logger *logger.Logger) RemoteFetcher {
	return &httpFetcher{
		client: utils.NewHTTPClient(timeout),
		dir:    dir,
		logger: logger,
	}
}

// Fetch implements [RemoteFetcher].
func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	head, err := f.client.R().SetContext(ctx).Head(rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %w", ErrPreflightFailed, err)
	}
	if head.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: http %d", ErrPreflightFailed, head.StatusCode())
	}

	localPath := filepath.Join(f.dir, localFileName(rawURL))

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", localPath, err)
	}
	written, err := io.Copy(out, body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", localPath, err)
	}

	f.logger.Debug().
		Str("url", rawURL).
		Str("path", localPath).
		Int64("bytes", written).
		Msg("remote file downloaded")

	return localPath, nil
}

// localFileName returns the last path segment of rawURL, ignoring any query
// string.
func localFileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallbackFileName
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == ".." || name == "/" {
		return fallbackFileName
	}
	return name
}
