package tle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/large-farva/nustar-aux/internal/auxerr"
)

const (
	// DefaultURL serves the concatenated NuSTAR TLE history.
	DefaultURL = "http://www.srl.caltech.edu/NuSTAR_Public/NuSTAROperationSite/NuSTAR.tle"

	// FileName is the name the archive is stored under.
	FileName = "NuSTAR.tle"
)

// Fetcher downloads the TLE archive into a local directory.
type Fetcher struct {
	url        string
	httpClient *http.Client
	log        *log.Logger
}

// NewFetcher returns a fetcher for url, or DefaultURL when url is empty.
// A nil logger discards output.
func NewFetcher(url string, logger *log.Logger) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Fetcher{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger,
	}
}

// SetTimeout changes the HTTP client timeout. Zero disables it.
func (f *Fetcher) SetTimeout(d time.Duration) {
	f.httpClient.Timeout = d
}

// URL returns the source URL.
func (f *Fetcher) URL() string {
	return f.url
}

// Download is Fetcher.Download with the default source and no logging.
func Download(ctx context.Context, outDir string) (string, error) {
	return NewFetcher("", nil).Download(ctx, outDir)
}

// Download fetches the archive to outDir/NuSTAR.tle and returns that path.
// outDir is created if needed. Any existing archive is removed first, so a
// failed download leaves no archive behind rather than a stale one.
func (f *Fetcher) Download(ctx context.Context, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", auxerr.ErrFilesystem, outDir, err)
	}

	outPath := filepath.Join(outDir, FileName)
	if err := os.Remove(outPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: remove old archive: %w", auxerr.ErrFilesystem, err)
	}

	f.log.Printf("tle: downloading %s", f.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %w", auxerr.ErrNetwork, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching TLE archive: %w", auxerr.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: TLE fetch returned HTTP %d", auxerr.ErrNetwork, resp.StatusCode)
	}

	n, err := writeAtomic(outPath, resp.Body)
	if err != nil {
		return "", err
	}

	f.log.Printf("tle: wrote %d bytes to %s", n, outPath)
	return outPath, nil
}

// writeAtomic streams r into a temp file next to path and renames it into
// place, so readers never see a half-written archive.
func writeAtomic(path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "tle-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", auxerr.ErrFilesystem, err)
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("%w: reading response body: %w", auxerr.ErrNetwork, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("%w: %w", auxerr.ErrFilesystem, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("%w: %w", auxerr.ErrFilesystem, err)
	}
	return n, nil
}
