package lists

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
	"github.com/maksimkurb/cf-ip-updater/src/internal/utils"
)

const (
	MinTimeoutSeconds = 5
	MaxTimeoutSeconds = 300

	// MaxBodyBytes caps a single source response.
	MaxBodyBytes = 4 << 20
)

// ClampTimeout keeps the configured download timeout within [5s, 300s].
func ClampTimeout(seconds int) time.Duration {
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

type DownloaderOptions struct {
	TimeoutSeconds int
	VerifyTLS      bool
	UserAgent      string
}

// Downloader fetches source lists one after another.
type Downloader struct {
	client    *http.Client
	userAgent string
}

func NewDownloader(opts DownloaderOptions) *Downloader {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: !opts.VerifyTLS,
	}

	return &Downloader{
		client: &http.Client{
			Timeout:   ClampTimeout(opts.TimeoutSeconds),
			Transport: transport,
		},
		userAgent: opts.UserAgent,
	}
}

// Fetch downloads every source in order and returns the bodies, each followed by "\n".
// The first failing source aborts the whole fetch.
func (d *Downloader) Fetch(ctx context.Context, sources []string) (string, error) {
	if len(sources) == 0 {
		return "", errors.NewConfigError("no download sources configured", nil)
	}

	var sb strings.Builder
	for _, url := range sources {
		body, err := d.fetchOne(ctx, url)
		if err != nil {
			return "", errors.NewDownloadError(fmt.Sprintf("download failed: %s", url), err)
		}
		sb.Write(body)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func (d *Downloader) fetchOne(ctx context.Context, url string) ([]byte, error) {
	log.Infof("Downloading IP list from URL: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	bodyProxy := hashing.NewReaderProxy(io.LimitReader(resp.Body, MaxBodyBytes+1))
	content, err := io.ReadAll(bodyProxy)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(content) > MaxBodyBytes {
		return nil, fmt.Errorf("response is larger than %d bytes", MaxBodyBytes)
	}

	if checksum, err := bodyProxy.GetChecksum(); err == nil {
		log.Debugf("Downloaded %d bytes from %s (sha1 %s)", bodyProxy.Size(), url, checksum)
	}

	return content, nil
}
