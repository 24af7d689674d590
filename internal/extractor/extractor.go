package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	jsoniter "github.com/json-iterator/go"
)

const scrapePath = "/scrape"

// Decoder decodes extraction service response body.
type Decoder interface {
	Decode(body io.Reader) (*models.ExtractionResult, error)
}

// Client calls external extraction service.
type Client struct {
	client    *http.Client
	decoder   Decoder
	baseURL   string
	userAgent string
}

// NewHTTPClient returns http.Client with separate connect and read timeouts.
// Connect timeout bounds dialing, read timeout bounds waiting for response headers.
// Whole request is bounded by sum of both.
func NewHTTPClient(connectTimeout, readTimeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = connectTimeout
	transport.ResponseHeaderTimeout = readTimeout

	return &http.Client{
		Transport: transport,
		Timeout:   connectTimeout + readTimeout,
	}
}

// NewClient returns new Client.
func NewClient(client *http.Client, decoder Decoder, baseURL, userAgent string) *Client {
	return &Client{
		client:    client,
		decoder:   decoder,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// Extract returns product snapshot of sourceURL fetched by extraction service.
// Every error returned is *Failure. Result is not validated.
func (c *Client) Extract(ctx context.Context, sourceURL string) (*models.ExtractionResult, error) {
	result, err := c.extract(ctx, sourceURL)
	if err != nil {
		return nil, &Failure{URL: sourceURL, Cause: err}
	}

	return result, nil
}

func (c *Client) extract(ctx context.Context, sourceURL string) (*models.ExtractionResult, error) {
	body, err := jsoniter.Marshal(map[string]string{"url": sourceURL})
	if err != nil {
		return nil, fmt.Errorf("can't encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scrapePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	result, err := c.decoder.Decode(resp.Body)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyBody
	}
	if err != nil {
		return nil, fmt.Errorf("can't decode response: %w", err)
	}

	return result, nil
}

// Probe checks whether extraction service is reachable.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("extraction service is unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	return nil
}
