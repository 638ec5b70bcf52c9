package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BeAyanK/TechInfinite-User/internal/domain"
)

// ErrNotFound is returned when the store holds no document under the
// requested path. The store signals this with a literal null body.
var ErrNotFound = errors.New("document not found")

const ordersCollection = "orders"

// Entry is one key/value pair of a collection read, in the order the
// store served it. The generated key becomes the document id.
type Entry struct {
	Key string
	Raw json.RawMessage
}

// Client speaks the hosted document database's REST dialect: every
// collection and document is addressed as {base}/{path}.json. All
// calls go through a circuit breaker so a flapping store fails fast
// instead of tying up callers.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name: "docstore",
		}),
	}
}

// ListEntries reads a whole collection and returns its documents in
// the order the store served them. A map unmarshal would lose that
// order, so the object is walked token by token.
func (c *Client) ListEntries(ctx context.Context, collection string) ([]Entry, error) {
	body, err := c.get(ctx, collection)
	if err != nil {
		return nil, err
	}
	if isNull(body) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", collection, err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("decode %s collection: expected object, got %v", collection, tok)
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode %s collection: %w", collection, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode %s collection: non-string key %v", collection, keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, key, err)
		}
		entries = append(entries, Entry{Key: key, Raw: raw})
	}
	return entries, nil
}

// Get reads a single document into v.
func (c *Client) Get(ctx context.Context, collection, id string, v any) error {
	body, err := c.get(ctx, collection+"/"+id)
	if err != nil {
		return err
	}
	if isNull(body) {
		return ErrNotFound
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

// CreateOrder appends an order to the orders collection. Only the
// response status is consumed; the generated key is not needed.
func (c *Client) CreateOrder(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	_, err = c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(ordersCollection), bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return c.do(req)
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
		if err != nil {
			return nil, err
		}
		return c.do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	return body, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + path + ".json"
}

func isNull(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}
