// Package studio is the typed SDK for the studio back-office API.
//
// It composes one generic resource client per collection (clients,
// payments, sessions, inventory) and decodes the shared wire types from
// pkg/api/types. Every request carries a generated X-Request-Id so server
// logs can be correlated with client calls.
package studio

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkops/inkops/pkg/api/types"
	"github.com/inkops/inkops/pkg/resource"
)

// ErrEmptyServerURL is returned by New when the server URL is blank.
var ErrEmptyServerURL = errors.New("server URL is empty")

// Collection names addressable via Resource.
const (
	CollectionClients   = "clients"
	CollectionPayments  = "payments"
	CollectionSessions  = "sessions"
	CollectionInventory = "inventory"
)

// Client is a typed back-office API client.
type Client struct {
	baseURL   string
	health    *resource.Client
	resources map[string]*resource.Client
}

// Option configures a Client.
type Option func(*settings)

type settings struct {
	resourceOpts []resource.Option
}

// WithAPIKey sets the X-API-Key header on every request.
func WithAPIKey(key string) Option {
	return func(s *settings) {
		s.resourceOpts = append(s.resourceOpts, resource.WithAPIKey(key))
	}
}

// WithTimeout sets the HTTP timeout for all collections.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.resourceOpts = append(s.resourceOpts, resource.WithTimeout(timeout))
	}
}

// WithNotifier forwards failure messages to a status notifier.
func WithNotifier(n resource.Notifier) Option {
	return func(s *settings) {
		s.resourceOpts = append(s.resourceOpts, resource.WithNotifier(n))
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.resourceOpts = append(s.resourceOpts, resource.WithLogger(log))
	}
}

// WithHTTPClient replaces the underlying HTTP client for all collections.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		s.resourceOpts = append(s.resourceOpts, resource.WithHTTPClient(hc))
	}
}

// New creates a back-office client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyServerURL
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	shared := append(s.resourceOpts, resource.WithRequestDecorator(func(r *http.Request) {
		r.Header.Set("X-Request-Id", uuid.NewString())
	}))

	c := &Client{
		baseURL:   baseURL,
		resources: make(map[string]*resource.Client),
	}
	for _, name := range []string{CollectionClients, CollectionPayments, CollectionSessions, CollectionInventory} {
		rc, err := resource.New(baseURL+"/api/"+name, shared...)
		if err != nil {
			return nil, err
		}
		c.resources[name] = rc
	}
	health, err := resource.New(baseURL+"/health", shared...)
	if err != nil {
		return nil, err
	}
	c.health = health
	return c, nil
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource returns the generic client for a named collection. Useful for
// callers that work with untyped records (bulk import, scripting).
func (c *Client) Resource(name string) (*resource.Client, bool) {
	rc, ok := c.resources[name]
	return rc, ok
}

// Collections lists the addressable collection names.
func (c *Client) Collections() []string {
	return []string{CollectionClients, CollectionPayments, CollectionSessions, CollectionInventory}
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) (*types.HealthResponse, error) {
	return decodeInto[types.HealthResponse](c.health.List(ctx))
}

// --- Clients ---

// ListClients returns all client records.
func (c *Client) ListClients(ctx context.Context) ([]*types.ClientRecord, error) {
	out, err := decodeInto[types.ClientListResponse](c.resources[CollectionClients].List(ctx))
	if err != nil {
		return nil, err
	}
	return out.Clients, nil
}

// GetClient returns one client record.
func (c *Client) GetClient(ctx context.Context, id int64) (*types.ClientRecord, error) {
	return decodeInto[types.ClientRecord](c.resources[CollectionClients].Get(ctx, formatID(id)))
}

// CreateClient creates a client record and returns the stored version.
func (c *Client) CreateClient(ctx context.Context, rec *types.ClientRecord) (*types.ClientRecord, error) {
	return decodeInto[types.ClientRecord](c.resources[CollectionClients].Create(ctx, rec))
}

// UpdateClient replaces a client record.
func (c *Client) UpdateClient(ctx context.Context, id int64, rec *types.ClientRecord) (*types.ClientRecord, error) {
	return decodeInto[types.ClientRecord](c.resources[CollectionClients].Update(ctx, formatID(id), rec))
}

// DeleteClient removes a client record.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	_, err := c.resources[CollectionClients].Delete(ctx, formatID(id))
	return err
}

// --- Payments ---

// ListPayments returns all payments.
func (c *Client) ListPayments(ctx context.Context) ([]*types.Payment, error) {
	out, err := decodeInto[types.PaymentListResponse](c.resources[CollectionPayments].List(ctx))
	if err != nil {
		return nil, err
	}
	return out.Payments, nil
}

// GetPayment returns one payment.
func (c *Client) GetPayment(ctx context.Context, id int64) (*types.Payment, error) {
	return decodeInto[types.Payment](c.resources[CollectionPayments].Get(ctx, formatID(id)))
}

// CreatePayment records a payment.
func (c *Client) CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error) {
	return decodeInto[types.Payment](c.resources[CollectionPayments].Create(ctx, p))
}

// UpdatePayment replaces a payment.
func (c *Client) UpdatePayment(ctx context.Context, id int64, p *types.Payment) (*types.Payment, error) {
	return decodeInto[types.Payment](c.resources[CollectionPayments].Update(ctx, formatID(id), p))
}

// DeletePayment removes a payment.
func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	_, err := c.resources[CollectionPayments].Delete(ctx, formatID(id))
	return err
}

// --- Sessions ---

// ListSessions returns all sessions.
func (c *Client) ListSessions(ctx context.Context) ([]*types.Session, error) {
	out, err := decodeInto[types.SessionListResponse](c.resources[CollectionSessions].List(ctx))
	if err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

// GetSession returns one session.
func (c *Client) GetSession(ctx context.Context, id int64) (*types.Session, error) {
	return decodeInto[types.Session](c.resources[CollectionSessions].Get(ctx, formatID(id)))
}

// CreateSession schedules a session.
func (c *Client) CreateSession(ctx context.Context, s *types.Session) (*types.Session, error) {
	return decodeInto[types.Session](c.resources[CollectionSessions].Create(ctx, s))
}

// UpdateSession replaces a session.
func (c *Client) UpdateSession(ctx context.Context, id int64, s *types.Session) (*types.Session, error) {
	return decodeInto[types.Session](c.resources[CollectionSessions].Update(ctx, formatID(id), s))
}

// DeleteSession removes a session.
func (c *Client) DeleteSession(ctx context.Context, id int64) error {
	_, err := c.resources[CollectionSessions].Delete(ctx, formatID(id))
	return err
}

// --- Inventory ---

// ListInventory returns all inventory items.
func (c *Client) ListInventory(ctx context.Context) ([]*types.InventoryItem, error) {
	out, err := decodeInto[types.InventoryListResponse](c.resources[CollectionInventory].List(ctx))
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetInventoryItem returns one inventory item.
func (c *Client) GetInventoryItem(ctx context.Context, id int64) (*types.InventoryItem, error) {
	return decodeInto[types.InventoryItem](c.resources[CollectionInventory].Get(ctx, formatID(id)))
}

// CreateInventoryItem adds an inventory item.
func (c *Client) CreateInventoryItem(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error) {
	return decodeInto[types.InventoryItem](c.resources[CollectionInventory].Create(ctx, item))
}

// UpdateInventoryItem replaces an inventory item.
func (c *Client) UpdateInventoryItem(ctx context.Context, id int64, item *types.InventoryItem) (*types.InventoryItem, error) {
	return decodeInto[types.InventoryItem](c.resources[CollectionInventory].Update(ctx, formatID(id), item))
}

// DeleteInventoryItem removes an inventory item.
func (c *Client) DeleteInventoryItem(ctx context.Context, id int64) error {
	_, err := c.resources[CollectionInventory].Delete(ctx, formatID(id))
	return err
}

// formatID renders a numeric id for the URL path. Non-positive ids become
// the empty string so the resource client rejects them before any I/O.
func formatID(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// decodeInto chains a resource call with typed decoding of its result.
func decodeInto[T any](res *resource.Result, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := res.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
