// Package client talks to the order backend through the configured reverse
// proxy prefix. Every non-2xx status is reported as a plain error; callers
// do not distinguish 4xx from 5xx from transport failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/ordo/pkg/order"
	"tableflip.dev/ordo/pkg/store"
)

// DefaultFetchCount is the size of the fixed id range the grid requests on
// load.
const DefaultFetchCount = 24

// Backend is the contract the grid, the runners, and the tests program
// against.
type Backend interface {
	OrderDetail(ctx context.Context, id int) (order.Detail, error)
	EditDetail(ctx context.Context, id int) (order.Detail, error)
	FetchOrders(ctx context.Context, count int) ([]*order.Order, error)
	CreateOrder(ctx context.Context, d order.Draft) error
	UpdateOrder(ctx context.Context, d order.Draft) error
	DeleteOrder(ctx context.Context, id int) error
	DeleteOrders(ctx context.Context, ids []int) error
	Login(ctx context.Context, c Credentials) error
	Register(ctx context.Context, r Registration) error
}

// Client is the HTTP implementation of Backend.
type Client struct {
	base       string
	httpClient *http.Client
}

// New builds a client against the configured proxy base URL.
func New(cfg store.Config) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Client{
		base: cfg.Backend(),
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}, nil
}

// NewWithBase is the test and override constructor.
func NewWithBase(base string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:       base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// OrderDetail fetches one order through the grid's detail endpoint.
func (c *Client) OrderDetail(ctx context.Context, id int) (order.Detail, error) {
	var d order.Detail
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/v1/order/orderdetail/%d", c.base, id), &d)
	return d, err
}

// EditDetail fetches one order through the edit form's endpoint.
func (c *Client) EditDetail(ctx context.Context, id int) (order.Detail, error) {
	var d order.Detail
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/v1/Order/OrderDetail/%d", c.base, id), &d)
	return d, err
}

// FetchOrders issues count concurrent detail fetches for ids 1..count and
// joins them all. The batch is all-or-nothing: if any fetch fails the
// whole snapshot is discarded. Request order determines output order.
func (c *Client) FetchOrders(ctx context.Context, count int) ([]*order.Order, error) {
	details := make([]order.Detail, count)
	// Plain group, no shared cancellation: every request is issued
	// regardless of sibling failures, matching the backend's view of a
	// browser fan-out.
	var g errgroup.Group
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			d, err := c.OrderDetail(ctx, i+1)
			if err != nil {
				return fmt.Errorf("order %d: %w", i+1, err)
			}
			details[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	orders := make([]*order.Order, count)
	for i, d := range details {
		orders[i] = order.FromDetail(i+1, d)
	}
	return orders, nil
}

// CreateOrder submits a new order. The draft must already be validated.
func (c *Client) CreateOrder(ctx context.Context, d order.Draft) error {
	return c.postJSON(ctx, c.base+"/api/v1/Order/CreateOrder", d)
}

// UpdateOrder submits changed fields for an existing order. OrderedAt is
// not part of the update body.
func (c *Client) UpdateOrder(ctx context.Context, d order.Draft) error {
	d.OrderedAt = ""
	return c.postJSON(ctx, c.base+"/api/v1/Order/UpdateOrder", d)
}

// DeleteOrder removes one order by id.
func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/api/v1/Order/DeleteOrder/%d", c.base, id), nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}
	return c.do(req, nil)
}

// DeleteOrders issues one DELETE per id concurrently and joins them all.
// It reports the first failure; deletes that already landed on the backend
// are not rolled back, so the caller must not apply local removals unless
// this returns nil.
func (c *Client) DeleteOrders(ctx context.Context, ids []int) error {
	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := c.DeleteOrder(ctx, id); err != nil {
				return fmt.Errorf("order %d: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, url string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
