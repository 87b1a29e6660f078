package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ordo/pkg/order"
)

// Snapshot is the local cache of the last successfully fetched order list.
// It exists so `ordo get --cached` can answer without the backend; the
// grid itself always fetches fresh.
type Snapshot interface {
	Put(orders []*order.Order) error
	List(ctx context.Context) []*order.Order
	Clear(ctx context.Context) error
}

// Load opens the diskv-backed snapshot at the configured cache path.
func Load(cfg Config) (Snapshot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.CachePath()
	return &snapshot{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type snapshot struct {
	d *diskv.Diskv
}

// Put replaces the cached snapshot with the given orders.
func (s *snapshot) Put(orders []*order.Order) error {
	if err := s.Clear(context.Background()); err != nil {
		return err
	}
	for _, o := range orders {
		data, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encoding order %d: %w", o.ID, err)
		}
		if err := s.d.Write(toKey(o.ID), data); err != nil {
			return fmt.Errorf("caching order %d: %w", o.ID, err)
		}
	}
	return nil
}

// List returns the cached orders in id order. Unreadable entries are
// logged and skipped.
func (s *snapshot) List(ctx context.Context) []*order.Order {
	all := make([]*order.Order, 0)
	for key := range s.d.Keys(ctx.Done()) {
		val, err := s.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		o := &order.Order{}
		if err := json.Unmarshal(val, o); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

// Clear erases every cached order.
func (s *snapshot) Clear(ctx context.Context) error {
	for key := range s.d.Keys(ctx.Done()) {
		if err := s.d.Erase(key); err != nil {
			return err
		}
	}
	return nil
}

// toKey makes `orders-<id>`
func toKey(id int) string {
	return fmt.Sprintf("orders-%04d", id)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
