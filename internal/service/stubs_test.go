package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ─── Product repository stub ─────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository. Transaction serializes
// callers with a mutex and restores a snapshot on error, mirroring the
// row-lock + rollback semantics the real store provides.
type stubProductRepo struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	products map[uuid.UUID]model.Product

	deleteErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]model.Product)}
}

func (r *stubProductRepo) put(p model.Product) model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) get(id uuid.UUID) (model.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	return p, ok
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.Lock()
	snapshot := make(map[uuid.UUID]model.Product, len(r.products))
	for id, p := range r.products {
		snapshot[id] = p
	}
	r.mu.Unlock()

	if err := fn(nil); err != nil {
		r.mu.Lock()
		r.products = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *stubProductRepo) FindByIDForUpdate(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *stubProductRepo) UpdateTx(_ *gorm.DB, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

// ─── Sale repository stub ────────────────────────────────────────────────────

type stubSaleRepo struct {
	mu    sync.Mutex
	sales []model.Sale

	createErr error
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID == id {
			s := r.sales[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Sale, len(r.sales))
	copy(out, r.sales)
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) CountByProductID(_ context.Context, productID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.sales {
		if r.sales[i].ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *stubSaleRepo) SumSalePrice(_ context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for i := range r.sales {
		total = total.Add(r.sales[i].SalePrice)
	}
	return total, nil
}

// ─── Client repository stub ──────────────────────────────────────────────────

type stubClientRepo struct {
	mu      sync.Mutex
	clients map[uuid.UUID]model.Client

	// duplicates marks name+category+month+year keys that ExistsDuplicate
	// reports as already registered.
	duplicates map[string]bool

	// batched captures rows handed to CreateInBatches.
	batched []model.Client

	deletedBefore time.Time
	deleteCount   int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients:    make(map[uuid.UUID]model.Client),
		duplicates: make(map[string]bool),
	}
}

func dedupeKey(name string, category, month, year *string) string {
	d := func(s *string) string {
		if s == nil {
			return "<nil>"
		}
		return *s
	}
	return name + "|" + d(category) + "|" + d(month) + "|" + d(year)
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID] = *c
	return nil
}

func (r *stubClientRepo) CreateInBatches(_ context.Context, clients []model.Client, _ int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batched = append(r.batched, clients...)
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *stubClientRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Client, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.clients[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) List(_ context.Context, _ dto.ClientFilter) ([]model.Client, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.clients[c.ID] = *c
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.clients)), nil
}

func (r *stubClientRepo) ExistsDuplicate(_ context.Context, name string, category, month, year *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.duplicates[dedupeKey(name, category, month, year)], nil
}

func (r *stubClientRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletedBefore = cutoff
	return r.deleteCount, nil
}

var errStoreDown = errors.New("store down")

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", s, err)
	}
	return id
}
