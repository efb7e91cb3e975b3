package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
)

// ShopRepositoryStub lets tests control shop directory behaviour.
type ShopRepositoryStub struct {
	CreateFn func(context.Context, model.Shop) (*model.Shop, error)
	SearchFn func(context.Context, string) ([]model.Shop, error)
	GetFn    func(context.Context, string) (*model.Shop, error)
	Created  []model.Shop
	Shops    map[string]model.Shop
}

// Create records the shop and returns it.
func (s *ShopRepositoryStub) Create(ctx context.Context, shop model.Shop) (*model.Shop, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, shop)
	}
	s.Created = append(s.Created, shop)
	if s.Shops == nil {
		s.Shops = make(map[string]model.Shop)
	}
	s.Shops[shop.ID] = shop
	return &shop, nil
}

// Search returns every created shop unless overridden.
func (s *ShopRepositoryStub) Search(ctx context.Context, query string) ([]model.Shop, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return s.Created, nil
}

// GetByID returns a known shop or not found.
func (s *ShopRepositoryStub) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if shop, ok := s.Shops[id]; ok {
		return &shop, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in a map.
type OrderRepositoryStub struct {
	mu      sync.Mutex
	Orders  map[string]model.Order
	SaveErr error
	GetErr  error
}

// NewOrderRepositoryStub constructs stub with initialized storage.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]model.Order)}
}

// Create stores order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[order.ID]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Orders[order.ID] = order
	return &order, nil
}

// Get returns stored order copy.
func (s *OrderRepositoryStub) Get(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Files = append([]model.UploadedFile(nil), order.Files...)
	return &order, nil
}

// Save replaces stored order.
func (s *OrderRepositoryStub) Save(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if _, ok := s.Orders[order.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Orders[order.ID] = order
	return nil
}

// SubmissionRepositoryStub is an ordered in-memory intake store for tests.
type SubmissionRepositoryStub struct {
	mu          sync.Mutex
	Items       []model.Submission
	AppendErr   error
	ListErr     error
	RemoveErr   error
	nextSeq     int64
	AppendCalls int
}

// Append stores submission honouring idempotency keys.
func (s *SubmissionRepositoryStub) Append(ctx context.Context, sub model.Submission) (*model.Submission, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AppendCalls++
	if s.AppendErr != nil {
		return nil, false, s.AppendErr
	}
	if sub.IdempotencyKey != "" {
		for _, existing := range s.Items {
			if existing.IdempotencyKey == sub.IdempotencyKey {
				item := existing
				return &item, false, nil
			}
		}
	}
	s.nextSeq++
	sub.Seq = s.nextSeq
	if sub.State == "" {
		sub.State = model.EntryStatePending
	}
	s.Items = append(s.Items, sub)
	return &sub, true, nil
}

// List returns a copy of stored submissions.
func (s *SubmissionRepositoryStub) List(ctx context.Context) ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Submission(nil), s.Items...), nil
}

// Get finds submission by id.
func (s *SubmissionRepositoryStub) Get(ctx context.Context, id string) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SetState updates entry state.
func (s *SubmissionRepositoryStub) SetState(ctx context.Context, id string, state model.EntryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].State = state
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Remove deletes submission by id.
func (s *SubmissionRepositoryStub) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
