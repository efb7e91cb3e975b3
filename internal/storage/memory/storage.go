// Package memory holds process-local repositories. State lives until the
// process exits.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/domain/repository"
)

// Storage keeps shops, orders and the intake store in memory.
type Storage struct {
	mu          sync.RWMutex
	shops       []model.Shop
	orders      map[string]model.Order
	submissions []model.Submission
	// retired keeps removed submissions by idempotency key so late retries
	// still resolve to the first record.
	retired map[string]model.Submission
	seq     int64
}

// New creates empty storage.
func New() *Storage {
	return &Storage{
		orders:  make(map[string]model.Order),
		retired: make(map[string]model.Submission),
	}
}

type shopRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type submissionRepository struct {
	storage *Storage
}

func (s *Storage) Shops() repository.ShopRepository {
	return &shopRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Submissions() repository.SubmissionRepository {
	return &submissionRepository{storage: s}
}

// HealthCheck always succeeds for memory storage.
func (s *Storage) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op; state is dropped with the process.
func (s *Storage) Close() {}

// --- ShopRepository implementation ---

func (r *shopRepository) Create(_ context.Context, shop model.Shop) (*model.Shop, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.shops {
		if existing.ID == shop.ID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now().UTC()
	}
	s.shops = append(s.shops, shop)
	return &shop, nil
}

func (r *shopRepository) Search(_ context.Context, query string) ([]model.Shop, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var result []model.Shop
	for _, shop := range s.shops {
		if strings.Contains(strings.ToLower(shop.ShopName), needle) {
			result = append(result, shop)
		}
	}
	return result, nil
}

func (r *shopRepository) GetByID(_ context.Context, id string) (*model.Shop, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, shop := range s.shops {
		if shop.ID == id {
			found := shop
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(_ context.Context, order model.Order) (*model.Order, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	s.orders[order.ID] = cloneOrder(order)
	return &order, nil
}

func (r *orderRepository) Get(_ context.Context, id string) (*model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := cloneOrder(order)
	return &clone, nil
}

func (r *orderRepository) Save(_ context.Context, order model.Order) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	order.UpdatedAt = time.Now().UTC()
	s.orders[order.ID] = cloneOrder(order)
	return nil
}

func cloneOrder(o model.Order) model.Order {
	o.Files = append([]model.UploadedFile(nil), o.Files...)
	return o
}

// --- SubmissionRepository implementation ---

func (r *submissionRepository) Append(_ context.Context, sub model.Submission) (*model.Submission, bool, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.IdempotencyKey != "" {
		for _, existing := range s.submissions {
			if existing.IdempotencyKey == sub.IdempotencyKey {
				found := cloneSubmission(existing)
				return &found, false, nil
			}
		}
		if existing, ok := s.retired[sub.IdempotencyKey]; ok {
			found := cloneSubmission(existing)
			return &found, false, nil
		}
	}
	for _, existing := range s.submissions {
		if existing.ID == sub.ID {
			return nil, false, domainErrors.ErrAlreadyExists
		}
	}

	s.seq++
	sub.Seq = s.seq
	if sub.State == "" {
		sub.State = model.EntryStatePending
	}
	if sub.Timestamp.IsZero() {
		sub.Timestamp = time.Now().UTC()
	}
	s.submissions = append(s.submissions, cloneSubmission(sub))
	return &sub, true, nil
}

func (r *submissionRepository) List(_ context.Context) ([]model.Submission, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		result = append(result, cloneSubmission(sub))
	}
	return result, nil
}

func (r *submissionRepository) Get(_ context.Context, id string) (*model.Submission, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.submissions {
		if sub.ID == id {
			found := cloneSubmission(sub)
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *submissionRepository) SetState(_ context.Context, id string, state model.EntryState) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id {
			s.submissions[i].State = state
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *submissionRepository) Remove(_ context.Context, id string) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id {
			if key := s.submissions[i].IdempotencyKey; key != "" {
				s.retired[key] = s.submissions[i]
			}
			s.submissions = append(s.submissions[:i], s.submissions[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func cloneSubmission(sub model.Submission) model.Submission {
	sub.Files = append([]model.SubmittedFile(nil), sub.Files...)
	return sub
}
