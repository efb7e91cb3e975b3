package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/printdesk/internal/domain/model"
)

// ErrNotRunning is returned by Enqueue before Start or after Stop.
var ErrNotRunning = errors.New("payment processor is not running")

// PaymentCompleter finishes a payment once the simulated delay elapses.
type PaymentCompleter interface {
	Complete(ctx context.Context, orderID string) (*model.Order, error)
}

// PaymentProcessor resolves enqueued payments after a fixed delay using a
// pool of workers.
type PaymentProcessor struct {
	payments PaymentCompleter
	delay    time.Duration
	workers  int
	logger   *slog.Logger

	jobs   chan string
	wg     sync.WaitGroup
	runCtx context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentProcessor constructs payment worker pool.
func NewPaymentProcessor(payments PaymentCompleter, delay time.Duration, workers int, logger *slog.Logger) *PaymentProcessor {
	if workers <= 0 {
		workers = 1
	}
	if delay < 0 {
		delay = 0
	}
	return &PaymentProcessor{
		payments: payments,
		delay:    delay,
		workers:  workers,
		logger:   logger,
		jobs:     make(chan string, workers*16),
	}
}

// Start launches background processing. Calling Start twice is a no-op.
func (p *PaymentProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.runCtx, p.cancel = runCtx, cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}
}

// Stop cancels pending payments and waits for all workers to finish.
func (p *PaymentProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		p.runCtx = nil
	}
	p.mu.Unlock()

	p.wg.Wait()

	if dropped := len(p.jobs); dropped > 0 {
		p.logger.Warn("payments dropped on shutdown", slog.Int("count", dropped))
	}
}

// Enqueue schedules payment completion for the order. It blocks while the
// queue is full.
func (p *PaymentProcessor) Enqueue(ctx context.Context, orderID string) error {
	p.mu.Lock()
	runCtx := p.runCtx
	p.mu.Unlock()
	if runCtx == nil {
		return ErrNotRunning
	}

	select {
	case p.jobs <- orderID:
		p.logger.Info("payment scheduled", slog.String("order_id", orderID), slog.Duration("delay", p.delay))
		return nil
	case <-runCtx.Done():
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *PaymentProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case orderID := <-p.jobs:
			p.handlePayment(ctx, orderID)
		}
	}
}

func (p *PaymentProcessor) handlePayment(ctx context.Context, orderID string) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.logger.Warn("payment interrupted", slog.String("order_id", orderID))
		return
	case <-timer.C:
	}

	order, err := p.payments.Complete(ctx, orderID)
	if err != nil {
		p.logger.Error("payment completion failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return
	}
	p.logger.Info("payment processed", slog.String("order_id", order.ID))
}
