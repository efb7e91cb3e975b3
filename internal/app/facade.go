package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/pkg/pagecount"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// PaymentQueue schedules asynchronous payment completion.
type PaymentQueue interface {
	Enqueue(ctx context.Context, orderID string) error
}

// HealthChecker reports storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// FacadeParams groups facade dependencies.
type FacadeParams struct {
	fx.In

	Shops        *usecase.ShopUseCase
	Orders       *usecase.OrderUseCase
	Payments     *usecase.PaymentUseCase
	Intake       *usecase.IntakeUseCase
	Queue        *usecase.QueueUseCase
	Counter      pagecount.Counter
	PaymentQueue PaymentQueue
	Health       HealthChecker
}

// PrintDeskFacade is the single entry point used by transport layers.
type PrintDeskFacade struct {
	shops        *usecase.ShopUseCase
	orders       *usecase.OrderUseCase
	payments     *usecase.PaymentUseCase
	intake       *usecase.IntakeUseCase
	queue        *usecase.QueueUseCase
	counter      pagecount.Counter
	paymentQueue PaymentQueue
	health       HealthChecker
}

func NewPrintDeskFacade(p FacadeParams) *PrintDeskFacade {
	return &PrintDeskFacade{
		shops:        p.Shops,
		orders:       p.Orders,
		payments:     p.Payments,
		intake:       p.Intake,
		queue:        p.Queue,
		counter:      p.Counter,
		paymentQueue: p.PaymentQueue,
		health:       p.Health,
	}
}

func (f *PrintDeskFacade) RegisterShop(ctx context.Context, in usecase.ShopInput) (*model.Shop, error) {
	return f.shops.Register(ctx, in)
}

func (f *PrintDeskFacade) SearchShops(ctx context.Context, query string) ([]model.Shop, error) {
	return f.shops.Search(ctx, query)
}

func (f *PrintDeskFacade) SeedDemo(ctx context.Context) error {
	return f.shops.SeedDemo(ctx)
}

// CountPages returns the exact page count of a PDF payload.
func (f *PrintDeskFacade) CountPages(data []byte) (int, error) {
	return f.counter.Count(data)
}

func (f *PrintDeskFacade) SubmitToIntake(ctx context.Context, in usecase.SubmissionInput) (*model.Submission, bool, error) {
	return f.intake.Submit(ctx, in)
}

func (f *PrintDeskFacade) IntakeDocuments(ctx context.Context) ([]model.Submission, error) {
	return f.intake.List(ctx)
}

func (f *PrintDeskFacade) CreateOrder(ctx context.Context, shopID string) (*model.Order, error) {
	return f.orders.Create(ctx, shopID)
}

func (f *PrintDeskFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *PrintDeskFacade) AddFiles(ctx context.Context, orderID string, uploads []usecase.FileUpload, mode model.ColorMode, copies int) (*model.Order, error) {
	return f.orders.AddFiles(ctx, orderID, uploads, mode, copies)
}

func (f *PrintDeskFacade) RemoveFile(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	return f.orders.RemoveFile(ctx, orderID, fileID)
}

func (f *PrintDeskFacade) SelectFile(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	return f.orders.SelectFile(ctx, orderID, fileID)
}

func (f *PrintDeskFacade) AttachDescription(ctx context.Context, orderID, fileID, text string) (*model.Order, error) {
	return f.orders.AttachDescription(ctx, orderID, fileID, text)
}

func (f *PrintDeskFacade) UpdateCopies(ctx context.Context, orderID, fileID string, copies int) (*model.Order, error) {
	return f.orders.UpdateCopies(ctx, orderID, fileID, copies)
}

func (f *PrintDeskFacade) FinalizeOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Finalize(ctx, orderID)
}

// PayOrder marks the order processing and hands it to the payment queue.
// The order is reverted when it cannot be queued.
func (f *PrintDeskFacade) PayOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := f.payments.Begin(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := f.paymentQueue.Enqueue(ctx, orderID); err != nil {
		if abortErr := f.payments.Abort(context.WithoutCancel(ctx), orderID); abortErr != nil {
			return nil, abortErr
		}
		return nil, err
	}
	return order, nil
}

func (f *PrintDeskFacade) AdminQueue(ctx context.Context, search string) ([]model.QueueEntry, model.QueueStats, error) {
	return f.queue.List(ctx, search)
}

func (f *PrintDeskFacade) CompleteEntry(ctx context.Context, entryID string) error {
	return f.queue.Complete(ctx, entryID)
}

func (f *PrintDeskFacade) VerifyEntry(ctx context.Context, entryID, code string) (model.VerifyResult, error) {
	return f.queue.Verify(ctx, entryID, code)
}

func (f *PrintDeskFacade) RejectEntry(ctx context.Context, entryID string) error {
	return f.queue.Reject(ctx, entryID)
}

func (f *PrintDeskFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
