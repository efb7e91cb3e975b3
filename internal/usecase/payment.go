package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/pkg/vcode"
)

// PaymentUseCase drives simulated payment and code issuance.
type PaymentUseCase struct {
	orders *OrderUseCase
	intake *IntakeUseCase
	codes  vcode.Generator
	logger *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(orders *OrderUseCase, intake *IntakeUseCase, codes vcode.Generator, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, intake: intake, codes: codes, logger: logger}
}

func paymentState(o *model.Order) error {
	switch o.Status {
	case model.OrderStatusFinalized:
		return nil
	case model.OrderStatusProcessing:
		return domainErrors.ErrPaymentInProgress
	case model.OrderStatusPaid:
		return domainErrors.ErrAlreadyPaid
	default:
		return domainErrors.ErrOrderNotFinalized
	}
}

// Begin moves a finalized order to processing.
func (u *PaymentUseCase) Begin(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.Update(ctx, orderID, func(o *model.Order) error {
		if err := paymentState(o); err != nil {
			return err
		}
		o.Status = model.OrderStatusProcessing
		return nil
	})
}

// Abort returns a processing order to finalized so payment can be retried.
func (u *PaymentUseCase) Abort(ctx context.Context, orderID string) error {
	_, err := u.orders.Update(ctx, orderID, func(o *model.Order) error {
		if o.Status != model.OrderStatusProcessing {
			return domainErrors.ErrOrderNotFinalized
		}
		o.Status = model.OrderStatusFinalized
		return nil
	})
	return err
}

// Complete issues the verification code for a processing order, marks it
// paid and publishes it to the intake store. Intake failures are logged only.
func (u *PaymentUseCase) Complete(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := u.orders.Update(ctx, orderID, func(o *model.Order) error {
		switch o.Status {
		case model.OrderStatusProcessing:
		case model.OrderStatusPaid:
			return domainErrors.ErrAlreadyPaid
		default:
			return domainErrors.ErrOrderNotFinalized
		}
		code, err := u.codes.Generate()
		if err != nil {
			return err
		}
		o.VerificationCode = code
		o.Status = model.OrderStatusPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("payment completed", slog.String("order_id", order.ID), slog.Int("total_cost", order.TotalCost))

	if _, _, err := u.intake.Submit(ctx, SubmissionFromOrder(order)); err != nil {
		u.logger.Error("publish to intake failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
	return order, nil
}

// SubmissionFromOrder maps a paid order to its intake record. The order id
// is the idempotency key.
func SubmissionFromOrder(o *model.Order) SubmissionInput {
	files := make([]model.SubmittedFile, 0, len(o.Files))
	for _, f := range o.Files {
		files = append(files, model.SubmittedFile{
			ID:          f.ID,
			Name:        f.Name,
			Color:       f.ColorMode,
			Copies:      f.Copies,
			Description: f.Description,
			ExactPages:  f.PageCount,
		})
	}
	return SubmissionInput{
		Files:            files,
		ShopID:           o.ShopID,
		VerificationCode: o.VerificationCode,
		IdempotencyKey:   o.ID,
	}
}
