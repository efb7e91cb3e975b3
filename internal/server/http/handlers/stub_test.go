package handlers

import (
	"context"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// facadeStub implements PrintDesk; nil funcs fall back to benign defaults.
type facadeStub struct {
	registerFn  func(context.Context, usecase.ShopInput) (*model.Shop, error)
	searchFn    func(context.Context, string) ([]model.Shop, error)
	countFn     func([]byte) (int, error)
	submitFn    func(context.Context, usecase.SubmissionInput) (*model.Submission, bool, error)
	documentsFn func(context.Context) ([]model.Submission, error)
	createFn    func(context.Context, string) (*model.Order, error)
	orderFn     func(context.Context, string) (*model.Order, error)
	addFilesFn  func(context.Context, string, []usecase.FileUpload, model.ColorMode, int) (*model.Order, error)
	fileFn      func(context.Context, string, string) (*model.Order, error)
	describeFn  func(context.Context, string, string, string) (*model.Order, error)
	copiesFn    func(context.Context, string, string, int) (*model.Order, error)
	finalizeFn  func(context.Context, string) (*model.Order, error)
	payFn       func(context.Context, string) (*model.Order, error)
	queueFn     func(context.Context, string) ([]model.QueueEntry, model.QueueStats, error)
	completeFn  func(context.Context, string) error
	verifyFn    func(context.Context, string, string) (model.VerifyResult, error)
	rejectFn    func(context.Context, string) error
	healthErr   error
}

func (s facadeStub) RegisterShop(ctx context.Context, in usecase.ShopInput) (*model.Shop, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, in)
	}
	return &model.Shop{ID: "shop-x", OwnerName: in.OwnerName, ShopName: in.ShopName}, nil
}

func (s facadeStub) SearchShops(ctx context.Context, query string) ([]model.Shop, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return nil, nil
}

func (s facadeStub) CountPages(data []byte) (int, error) {
	if s.countFn != nil {
		return s.countFn(data)
	}
	return 1, nil
}

func (s facadeStub) SubmitToIntake(ctx context.Context, in usecase.SubmissionInput) (*model.Submission, bool, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, in)
	}
	return &model.Submission{ID: "sub-1"}, true, nil
}

func (s facadeStub) IntakeDocuments(ctx context.Context) ([]model.Submission, error) {
	if s.documentsFn != nil {
		return s.documentsFn(ctx)
	}
	return nil, nil
}

func (s facadeStub) CreateOrder(ctx context.Context, shopID string) (*model.Order, error) {
	if s.createFn != nil {
		return s.createFn(ctx, shopID)
	}
	return &model.Order{ID: "order-1", ShopID: shopID, Status: model.OrderStatusDraft}, nil
}

func (s facadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.orderFn != nil {
		return s.orderFn(ctx, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s facadeStub) AddFiles(ctx context.Context, orderID string, uploads []usecase.FileUpload, mode model.ColorMode, copies int) (*model.Order, error) {
	if s.addFilesFn != nil {
		return s.addFilesFn(ctx, orderID, uploads, mode, copies)
	}
	return &model.Order{ID: orderID}, nil
}

func (s facadeStub) RemoveFile(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	return s.file(ctx, orderID, fileID)
}

func (s facadeStub) SelectFile(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	return s.file(ctx, orderID, fileID)
}

func (s facadeStub) file(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	if s.fileFn != nil {
		return s.fileFn(ctx, orderID, fileID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s facadeStub) AttachDescription(ctx context.Context, orderID, fileID, text string) (*model.Order, error) {
	if s.describeFn != nil {
		return s.describeFn(ctx, orderID, fileID, text)
	}
	return &model.Order{ID: orderID}, nil
}

func (s facadeStub) UpdateCopies(ctx context.Context, orderID, fileID string, copies int) (*model.Order, error) {
	if s.copiesFn != nil {
		return s.copiesFn(ctx, orderID, fileID, copies)
	}
	return &model.Order{ID: orderID}, nil
}

func (s facadeStub) FinalizeOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.finalizeFn != nil {
		return s.finalizeFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusFinalized}, nil
}

func (s facadeStub) PayOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.payFn != nil {
		return s.payFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusProcessing}, nil
}

func (s facadeStub) AdminQueue(ctx context.Context, search string) ([]model.QueueEntry, model.QueueStats, error) {
	if s.queueFn != nil {
		return s.queueFn(ctx, search)
	}
	return nil, model.QueueStats{}, nil
}

func (s facadeStub) CompleteEntry(ctx context.Context, entryID string) error {
	if s.completeFn != nil {
		return s.completeFn(ctx, entryID)
	}
	return nil
}

func (s facadeStub) VerifyEntry(ctx context.Context, entryID, code string) (model.VerifyResult, error) {
	if s.verifyFn != nil {
		return s.verifyFn(ctx, entryID, code)
	}
	return model.VerifyResultVerified, nil
}

func (s facadeStub) RejectEntry(ctx context.Context, entryID string) error {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, entryID)
	}
	return nil
}

func (s facadeStub) Health(context.Context) error {
	return s.healthErr
}

var _ PrintDesk = facadeStub{}
