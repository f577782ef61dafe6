package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderSyncUseCase_GetByOrderID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderSyncUseCase(nil, nil)
		_, err := uc.GetByOrderID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderSyncUseCase(repo, nil)

		repo.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByOrderID(context.Background(), "o-1")
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderSyncUseCase(repo, nil)

		repo.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.ServiceOrder{OrderID: "o-1"}, nil)

		res, err := uc.GetByOrderID(context.Background(), " o-1 ")
		if err != nil || res.OrderID != "o-1" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestOrderSyncUseCase_RetryFailedSyncs(t *testing.T) {
	t.Run("selection error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderSyncUseCase(repo, nil)

		repo.EXPECT().ListPendingSync(gomock.Any(), maxSyncAttempts).Return(nil, errors.New("scan failed"))

		if err := uc.RetryFailedSyncs(context.Background()); err == nil {
			t.Fatalf("expected selection error")
		}
	})

	t.Run("empty sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewOrderSyncUseCase(repo, nil)

		repo.EXPECT().ListPendingSync(gomock.Any(), maxSyncAttempts).Return(nil, nil)

		if err := uc.RetryFailedSyncs(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("one order failing never aborts the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		syncClient := mock_interfaces.NewMockIOrderSyncClient(ctrl)
		uc := NewOrderSyncUseCase(repo, syncClient)

		orderA := entities.ServiceOrder{OrderID: "o-a", Status: entities.ServiceOrderStatusInProgress, PaymentID: "p-a", SyncAttempts: 2}
		orderB := entities.ServiceOrder{OrderID: "o-b", Status: entities.ServiceOrderStatusInProgress, PaymentID: "p-b", SyncAttempts: 4}

		repo.EXPECT().ListPendingSync(gomock.Any(), maxSyncAttempts).Return([]entities.ServiceOrder{orderA, orderB}, nil)

		syncClient.EXPECT().UpdateOrderStatus(gomock.Any(), "o-a", "in_progress", "p-a").Return(nil, errors.New("still down"))
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.OrderID != "o-a" {
					t.Fatalf("expected o-a first, got %s", o.OrderID)
				}
				if o.SyncAttempts != 3 || o.SyncError == "" {
					t.Fatalf("expected recorded failure, got %+v", o)
				}
				return o, nil
			},
		)

		syncClient.EXPECT().UpdateOrderStatus(gomock.Any(), "o-b", "in_progress", "p-b").Return(nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.OrderID != "o-b" {
					t.Fatalf("expected o-b second, got %s", o.OrderID)
				}
				if !o.SyncedWithOrderService || o.LastSyncAt == nil || o.SyncError != "" {
					t.Fatalf("expected converged order, got %+v", o)
				}
				// Successful retries keep the attempt counter.
				if o.SyncAttempts != 4 {
					t.Fatalf("attempt counter must survive success, got %d", o.SyncAttempts)
				}
				return o, nil
			},
		)

		if err := uc.RetryFailedSyncs(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sweeps an order without a payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		syncClient := mock_interfaces.NewMockIOrderSyncClient(ctrl)
		uc := NewOrderSyncUseCase(repo, syncClient)

		order := entities.ServiceOrder{OrderID: "o-1", Status: entities.ServiceOrderStatusPendingPayment}
		repo.EXPECT().ListPendingSync(gomock.Any(), maxSyncAttempts).Return([]entities.ServiceOrder{order}, nil)
		syncClient.EXPECT().UpdateOrderStatus(gomock.Any(), "o-1", "pending_payment", "").Return(nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)

		if err := uc.RetryFailedSyncs(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
