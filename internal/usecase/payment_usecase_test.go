package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validPayment() entities.Payment {
	return entities.Payment{
		BudgetID:      "b-1",
		OrderID:       "o-1",
		CustomerID:    "cust-1",
		Amount:        150,
		PaymentMethod: entities.PaymentMethodPix,
	}
}

func TestPaymentUseCase_Register(t *testing.T) {
	t.Run("invalid budget id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, nil)
		p := validPayment()
		p.BudgetID = "  "
		_, err := uc.Register(context.Background(), p)
		if !errors.Is(err, ErrInvalidPaymentBudgetID) {
			t.Fatalf("expected ErrInvalidPaymentBudgetID, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, nil)
		p := validPayment()
		p.Amount = 0
		_, err := uc.Register(context.Background(), p)
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, nil)
		p := validPayment()
		p.PaymentMethod = "cheque"
		_, err := uc.Register(context.Background(), p)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("budget missing persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, nil, nil, nil, nil)

		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)
		// No Create expectation: nothing may be written.

		_, err := uc.Register(context.Background(), validPayment())
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, nil, nil, nil, nil)

		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Budget{BudgetID: "b-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !strings.HasPrefix(p.PaymentID, "PAY-") {
					t.Fatalf("unexpected payment id: %s", p.PaymentID)
				}
				if p.Status != entities.PaymentStatusPending || p.Version != 1 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.Register(context.Background(), validPayment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestPaymentUseCase_Process(t *testing.T) {
	t.Run("schedules completion with transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		completion := mock_interfaces.NewMockICompletionScheduler(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil, nil, nil)
		uc.SetCompletionScheduler(completion)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1", Status: entities.PaymentStatusPending}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusProcessing || p.ProcessedAt == nil {
					t.Fatalf("expected processing payment, got %+v", p)
				}
				if !strings.HasPrefix(p.PaymentDetails.TransactionID, "TXN-") {
					t.Fatalf("expected transaction id, got %q", p.PaymentDetails.TransactionID)
				}
				if p.PaymentDetails.Installments != 3 {
					t.Fatalf("expected merged details, got %+v", p.PaymentDetails)
				}
				return p, nil
			},
		)
		completion.EXPECT().SchedulePaymentCompletion("p-1")

		res, err := uc.Process(context.Background(), "p-1", entities.PaymentDetails{Installments: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusProcessing {
			t.Fatalf("expected processing, got %s", res.Status)
		}
	})

	t.Run("works without a scheduler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil, nil, nil)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		if _, err := uc.Process(context.Background(), "p-1", entities.PaymentDetails{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil, nil, nil)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{}, nil)

		_, err := uc.Process(context.Background(), "p-1", entities.PaymentDetails{})
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_Complete(t *testing.T) {
	completedPayment := func() entities.Payment {
		now := time.Now().UTC()
		return entities.Payment{
			PaymentID:   "p-1",
			BudgetID:    "b-1",
			OrderID:     "o-1",
			CustomerID:  "cust-1",
			Amount:      150,
			Status:      entities.PaymentStatusCompleted,
			CompletedAt: &now,
		}
	}

	t.Run("replay is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, notifier, publisher, nil)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(completedPayment(), nil)
		// No Update, mail or publish: a replay must not repeat side effects.

		res, err := uc.Complete(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", res.Status)
		}
	})

	t.Run("full completion with successful sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		syncClient := mock_interfaces.NewMockIOrderSyncClient(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, orderRepo, notifier, publisher, syncClient)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1", BudgetID: "b-1", OrderID: "o-1", Status: entities.PaymentStatusProcessing}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusCompleted || p.CompletedAt == nil {
					t.Fatalf("expected completed payment, got %+v", p)
				}
				return p, nil
			},
		)
		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Budget{BudgetID: "b-1", CustomerEmail: "c@test.com"}, nil)
		notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		orderRepo.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.ServiceOrder{OrderID: "o-1", BudgetID: "b-1", Status: entities.ServiceOrderStatusPendingPayment}, nil)
		syncClient.EXPECT().UpdateOrderStatus(gomock.Any(), "o-1", "in_progress", "p-1").Return(nil, nil)
		orderRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Status != entities.ServiceOrderStatusInProgress || o.PaymentID != "p-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if !o.SyncedWithOrderService || o.LastSyncAt == nil || o.SyncError != "" {
					t.Fatalf("expected synced order, got %+v", o)
				}
				return o, nil
			},
		)
		publisher.EXPECT().Publish(gomock.Any(), TopicPaymentCompleted, gomock.Any()).Return(nil)

		if _, err := uc.Complete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sync failure still completes and records the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		syncClient := mock_interfaces.NewMockIOrderSyncClient(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, orderRepo, notifier, publisher, syncClient)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1", BudgetID: "b-1", OrderID: "o-1", Status: entities.PaymentStatusProcessing}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Budget{BudgetID: "b-1"}, nil)
		notifier.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		orderRepo.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.ServiceOrder{OrderID: "o-1", Status: entities.ServiceOrderStatusPendingPayment, SyncAttempts: 1}, nil)
		syncClient.EXPECT().UpdateOrderStatus(gomock.Any(), "o-1", "in_progress", "p-1").Return(nil, errors.New("order service unreachable"))
		orderRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Status != entities.ServiceOrderStatusInProgress {
					t.Fatalf("status must advance despite sync failure, got %s", o.Status)
				}
				if o.SyncedWithOrderService {
					t.Fatalf("order must stay unsynced")
				}
				if o.SyncAttempts != 2 || o.SyncError == "" {
					t.Fatalf("expected recorded failure, got %+v", o)
				}
				return o, nil
			},
		)
		publisher.EXPECT().Publish(gomock.Any(), TopicPaymentCompleted, gomock.Any()).Return(nil)

		if _, err := uc.Complete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing budget skips mail and event but order still updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		syncClient := mock_interfaces.NewMockIOrderSyncClient(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, orderRepo, notifier, publisher, syncClient)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1", BudgetID: "b-gone", OrderID: "o-1", Status: entities.PaymentStatusProcessing}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-gone").Return(entities.Budget{}, nil)
		orderRepo.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.ServiceOrder{OrderID: "o-1", Status: entities.ServiceOrderStatusPendingPayment}, nil)
		syncClient.EXPECT().UpdateOrderStatus(gomock.Any(), "o-1", "in_progress", "p-1").Return(nil, nil)
		orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		// No notifier or publisher expectations: both are skipped.

		if _, err := uc.Complete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Fail(t *testing.T) {
	t.Run("records reason, mails and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, nil, notifier, publisher, nil)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1", BudgetID: "b-1", Status: entities.PaymentStatusProcessing}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusFailed || p.FailureReason != "insufficient funds" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-1").Return(entities.Budget{BudgetID: "b-1"}, nil)
		notifier.EXPECT().SendPaymentFailure(gomock.Any(), gomock.Any(), gomock.Any(), "insufficient funds").Return(errors.New("smtp down"))
		publisher.EXPECT().Publish(gomock.Any(), TopicPaymentFailed, gomock.Any()).Return(nil)

		res, err := uc.Fail(context.Background(), "p-1", "insufficient funds")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %s", res.Status)
		}
	})

	t.Run("publishes even without a budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPaymentUseCase(repo, budgetRepo, nil, notifier, publisher, nil)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "p-1").Return(entities.Payment{PaymentID: "p-1", BudgetID: "b-gone"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		budgetRepo.EXPECT().GetByBudgetID(gomock.Any(), "b-gone").Return(entities.Budget{}, nil)
		publisher.EXPECT().Publish(gomock.Any(), TopicPaymentFailed, gomock.Any()).Return(nil)

		if _, err := uc.Fail(context.Background(), "p-1", "timeout"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Reads(t *testing.T) {
	t.Run("verify not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil, nil, nil)

		repo.EXPECT().GetByPaymentID(gomock.Any(), "missing").Return(entities.Payment{}, nil)

		_, err := uc.Verify(context.Background(), "missing")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("list invalid budget id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.ListByBudgetID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentBudgetID) {
			t.Fatalf("expected ErrInvalidPaymentBudgetID, got %v", err)
		}
	})
}
