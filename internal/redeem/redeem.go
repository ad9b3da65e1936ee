// Package redeem converts a points balance into a cash-value redemption at a
// partner shop. Points are deducted at request time, not at completion, so the
// displayed balance always equals what is spendable right now; cancellation
// credits the points back.
package redeem

import (
	"context"
	"errors"
	"fmt"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/ledger"
	"github.com/anandkv/ecopoints/internal/model"
)

type Store interface {
	GetShop(ctx context.Context, id int) (model.Shop, error)

	CreateRedemption(ctx context.Context, redemption model.Redemption) (model.Redemption, error)
	GetRedemption(ctx context.Context, id int) (model.Redemption, error)
	UpdateRedemptionStatus(ctx context.Context, id int, from, to model.RedemptionStatus) error
	ListRedemptionsByAccount(ctx context.Context, accountID int) ([]model.Redemption, error)
}

type Service struct {
	store  Store
	ledger *ledger.Ledger
}

func NewService(store Store, ledger *ledger.Ledger) *Service {
	return &Service{store: store, ledger: ledger}
}

// Request debits the account immediately and creates a pending redemption.
// A debit that would overdraw the balance fails before anything is persisted.
func (s *Service) Request(ctx context.Context, req model.RedemptionRequest) (model.Redemption, error) {
	if req.PointsUsed <= 0 {
		return model.Redemption{}, errs.ErrInvalidAmount
	}

	shop, err := s.store.GetShop(ctx, req.ShopID)
	if err != nil {
		return model.Redemption{}, fmt.Errorf("request: shop %d: %w", req.ShopID, err)
	}

	description := fmt.Sprintf("redeemed %d points for cash at %s", req.PointsUsed, shop.Name)
	if _, err := s.ledger.Debit(ctx, req.AccountID, req.PointsUsed, model.TxRedeem, description, nil); err != nil {
		return model.Redemption{}, err
	}

	redemption, err := s.store.CreateRedemption(ctx, model.Redemption{
		AccountID:  req.AccountID,
		ShopID:     req.ShopID,
		PointsUsed: req.PointsUsed,
		CashValue:  float64(req.PointsUsed) * model.PointValueRate,
		Status:     model.RedemptionPending,
	})
	if err != nil {
		return model.Redemption{}, fmt.Errorf("create redemption: %w", err)
	}
	return redemption, nil
}

// Complete marks a pending redemption as paid out. The points were deducted
// at request time, so there is no further ledger effect.
func (s *Service) Complete(ctx context.Context, id int) (model.Redemption, error) {
	return s.transition(ctx, id, model.RedemptionCompleted, nil)
}

// Cancel restores the deducted points with a credit of equal magnitude. The
// credit carries no monetary or CO2 delta: cumulative earnings were never
// touched by the redemption.
func (s *Service) Cancel(ctx context.Context, id int) (model.Redemption, error) {
	return s.transition(ctx, id, model.RedemptionCancelled, func(ctx context.Context, redemption model.Redemption) error {
		description := fmt.Sprintf("redemption %d cancelled", redemption.ID)
		_, err := s.ledger.Credit(ctx, redemption.AccountID, redemption.PointsUsed, 0, 0, description,
			&ledger.Ref{ItemID: redemption.ID, ItemType: model.RefRedemption})
		if err != nil {
			return fmt.Errorf("restore points: %w", err)
		}
		return nil
	})
}

// transition claims the status change with a conditional write before running
// the side effect: of two concurrent callers only one wins the write, so a
// cancellation credits the account at most once. A failed effect releases the
// claim, leaving the redemption pending so the caller can retry.
func (s *Service) transition(ctx context.Context, id int, to model.RedemptionStatus, effect func(context.Context, model.Redemption) error) (model.Redemption, error) {
	redemption, err := s.store.GetRedemption(ctx, id)
	if err != nil {
		return model.Redemption{}, fmt.Errorf("redemption %d: %w", id, err)
	}
	if redemption.Status != model.RedemptionPending {
		return model.Redemption{}, fmt.Errorf("%s -> %s: %w", redemption.Status, to, errs.ErrInvalidTransition)
	}

	if err := s.store.UpdateRedemptionStatus(ctx, id, model.RedemptionPending, to); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return model.Redemption{}, fmt.Errorf("%s -> %s: %w", model.RedemptionPending, to, errs.ErrInvalidTransition)
		}
		return model.Redemption{}, fmt.Errorf("update status: %w", err)
	}

	if effect != nil {
		if err := effect(ctx, redemption); err != nil {
			_ = s.store.UpdateRedemptionStatus(ctx, id, to, model.RedemptionPending)
			return model.Redemption{}, err
		}
	}

	redemption.Status = to
	return redemption, nil
}

func (s *Service) ListByAccount(ctx context.Context, accountID int) ([]model.Redemption, error) {
	redemptions, err := s.store.ListRedemptionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list redemptions: %w", err)
	}
	return redemptions, nil
}
