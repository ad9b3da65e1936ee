// Package waste owns the waste item lifecycle: pending → verified → collected,
// or pending → rejected. Points are granted at submission time; rejecting a
// pending item reverses the original credit so rejected waste never pays out.
package waste

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/ledger"
	"github.com/anandkv/ecopoints/internal/model"
)

type Store interface {
	GetAccount(ctx context.Context, id int) (model.Account, error)
	GetWasteCategory(ctx context.Context, id int) (model.WasteCategory, error)
	GetShop(ctx context.Context, id int) (model.Shop, error)
	AddPointsDistributed(ctx context.Context, shopID, points int) error

	CreateWasteItem(ctx context.Context, item model.WasteItem) (model.WasteItem, error)
	GetWasteItem(ctx context.Context, id int) (model.WasteItem, error)
	UpdateWasteItemStatus(ctx context.Context, id int, from, to model.WasteItemStatus) error
	DeleteWasteItem(ctx context.Context, id int) error
	ListWasteItemsByAccount(ctx context.Context, accountID int) ([]model.WasteItem, error)
	ListWasteItemsByShop(ctx context.Context, shopID int) ([]model.WasteItem, error)

	GetTransactionByReference(ctx context.Context, itemType string, itemID int) (model.Transaction, error)
}

type Service struct {
	store  Store
	ledger *ledger.Ledger
}

func NewService(store Store, ledger *ledger.Ledger) *Service {
	return &Service{store: store, ledger: ledger}
}

// Submit creates a pending waste item and credits the account immediately.
// pointsEarned is fixed here and never recomputed, so later rate changes on
// the category cannot alter already-earned points.
func (s *Service) Submit(ctx context.Context, req model.SubmitWasteRequest) (model.WasteItem, error) {
	if req.Weight <= 0 {
		return model.WasteItem{}, errs.ErrInvalidAmount
	}

	if _, err := s.store.GetAccount(ctx, req.AccountID); err != nil {
		return model.WasteItem{}, fmt.Errorf("submit: account %d: %w", req.AccountID, err)
	}
	category, err := s.store.GetWasteCategory(ctx, req.CategoryID)
	if err != nil {
		return model.WasteItem{}, fmt.Errorf("submit: category %d: %w", req.CategoryID, err)
	}
	if _, err := s.store.GetShop(ctx, req.ShopID); err != nil {
		return model.WasteItem{}, fmt.Errorf("submit: shop %d: %w", req.ShopID, err)
	}

	points := int(math.Round(float64(category.PointsPerKg) * req.Weight))
	if points <= 0 {
		return model.WasteItem{}, errs.ErrInvalidAmount
	}

	item, err := s.store.CreateWasteItem(ctx, model.WasteItem{
		AccountID:    req.AccountID,
		CategoryID:   req.CategoryID,
		ShopID:       req.ShopID,
		Weight:       req.Weight,
		PointsEarned: points,
		Status:       model.ItemPending,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return model.WasteItem{}, fmt.Errorf("create waste item: %w", err)
	}

	description := fmt.Sprintf("recycled %.2f kg of %s", req.Weight, category.Name)
	_, err = s.ledger.Credit(ctx, req.AccountID, points,
		float64(points)*model.PointValueRate,
		req.Weight*model.CO2PerKg,
		description,
		&ledger.Ref{ItemID: item.ID, ItemType: model.RefWaste})
	if err != nil {
		// an item without its credit would be unrejectable; remove it so a
		// failed submission leaves nothing behind
		_ = s.store.DeleteWasteItem(ctx, item.ID)
		return model.WasteItem{}, fmt.Errorf("credit submission: %w", err)
	}

	return item, nil
}

// Verify moves a pending item to verified. The points were already granted at
// submission, so there is no ledger effect.
func (s *Service) Verify(ctx context.Context, itemID int) (model.WasteItem, error) {
	return s.transition(ctx, itemID, model.ItemPending, model.ItemVerified, nil)
}

// Reject moves a pending item to rejected and reverses the submission credit.
func (s *Service) Reject(ctx context.Context, itemID int) (model.WasteItem, error) {
	return s.transition(ctx, itemID, model.ItemPending, model.ItemRejected, func(ctx context.Context, item model.WasteItem) error {
		tx, err := s.store.GetTransactionByReference(ctx, model.RefWaste, item.ID)
		if err != nil {
			return fmt.Errorf("find submission credit: %w", err)
		}
		if _, err := s.ledger.Reverse(ctx, tx.ID); err != nil {
			return fmt.Errorf("reverse submission credit: %w", err)
		}
		return nil
	})
}

// Collect moves a verified item to collected and counts its points against
// the shop's distributed total.
func (s *Service) Collect(ctx context.Context, itemID int) (model.WasteItem, error) {
	return s.transition(ctx, itemID, model.ItemVerified, model.ItemCollected, func(ctx context.Context, item model.WasteItem) error {
		if err := s.store.AddPointsDistributed(ctx, item.ShopID, item.PointsEarned); err != nil {
			return fmt.Errorf("bump shop counter: %w", err)
		}
		return nil
	})
}

// transition claims the status change with a conditional write before running
// the side effect: of two concurrent callers only one wins the write, so the
// effect runs at most once. A failed effect releases the claim, leaving the
// item as it was.
func (s *Service) transition(ctx context.Context, itemID int, from, to model.WasteItemStatus, effect func(context.Context, model.WasteItem) error) (model.WasteItem, error) {
	item, err := s.store.GetWasteItem(ctx, itemID)
	if err != nil {
		return model.WasteItem{}, fmt.Errorf("waste item %d: %w", itemID, err)
	}
	if item.Status != from {
		return model.WasteItem{}, fmt.Errorf("%s -> %s: %w", item.Status, to, errs.ErrInvalidTransition)
	}

	if err := s.store.UpdateWasteItemStatus(ctx, itemID, from, to); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return model.WasteItem{}, fmt.Errorf("%s -> %s: %w", from, to, errs.ErrInvalidTransition)
		}
		return model.WasteItem{}, fmt.Errorf("update status: %w", err)
	}

	if effect != nil {
		if err := effect(ctx, item); err != nil {
			_ = s.store.UpdateWasteItemStatus(ctx, itemID, to, from)
			return model.WasteItem{}, err
		}
	}

	item.Status = to
	return item, nil
}

func (s *Service) ListByAccount(ctx context.Context, accountID int) ([]model.WasteItem, error) {
	items, err := s.store.ListWasteItemsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list items by account: %w", err)
	}
	return items, nil
}

func (s *Service) ListByShop(ctx context.Context, shopID int) ([]model.WasteItem, error) {
	items, err := s.store.ListWasteItemsByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("list items by shop: %w", err)
	}
	return items, nil
}
