// Package market is the used-book marketplace: listings priced in points and
// the purchase contract (debit the buyer, flip availability).
package market

import (
	"context"
	"fmt"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/ledger"
	"github.com/anandkv/ecopoints/internal/model"
)

type Store interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, category string) ([]model.Book, error)
	UpdateBookAvailability(ctx context.Context, id int, available bool) error

	GetAccount(ctx context.Context, id int) (model.Account, error)
}

type Service struct {
	store  Store
	ledger *ledger.Ledger
}

func NewService(store Store, ledger *ledger.Ledger) *Service {
	return &Service{store: store, ledger: ledger}
}

func (s *Service) Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if req.PointsPrice <= 0 || req.OriginalPrice <= 0 {
		return model.Book{}, errs.ErrInvalidAmount
	}
	switch req.Condition {
	case model.ConditionExcellent, model.ConditionGood, model.ConditionFair:
	default:
		return model.Book{}, fmt.Errorf("condition %q: %w", req.Condition, errs.ErrInvalidAmount)
	}
	if _, err := s.store.GetAccount(ctx, req.SellerID); err != nil {
		return model.Book{}, fmt.Errorf("seller %d: %w", req.SellerID, err)
	}

	book, err := s.store.CreateBook(ctx, model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		PointsPrice:   req.PointsPrice,
		Condition:     req.Condition,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		SellerID:      req.SellerID,
		IsAvailable:   true,
	})
	if err != nil {
		return model.Book{}, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

func (s *Service) Get(ctx context.Context, id int) (model.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, fmt.Errorf("book %d: %w", id, err)
	}
	return book, nil
}

func (s *Service) List(ctx context.Context, category string) ([]model.Book, error) {
	books, err := s.store.ListBooks(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Purchase takes the listing off the shelf with a conditional write and only
// then debits the buyer: of two concurrent buyers exactly one claims the book,
// so only one is charged. A failed debit puts the book back.
func (s *Service) Purchase(ctx context.Context, buyerID, bookID int) (model.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, fmt.Errorf("book %d: %w", bookID, err)
	}
	if !book.IsAvailable {
		return model.Book{}, errs.ErrBookUnavailable
	}
	if book.SellerID == buyerID {
		return model.Book{}, errs.ErrSelfPurchase
	}

	if err := s.store.UpdateBookAvailability(ctx, bookID, false); err != nil {
		return model.Book{}, fmt.Errorf("claim book: %w", err)
	}

	description := fmt.Sprintf("bought book %q", book.Title)
	_, err = s.ledger.Debit(ctx, buyerID, book.PointsPrice, model.TxSpend, description,
		&ledger.Ref{ItemID: book.ID, ItemType: model.RefBook})
	if err != nil {
		// back on the shelf
		_ = s.store.UpdateBookAvailability(ctx, bookID, true)
		return model.Book{}, err
	}

	book.IsAvailable = false
	return book, nil
}
