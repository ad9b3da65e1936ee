// Package ledger is the single authority for mutating an account's points
// balance, total earnings and CO2 savings. Every mutation appends exactly one
// transaction record, so the live balance always equals the sum of the
// account's transaction amounts.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/model"
)

type AccountStore interface {
	GetAccount(ctx context.Context, id int) (model.Account, error)
	ApplyAccountDelta(ctx context.Context, id int, points int, monetary, co2 float64) error
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	GetTransaction(ctx context.Context, id int) (model.Transaction, error)
	GetReversal(ctx context.Context, transactionID int) (model.Transaction, error)
}

// Ref points a transaction at the item that caused it.
type Ref struct {
	ItemID   int
	ItemType string
}

type Ledger struct {
	accounts AccountStore
	txs      TransactionStore
	locks    *accountLocks
}

func New(accounts AccountStore, txs TransactionStore) *Ledger {
	return &Ledger{
		accounts: accounts,
		txs:      txs,
		locks:    newAccountLocks(),
	}
}

// Credit adds points to the balance, monetary to total earned and co2 to the
// CO2 metric, and appends an earn transaction.
func (l *Ledger) Credit(ctx context.Context, accountID, points int, monetary, co2 float64, description string, ref *Ref) (model.Transaction, error) {
	if points <= 0 {
		return model.Transaction{}, errs.ErrInvalidAmount
	}

	unlock := l.locks.lock(accountID)
	defer unlock()

	if _, err := l.accounts.GetAccount(ctx, accountID); err != nil {
		return model.Transaction{}, fmt.Errorf("credit account %d: %w", accountID, err)
	}

	if err := l.accounts.ApplyAccountDelta(ctx, accountID, points, monetary, co2); err != nil {
		return model.Transaction{}, fmt.Errorf("apply credit: %w", err)
	}

	return l.append(ctx, model.Transaction{
		AccountID:   accountID,
		Type:        model.TxEarn,
		Amount:      points,
		Monetary:    monetary,
		CO2:         co2,
		Description: description,
	}, ref)
}

// Debit subtracts points from the balance and appends a spend or redeem
// transaction. The sufficiency check and the write happen under the account
// lock, so two concurrent debits cannot both pass against a stale balance.
func (l *Ledger) Debit(ctx context.Context, accountID, points int, txType model.TransactionType, description string, ref *Ref) (model.Transaction, error) {
	if points <= 0 {
		return model.Transaction{}, errs.ErrInvalidAmount
	}

	unlock := l.locks.lock(accountID)
	defer unlock()

	account, err := l.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("debit account %d: %w", accountID, err)
	}
	if points > account.PointsBalance {
		return model.Transaction{}, errs.ErrInsufficientBalance
	}

	if err := l.accounts.ApplyAccountDelta(ctx, accountID, -points, 0, 0); err != nil {
		return model.Transaction{}, fmt.Errorf("apply debit: %w", err)
	}

	return l.append(ctx, model.Transaction{
		AccountID:   accountID,
		Type:        txType,
		Amount:      -points,
		Description: description,
	}, ref)
}

// Reverse applies the inverse of a prior transaction and appends a
// compensating record referencing it. A transaction can be reversed once.
func (l *Ledger) Reverse(ctx context.Context, transactionID int) (model.Transaction, error) {
	orig, err := l.txs.GetTransaction(ctx, transactionID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("reverse transaction %d: %w", transactionID, err)
	}

	unlock := l.locks.lock(orig.AccountID)
	defer unlock()

	if _, err := l.txs.GetReversal(ctx, transactionID); err == nil {
		return model.Transaction{}, errs.ErrAlreadyReversed
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.Transaction{}, fmt.Errorf("check reversal of %d: %w", transactionID, err)
	}

	// Undoing an earn debits the account, which must not overdraw it.
	if orig.Amount > 0 {
		account, err := l.accounts.GetAccount(ctx, orig.AccountID)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("reverse account %d: %w", orig.AccountID, err)
		}
		if orig.Amount > account.PointsBalance {
			return model.Transaction{}, errs.ErrInsufficientBalance
		}
	}

	if err := l.accounts.ApplyAccountDelta(ctx, orig.AccountID, -orig.Amount, -orig.Monetary, -orig.CO2); err != nil {
		return model.Transaction{}, fmt.Errorf("apply reversal: %w", err)
	}

	compType := model.TxEarn
	if orig.Amount > 0 {
		compType = model.TxSpend
	}

	comp := model.Transaction{
		AccountID:       orig.AccountID,
		Type:            compType,
		Amount:          -orig.Amount,
		Monetary:        -orig.Monetary,
		CO2:             -orig.CO2,
		Description:     fmt.Sprintf("reversal of transaction %d", orig.ID),
		RelatedItemID:   orig.RelatedItemID,
		RelatedItemType: orig.RelatedItemType,
		ReversalOf:      &orig.ID,
	}

	created, err := l.txs.CreateTransaction(ctx, comp)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("record reversal: %w", err)
	}
	return created, nil
}

func (l *Ledger) append(ctx context.Context, tx model.Transaction, ref *Ref) (model.Transaction, error) {
	if ref != nil {
		tx.RelatedItemID = &ref.ItemID
		tx.RelatedItemType = ref.ItemType
	}
	created, err := l.txs.CreateTransaction(ctx, tx)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("record transaction: %w", err)
	}
	return created, nil
}
