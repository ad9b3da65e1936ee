package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS accounts (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT DEFAULT '',
		location TEXT DEFAULT '',
		points_balance INT NOT NULL DEFAULT 0 CHECK (points_balance >= 0),
		total_earned NUMERIC(10,2) NOT NULL DEFAULT 0,
		co2_saved NUMERIC(10,2) NOT NULL DEFAULT 0,
		is_shop_owner BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS shops (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		phone TEXT DEFAULT '',
		latitude NUMERIC(10,7) DEFAULT 0,
		longitude NUMERIC(10,7) DEFAULT 0,
		owner_id INT REFERENCES accounts(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		points_distributed INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS waste_categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		points_per_kg INT NOT NULL,
		description TEXT DEFAULT '',
		icon TEXT DEFAULT '',
		color TEXT DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS waste_items (
		id SERIAL PRIMARY KEY,
		account_id INT NOT NULL REFERENCES accounts(id),
		category_id INT NOT NULL REFERENCES waste_categories(id),
		shop_id INT NOT NULL REFERENCES shops(id),
		weight NUMERIC(5,2) NOT NULL,
		points_earned INT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		image_url TEXT DEFAULT '',
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS books (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		category TEXT NOT NULL,
		original_price NUMERIC(8,2) NOT NULL,
		points_price INT NOT NULL,
		condition TEXT NOT NULL,
		description TEXT DEFAULT '',
		image_url TEXT DEFAULT '',
		seller_id INT NOT NULL REFERENCES accounts(id),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		account_id INT NOT NULL REFERENCES accounts(id),
		type TEXT NOT NULL,
		amount INT NOT NULL,
		monetary NUMERIC(10,2) NOT NULL DEFAULT 0,
		co2 NUMERIC(10,2) NOT NULL DEFAULT 0,
		description TEXT DEFAULT '',
		related_item_id INT,
		related_item_type TEXT DEFAULT '',
		reversal_of INT REFERENCES transactions(id),
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS redemptions (
		id SERIAL PRIMARY KEY,
		account_id INT NOT NULL REFERENCES accounts(id),
		shop_id INT NOT NULL REFERENCES shops(id),
		points_used INT NOT NULL,
		cash_value NUMERIC(8,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT NOW()
	);`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgresStorage(ctx context.Context, databaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

// EnsureSeedData loads the reference categories plus a sample account and shop
// the first time the service runs against an empty database.
func (s *PostgresStorage) EnsureSeedData(ctx context.Context) error {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM waste_categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	const seedQuery = `
	INSERT INTO waste_categories (name, points_per_kg, description, icon, color) VALUES
		('Plastic Bottles', 50, 'PET bottles, water bottles', 'bottle', 'blue'),
		('Plastic Bags', 30, 'Shopping bags, garbage bags', 'bag', 'green'),
		('E-Waste', 100, 'Electronics, batteries, phones', 'electronics', 'purple'),
		('Paper/Cardboard', 25, 'Newspapers, boxes, magazines', 'paper', 'orange'),
		('Metal Cans', 75, 'Aluminum cans, tin cans', 'can', 'red');
	INSERT INTO accounts (username, email, phone, location)
		VALUES ('john_doe', 'john@example.com', '+91-9876543210', 'Rural Village, State');
	INSERT INTO shops (name, address, phone, latitude, longitude, points_distributed)
		VALUES ('Village General Store', '123 Main Street, Rural Village', '+91-9876543211', 23.5204, 87.3119, 5000);`

	if _, err := s.db.Exec(ctx, seedQuery); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}
	return nil
}

// Accounts

func (s *PostgresStorage) CreateAccount(ctx context.Context, account model.Account) (model.Account, error) {
	const query = `
		INSERT INTO accounts (username, email, phone, location, is_shop_owner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		account.Username, account.Email, account.Phone, account.Location, account.IsShopOwner).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return model.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return account, nil
}

func (s *PostgresStorage) GetAccount(ctx context.Context, id int) (model.Account, error) {
	const query = `
		SELECT id, username, email, phone, location, points_balance, total_earned, co2_saved, is_shop_owner, created_at
		FROM accounts WHERE id = $1`

	var account model.Account
	err := s.db.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Username, &account.Email, &account.Phone, &account.Location,
		&account.PointsBalance, &account.TotalEarned, &account.CO2Saved, &account.IsShopOwner, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, errs.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// UpdateAccountProfile edits contact fields only. Balance, earnings and CO2
// are mutated exclusively through ApplyAccountDelta.
func (s *PostgresStorage) UpdateAccountProfile(ctx context.Context, id int, phone, location string) (model.Account, error) {
	const query = `
		UPDATE accounts SET phone = $2, location = $3 WHERE id = $1
		RETURNING id, username, email, phone, location, points_balance, total_earned, co2_saved, is_shop_owner, created_at`

	var account model.Account
	err := s.db.QueryRow(ctx, query, id, phone, location).Scan(
		&account.ID, &account.Username, &account.Email, &account.Phone, &account.Location,
		&account.PointsBalance, &account.TotalEarned, &account.CO2Saved, &account.IsShopOwner, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, errs.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("update account profile: %w", err)
	}
	return account, nil
}

// ApplyAccountDelta mutates the balance inside a transaction with a row lock,
// so the check-then-write is atomic even across processes.
func (s *PostgresStorage) ApplyAccountDelta(ctx context.Context, id int, points int, monetary, co2 float64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int
	err = tx.QueryRow(ctx, `SELECT points_balance FROM accounts WHERE id = $1 FOR UPDATE`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("lock account: %w", err)
	}
	if balance+points < 0 {
		return errs.ErrInsufficientBalance
	}

	const updateQuery = `
		UPDATE accounts
		SET points_balance = points_balance + $2,
		    total_earned = total_earned + $3,
		    co2_saved = co2_saved + $4
		WHERE id = $1`

	if _, err := tx.Exec(ctx, updateQuery, id, points, monetary, co2); err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Shops

func (s *PostgresStorage) CreateShop(ctx context.Context, shop model.Shop) (model.Shop, error) {
	const query = `
		INSERT INTO shops (name, address, phone, latitude, longitude, owner_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		shop.Name, shop.Address, shop.Phone, shop.Latitude, shop.Longitude, shop.OwnerID).
		Scan(&shop.ID, &shop.CreatedAt)
	if err != nil {
		return model.Shop{}, fmt.Errorf("insert shop: %w", err)
	}
	shop.IsActive = true
	return shop, nil
}

func (s *PostgresStorage) GetShop(ctx context.Context, id int) (model.Shop, error) {
	const query = `
		SELECT id, name, address, phone, latitude, longitude, owner_id, is_active, points_distributed, created_at
		FROM shops WHERE id = $1`

	var shop model.Shop
	err := s.db.QueryRow(ctx, query, id).Scan(
		&shop.ID, &shop.Name, &shop.Address, &shop.Phone, &shop.Latitude, &shop.Longitude,
		&shop.OwnerID, &shop.IsActive, &shop.PointsDistributed, &shop.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Shop{}, errs.ErrNotFound
		}
		return model.Shop{}, fmt.Errorf("get shop: %w", err)
	}
	return shop, nil
}

func (s *PostgresStorage) ListShops(ctx context.Context) ([]model.Shop, error) {
	const query = `
		SELECT id, name, address, phone, latitude, longitude, owner_id, is_active, points_distributed, created_at
		FROM shops ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var shops []model.Shop
	for rows.Next() {
		var shop model.Shop
		err := rows.Scan(&shop.ID, &shop.Name, &shop.Address, &shop.Phone, &shop.Latitude, &shop.Longitude,
			&shop.OwnerID, &shop.IsActive, &shop.PointsDistributed, &shop.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return shops, nil
}

func (s *PostgresStorage) AddPointsDistributed(ctx context.Context, shopID, points int) error {
	const query = `UPDATE shops SET points_distributed = points_distributed + $2 WHERE id = $1`

	cmdTag, err := s.db.Exec(ctx, query, shopID, points)
	if err != nil {
		return fmt.Errorf("bump points distributed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Waste categories

func (s *PostgresStorage) CreateWasteCategory(ctx context.Context, category model.WasteCategory) (model.WasteCategory, error) {
	const query = `
		INSERT INTO waste_categories (name, points_per_kg, description, icon, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.db.QueryRow(ctx, query,
		category.Name, category.PointsPerKg, category.Description, category.Icon, category.Color).
		Scan(&category.ID)
	if err != nil {
		return model.WasteCategory{}, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

func (s *PostgresStorage) GetWasteCategory(ctx context.Context, id int) (model.WasteCategory, error) {
	const query = `SELECT id, name, points_per_kg, description, icon, color FROM waste_categories WHERE id = $1`

	var category model.WasteCategory
	err := s.db.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.PointsPerKg, &category.Description, &category.Icon, &category.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WasteCategory{}, errs.ErrNotFound
		}
		return model.WasteCategory{}, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func (s *PostgresStorage) ListWasteCategories(ctx context.Context) ([]model.WasteCategory, error) {
	const query = `SELECT id, name, points_per_kg, description, icon, color FROM waste_categories ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.WasteCategory
	for rows.Next() {
		var category model.WasteCategory
		err := rows.Scan(&category.ID, &category.Name, &category.PointsPerKg, &category.Description, &category.Icon, &category.Color)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return categories, nil
}

// Waste items

func (s *PostgresStorage) CreateWasteItem(ctx context.Context, item model.WasteItem) (model.WasteItem, error) {
	const query = `
		INSERT INTO waste_items (account_id, category_id, shop_id, weight, points_earned, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		item.AccountID, item.CategoryID, item.ShopID, item.Weight, item.PointsEarned, item.Status, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return model.WasteItem{}, fmt.Errorf("insert waste item: %w", err)
	}
	return item, nil
}

func (s *PostgresStorage) GetWasteItem(ctx context.Context, id int) (model.WasteItem, error) {
	const query = `
		SELECT id, account_id, category_id, shop_id, weight, points_earned, status, image_url, created_at
		FROM waste_items WHERE id = $1`

	var item model.WasteItem
	err := s.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.AccountID, &item.CategoryID, &item.ShopID, &item.Weight,
		&item.PointsEarned, &item.Status, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WasteItem{}, errs.ErrNotFound
		}
		return model.WasteItem{}, fmt.Errorf("get waste item: %w", err)
	}
	return item, nil
}

// UpdateWasteItemStatus writes the new status only when the item is still in
// the expected source status, so concurrent transitions race on this write and
// exactly one wins.
func (s *PostgresStorage) UpdateWasteItemStatus(ctx context.Context, id int, from, to model.WasteItemStatus) error {
	const query = `UPDATE waste_items SET status = $3 WHERE id = $1 AND status = $2`

	cmdTag, err := s.db.Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update waste item status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var current string
		err := s.db.QueryRow(ctx, `SELECT status FROM waste_items WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check waste item status: %w", err)
		}
		return errs.ErrInvalidTransition
	}
	return nil
}

func (s *PostgresStorage) DeleteWasteItem(ctx context.Context, id int) error {
	cmdTag, err := s.db.Exec(ctx, `DELETE FROM waste_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete waste item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) ListWasteItemsByAccount(ctx context.Context, accountID int) ([]model.WasteItem, error) {
	const query = `
		SELECT id, account_id, category_id, shop_id, weight, points_earned, status, image_url, created_at
		FROM waste_items WHERE account_id = $1 ORDER BY created_at DESC`

	return s.listWasteItems(ctx, query, accountID)
}

func (s *PostgresStorage) ListWasteItemsByShop(ctx context.Context, shopID int) ([]model.WasteItem, error) {
	const query = `
		SELECT id, account_id, category_id, shop_id, weight, points_earned, status, image_url, created_at
		FROM waste_items WHERE shop_id = $1 ORDER BY created_at DESC`

	return s.listWasteItems(ctx, query, shopID)
}

func (s *PostgresStorage) listWasteItems(ctx context.Context, query string, arg int) ([]model.WasteItem, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list waste items: %w", err)
	}
	defer rows.Close()

	var items []model.WasteItem
	for rows.Next() {
		var item model.WasteItem
		err := rows.Scan(&item.ID, &item.AccountID, &item.CategoryID, &item.ShopID, &item.Weight,
			&item.PointsEarned, &item.Status, &item.ImageURL, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan waste item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return items, nil
}

// Books

func (s *PostgresStorage) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	const query = `
		INSERT INTO books (title, author, category, original_price, points_price, condition, description, image_url, seller_id, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		book.Title, book.Author, book.Category, book.OriginalPrice, book.PointsPrice,
		book.Condition, book.Description, book.ImageURL, book.SellerID, book.IsAvailable).
		Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		return model.Book{}, fmt.Errorf("insert book: %w", err)
	}
	return book, nil
}

func (s *PostgresStorage) GetBook(ctx context.Context, id int) (model.Book, error) {
	const query = `
		SELECT id, title, author, category, original_price, points_price, condition, description, image_url, seller_id, is_available, created_at
		FROM books WHERE id = $1`

	var book model.Book
	err := s.db.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.Category, &book.OriginalPrice, &book.PointsPrice,
		&book.Condition, &book.Description, &book.ImageURL, &book.SellerID, &book.IsAvailable, &book.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

func (s *PostgresStorage) ListBooks(ctx context.Context, category string) ([]model.Book, error) {
	query := `
		SELECT id, title, author, category, original_price, points_price, condition, description, image_url, seller_id, is_available, created_at
		FROM books`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var book model.Book
		err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Category, &book.OriginalPrice, &book.PointsPrice,
			&book.Condition, &book.Description, &book.ImageURL, &book.SellerID, &book.IsAvailable, &book.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return books, nil
}

// UpdateBookAvailability flips availability only when it actually changes.
// Taking a book off the shelf that is already off fails with
// ErrBookUnavailable, so of two concurrent buyers only one claims it.
// Putting an already-available book back is a no-op.
func (s *PostgresStorage) UpdateBookAvailability(ctx context.Context, id int, available bool) error {
	const query = `UPDATE books SET is_available = $2 WHERE id = $1 AND is_available <> $2`

	cmdTag, err := s.db.Exec(ctx, query, id, available)
	if err != nil {
		return fmt.Errorf("update book availability: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var current bool
		err := s.db.QueryRow(ctx, `SELECT is_available FROM books WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check book availability: %w", err)
		}
		if !available {
			return errs.ErrBookUnavailable
		}
	}
	return nil
}

// Transactions

func (s *PostgresStorage) CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	const query = `
		INSERT INTO transactions (account_id, type, amount, monetary, co2, description, related_item_id, related_item_type, reversal_of)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		tx.AccountID, tx.Type, tx.Amount, tx.Monetary, tx.CO2, tx.Description,
		tx.RelatedItemID, tx.RelatedItemType, tx.ReversalOf).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return tx, nil
}

func (s *PostgresStorage) GetTransaction(ctx context.Context, id int) (model.Transaction, error) {
	const query = `
		SELECT id, account_id, type, amount, monetary, co2, description, related_item_id, related_item_type, reversal_of, created_at
		FROM transactions WHERE id = $1`

	return s.scanTransaction(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresStorage) GetReversal(ctx context.Context, transactionID int) (model.Transaction, error) {
	const query = `
		SELECT id, account_id, type, amount, monetary, co2, description, related_item_id, related_item_type, reversal_of, created_at
		FROM transactions WHERE reversal_of = $1`

	return s.scanTransaction(s.db.QueryRow(ctx, query, transactionID))
}

func (s *PostgresStorage) GetTransactionByReference(ctx context.Context, itemType string, itemID int) (model.Transaction, error) {
	const query = `
		SELECT id, account_id, type, amount, monetary, co2, description, related_item_id, related_item_type, reversal_of, created_at
		FROM transactions
		WHERE related_item_type = $1 AND related_item_id = $2 AND reversal_of IS NULL
		ORDER BY id LIMIT 1`

	return s.scanTransaction(s.db.QueryRow(ctx, query, itemType, itemID))
}

func (s *PostgresStorage) scanTransaction(row pgx.Row) (model.Transaction, error) {
	var tx model.Transaction
	err := row.Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.Amount, &tx.Monetary, &tx.CO2,
		&tx.Description, &tx.RelatedItemID, &tx.RelatedItemType, &tx.ReversalOf, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, errs.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	return tx, nil
}

func (s *PostgresStorage) ListTransactionsByAccount(ctx context.Context, accountID int) ([]model.Transaction, error) {
	const query = `
		SELECT id, account_id, type, amount, monetary, co2, description, related_item_id, related_item_type, reversal_of, created_at
		FROM transactions WHERE account_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.Amount, &tx.Monetary, &tx.CO2,
			&tx.Description, &tx.RelatedItemID, &tx.RelatedItemType, &tx.ReversalOf, &tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return txs, nil
}

// Redemptions

func (s *PostgresStorage) CreateRedemption(ctx context.Context, redemption model.Redemption) (model.Redemption, error) {
	const query = `
		INSERT INTO redemptions (account_id, shop_id, points_used, cash_value, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		redemption.AccountID, redemption.ShopID, redemption.PointsUsed, redemption.CashValue, redemption.Status).
		Scan(&redemption.ID, &redemption.CreatedAt)
	if err != nil {
		return model.Redemption{}, fmt.Errorf("insert redemption: %w", err)
	}
	return redemption, nil
}

func (s *PostgresStorage) GetRedemption(ctx context.Context, id int) (model.Redemption, error) {
	const query = `
		SELECT id, account_id, shop_id, points_used, cash_value, status, created_at
		FROM redemptions WHERE id = $1`

	var redemption model.Redemption
	err := s.db.QueryRow(ctx, query, id).Scan(
		&redemption.ID, &redemption.AccountID, &redemption.ShopID,
		&redemption.PointsUsed, &redemption.CashValue, &redemption.Status, &redemption.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Redemption{}, errs.ErrNotFound
		}
		return model.Redemption{}, fmt.Errorf("get redemption: %w", err)
	}
	return redemption, nil
}

// UpdateRedemptionStatus writes the new status only when the redemption is
// still in the expected source status. See UpdateWasteItemStatus.
func (s *PostgresStorage) UpdateRedemptionStatus(ctx context.Context, id int, from, to model.RedemptionStatus) error {
	const query = `UPDATE redemptions SET status = $3 WHERE id = $1 AND status = $2`

	cmdTag, err := s.db.Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update redemption status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var current string
		err := s.db.QueryRow(ctx, `SELECT status FROM redemptions WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check redemption status: %w", err)
		}
		return errs.ErrInvalidTransition
	}
	return nil
}

func (s *PostgresStorage) ListRedemptionsByAccount(ctx context.Context, accountID int) ([]model.Redemption, error) {
	const query = `
		SELECT id, account_id, shop_id, points_used, cash_value, status, created_at
		FROM redemptions WHERE account_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []model.Redemption
	for rows.Next() {
		var redemption model.Redemption
		err := rows.Scan(&redemption.ID, &redemption.AccountID, &redemption.ShopID,
			&redemption.PointsUsed, &redemption.CashValue, &redemption.Status, &redemption.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan redemption: %w", err)
		}
		redemptions = append(redemptions, redemption)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return redemptions, nil
}
