package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/anandkv/ecopoints/internal/config"
	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/ledger"
	"github.com/anandkv/ecopoints/internal/market"
	"github.com/anandkv/ecopoints/internal/middleware"
	"github.com/anandkv/ecopoints/internal/model"
	"github.com/anandkv/ecopoints/internal/redeem"
	"github.com/anandkv/ecopoints/internal/scanner"
	"github.com/anandkv/ecopoints/internal/waste"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Storage interface {
	CreateAccount(ctx context.Context, account model.Account) (model.Account, error)
	GetAccount(ctx context.Context, id int) (model.Account, error)
	UpdateAccountProfile(ctx context.Context, id int, phone, location string) (model.Account, error)
	ApplyAccountDelta(ctx context.Context, id int, points int, monetary, co2 float64) error

	CreateShop(ctx context.Context, shop model.Shop) (model.Shop, error)
	GetShop(ctx context.Context, id int) (model.Shop, error)
	ListShops(ctx context.Context) ([]model.Shop, error)
	AddPointsDistributed(ctx context.Context, shopID, points int) error

	CreateWasteCategory(ctx context.Context, category model.WasteCategory) (model.WasteCategory, error)
	GetWasteCategory(ctx context.Context, id int) (model.WasteCategory, error)
	ListWasteCategories(ctx context.Context) ([]model.WasteCategory, error)

	CreateWasteItem(ctx context.Context, item model.WasteItem) (model.WasteItem, error)
	GetWasteItem(ctx context.Context, id int) (model.WasteItem, error)
	UpdateWasteItemStatus(ctx context.Context, id int, from, to model.WasteItemStatus) error
	DeleteWasteItem(ctx context.Context, id int) error
	ListWasteItemsByAccount(ctx context.Context, accountID int) ([]model.WasteItem, error)
	ListWasteItemsByShop(ctx context.Context, shopID int) ([]model.WasteItem, error)

	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, category string) ([]model.Book, error)
	UpdateBookAvailability(ctx context.Context, id int, available bool) error

	CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	GetTransaction(ctx context.Context, id int) (model.Transaction, error)
	GetReversal(ctx context.Context, transactionID int) (model.Transaction, error)
	GetTransactionByReference(ctx context.Context, itemType string, itemID int) (model.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID int) ([]model.Transaction, error)

	CreateRedemption(ctx context.Context, redemption model.Redemption) (model.Redemption, error)
	GetRedemption(ctx context.Context, id int) (model.Redemption, error)
	UpdateRedemptionStatus(ctx context.Context, id int, from, to model.RedemptionStatus) error
	ListRedemptionsByAccount(ctx context.Context, accountID int) ([]model.Redemption, error)
}

type Server struct {
	storage    Storage
	config     *config.Config
	waste      *waste.Service
	redeem     *redeem.Service
	market     *market.Service
	classifier scanner.Classifier
}

func NewServer(storage Storage, config *config.Config) *Server {
	led := ledger.New(storage, storage)

	return &Server{
		storage:    storage,
		config:     config,
		waste:      waste.NewService(storage, led),
		redeem:     redeem.NewService(storage, led),
		market:     market.NewService(storage, led),
		classifier: scanner.NewRandomClassifier(storage),
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.config.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware)

	router.Route("/api", func(r chi.Router) {
		r.Post("/users", srv.CreateAccountHandler)
		r.Get("/users/{id}", srv.GetAccountHandler)
		r.Put("/users/{id}", srv.UpdateAccountHandler)

		r.Get("/shops", srv.ListShopsHandler)
		r.Get("/shops/{id}", srv.GetShopHandler)
		r.Post("/shops", srv.CreateShopHandler)

		r.Get("/waste-categories", srv.ListCategoriesHandler)

		r.Post("/waste-items", srv.SubmitWasteHandler)
		r.Get("/waste-items/user/{userID}", srv.ListWasteByAccountHandler)
		r.Get("/waste-items/shop/{shopID}", srv.ListWasteByShopHandler)
		r.Post("/waste-items/{id}/verify", srv.VerifyWasteHandler)
		r.Post("/waste-items/{id}/reject", srv.RejectWasteHandler)
		r.Post("/waste-items/{id}/collect", srv.CollectWasteHandler)

		r.Get("/books", srv.ListBooksHandler)
		r.Get("/books/{id}", srv.GetBookHandler)
		r.Post("/books", srv.CreateBookHandler)
		r.Post("/books/{id}/purchase", srv.PurchaseBookHandler)

		r.Get("/transactions/user/{userID}", srv.ListTransactionsHandler)

		r.Post("/point-redemptions", srv.RequestRedemptionHandler)
		r.Get("/point-redemptions/user/{userID}", srv.ListRedemptionsHandler)
		r.Post("/point-redemptions/{id}/complete", srv.CompleteRedemptionHandler)
		r.Post("/point-redemptions/{id}/cancel", srv.CancelRedemptionHandler)

		r.Post("/scan-waste", srv.ScanWasteHandler)
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.config.Logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (srv *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.config.Logger.Errorf("encode response: %v", err)
	}
}

// writeError maps core errors onto HTTP statuses. Everything else is treated
// as a storage/internal failure.
func (srv *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errs.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, errs.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyReversed),
		errors.Is(err, errs.ErrBookUnavailable),
		errors.Is(err, errs.ErrSelfPurchase):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errs.ErrStorageUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		srv.config.Logger.Errorf("internal error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
