package model

import "time"

// PointValueRate converts points to currency units. Used both when valuing
// earned points and when pricing a cash redemption.
const PointValueRate = 0.10

// CO2PerKg is the CO2 saving (kg) attributed to one kilogram of recycled waste.
const CO2PerKg = 0.5

type WasteItemStatus string

const (
	ItemPending   WasteItemStatus = "pending"
	ItemVerified  WasteItemStatus = "verified"
	ItemCollected WasteItemStatus = "collected"
	ItemRejected  WasteItemStatus = "rejected"
)

type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "pending"
	RedemptionCompleted RedemptionStatus = "completed"
	RedemptionCancelled RedemptionStatus = "cancelled"
)

type TransactionType string

const (
	TxEarn   TransactionType = "earn"
	TxSpend  TransactionType = "spend"
	TxRedeem TransactionType = "redeem"
)

type BookCondition string

const (
	ConditionExcellent BookCondition = "excellent"
	ConditionGood      BookCondition = "good"
	ConditionFair      BookCondition = "fair"
)

// Related item types recorded on transactions.
const (
	RefWaste      = "waste"
	RefBook       = "book"
	RefRedemption = "redemption"
)

type Account struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	PointsBalance int       `json:"points"`
	TotalEarned   float64   `json:"total_earned"`
	CO2Saved      float64   `json:"co2_saved"`
	IsShopOwner   bool      `json:"is_shop_owner"`
	CreatedAt     time.Time `json:"created_at"`
}

type Shop struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone,omitempty"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	OwnerID           *int      `json:"owner_id,omitempty"`
	IsActive          bool      `json:"is_active"`
	PointsDistributed int       `json:"points_distributed"`
	CreatedAt         time.Time `json:"created_at"`
}

type WasteCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PointsPerKg int    `json:"points_per_kg"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// WasteItem is one weighed submission. PointsEarned is fixed at creation and
// never recomputed; only Status changes afterwards.
type WasteItem struct {
	ID           int             `json:"id"`
	AccountID    int             `json:"user_id"`
	CategoryID   int             `json:"category_id"`
	ShopID       int             `json:"shop_id"`
	Weight       float64         `json:"weight"`
	PointsEarned int             `json:"points_earned"`
	Status       WasteItemStatus `json:"status"`
	ImageURL     string          `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Book struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	Category      string        `json:"category"`
	OriginalPrice float64       `json:"original_price"`
	PointsPrice   int           `json:"points_price"`
	Condition     BookCondition `json:"condition"`
	Description   string        `json:"description,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	SellerID      int           `json:"seller_id"`
	IsAvailable   bool          `json:"is_available"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Transaction is an append-only audit record of a balance change. Amount is
// signed: earn transactions are positive, spend/redeem negative. Monetary and
// CO2 carry the signed deltas applied to TotalEarned and CO2Saved so that a
// reversal can undo the whole mutation, not just the points.
type Transaction struct {
	ID              int             `json:"id"`
	AccountID       int             `json:"user_id"`
	Type            TransactionType `json:"type"`
	Amount          int             `json:"amount"`
	Monetary        float64         `json:"monetary"`
	CO2             float64         `json:"co2"`
	Description     string          `json:"description,omitempty"`
	RelatedItemID   *int            `json:"related_item_id,omitempty"`
	RelatedItemType string          `json:"related_item_type,omitempty"`
	ReversalOf      *int            `json:"reversal_of,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type Redemption struct {
	ID         int              `json:"id"`
	AccountID  int              `json:"user_id"`
	ShopID     int              `json:"shop_id"`
	PointsUsed int              `json:"points_used"`
	CashValue  float64          `json:"cash_value"`
	Status     RedemptionStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ScanResult is what the classifier returns for a scanned image.
type ScanResult struct {
	Category    WasteCategory `json:"category"`
	Confidence  float64       `json:"confidence"`
	Suggestions []string      `json:"suggestions"`
}
