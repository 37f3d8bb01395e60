package model

// Subscription links a user to a product for a date range (EndDate >= StartDate).
type Subscription struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	ProductID int64    `json:"product_id"`
	StartDate Date     `json:"start_date"`
	EndDate   Date     `json:"end_date"`
	AutoRenew bool     `json:"auto_renew"`
	Product   *Product `json:"product"`
}
