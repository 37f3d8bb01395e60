package model

// Product is a catalog entry. Price and stock are non-negative.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Price        float64 `json:"price"`
	Subscription bool    `json:"subscription"`
	LicenseType  *string `json:"license_type"`
	Version      *string `json:"version"`
	Platform     *string `json:"platform"`
	Stock        int     `json:"stock"`
	ReleaseDate  Date    `json:"release_date"`
	IsPromoted   bool    `json:"is_promoted"`
}
