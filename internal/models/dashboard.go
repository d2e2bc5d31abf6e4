package models

import "time"

// Activity is one derived entry of the recent-activity feed.
type Activity struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Time       string    `json:"time"`
	Emoji      string    `json:"emoji"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Stats are the dashboard counters over a user's produce and orders.
type Stats struct {
	TotalProduce    int     `json:"total_produce"`
	TotalQuantity   float64 `json:"total_quantity"`
	ActiveOrders    int     `json:"active_orders"`
	CompletedOrders int     `json:"completed_orders"`
}

// LevelProgress describes how far a user is into their current level.
type LevelProgress struct {
	XP            int `json:"xp"`
	Level         int `json:"level"`
	XPIntoLevel   int `json:"xp_into_level"`
	XPToNextLevel int `json:"xp_to_next_level"`
}

// CatalogEntry is a selectable produce type.
type CatalogEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}
