package domain

import "time"

// LostItemStatus enumerates claim states for found items.
type LostItemStatus string

const (
	LostItemStatusClaimed   LostItemStatus = "claimed"
	LostItemStatusUnclaimed LostItemStatus = "unclaimed"
)

// LostItem is an item found on the network and posted by staff or riders.
type LostItem struct {
	ID          int64
	Title       string
	Description string
	ImageURL    *string
	Location    string
	Status      LostItemStatus
	PostedBy    int64
}

// LostReport is a rider's report of a personal item lost on the network.
type LostReport struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Contact     string
	SubmittedAt time.Time
}
