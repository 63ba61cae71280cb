package types

// Report holds aggregate statistics derived from the collection.
type Report struct {
	Count        int     `json:"count"`         // Number of distinct items.
	TotalStock   int64   `json:"total_stock"`   // Sum of stock over all items.
	TotalValue   float64 `json:"total_value"`   // Sum of stock times price.
	AverageValue float64 `json:"average_value"` // TotalValue / Count; 0 when empty.
	LowestStock  string  `json:"lowest_stock"`  // Name of the item with the least stock.
	HighestValue string  `json:"highest_value"` // Name of the item with the greatest value.
}
