package domain

// CartItem holds a snapshot of the product as it was when added.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// FindItem returns the index of the entry for productID, or -1.
// CloneItems copies items together with their product snapshots.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = CartItem{Product: item.Product.Clone(), Quantity: item.Quantity}
	}
	return out
}

func FindItem(items []CartItem, productID string) int {
	for i, item := range items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
