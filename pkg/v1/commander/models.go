package commander

// RefreshCommand asks consumer to refresh tracked product.
type RefreshCommand struct {
	ProductID int64  `json:"productId"`
	URL       string `json:"url"`
}
