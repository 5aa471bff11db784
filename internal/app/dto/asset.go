package dto

type Asset struct {
	AssetID      string `json:"asset_id"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Condition    string `json:"condition"`
	Status       string `json:"status"`
	PurchaseCost string `json:"purchase_cost,omitempty"`
}
