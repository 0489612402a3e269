package model

// 商品（api-produitsが返すレコード）。
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nom"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"prix"`
	Stock       int64   `json:"stock"`
	WeightKg    float64 `json:"poids_kg"`
	Origin      string  `json:"origine,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// 商品作成用。
type ProductCreate struct {
	Name        string  `json:"nom"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"prix"`
	Stock       int64   `json:"stock"`
	WeightKg    float64 `json:"poids_kg"`
	Origin      string  `json:"origine,omitempty"`
}

// 商品の部分更新用（PUT）。nilのフィールドは送らない。
type ProductUpdate struct {
	Name        *string  `json:"nom,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"prix,omitempty"`
	Stock       *int64   `json:"stock,omitempty"`
	WeightKg    *float64 `json:"poids_kg,omitempty"`
	Origin      *string  `json:"origine,omitempty"`
}
