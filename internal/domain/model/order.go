package model

import "time"

// 注文ステータス（api-commandes側の値）。
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "en_attente"
	OrderStatusValidated OrderStatus = "validee"
	OrderStatusShipped   OrderStatus = "expediee"
	OrderStatusCanceled  OrderStatus = "annulee"
)

// 注文（api-commandesが返すレコード）。
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"client_id"`
	Status     OrderStatus `json:"statut"`
	Total      float64     `json:"total"`
	OrderedAt  time.Time   `json:"date_commande"`
	ModifiedAt time.Time   `json:"date_modification"`
	Lines      []OrderLine `json:"lignes"`
}

// 注文の明細行。
type OrderLine struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"commande_id"`
	ProductID int64   `json:"produit_id"`
	Quantity  int64   `json:"quantite"`
	UnitPrice float64 `json:"prix_unitaire"`
}

// 注文作成用。
type OrderCreate struct {
	CustomerID int64             `json:"client_id"`
	Lines      []OrderLineCreate `json:"lignes"`
}

type OrderLineCreate struct {
	ProductID int64   `json:"produit_id"`
	Quantity  int64   `json:"quantite"`
	UnitPrice float64 `json:"prix_unitaire"`
}

// ステータス更新用（PUT）。
type OrderUpdate struct {
	Status OrderStatus `json:"statut"`
}
