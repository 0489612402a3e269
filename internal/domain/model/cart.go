package model

// カートの明細行。
// 追加時点の価格（prix）を必ず保存する。
// 同じproduit_idの行は1つだけ（追加時は数量加算でマージ）。
type CartLine struct {
	ProductID int64   `json:"produit_id"`
	Name      string  `json:"nom"`
	Price     float64 `json:"prix"`
	Quantity  int64   `json:"quantite"`
	Image     string  `json:"image,omitempty"`
}
