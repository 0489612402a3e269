package model

// 顧客（api-clientsが返すレコード）。
// JSONフィールド名はサービス側の仕様（フランス語）に合わせる。
type Customer struct {
	ID        int64  `json:"id"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
}

// 顧客作成用（idはサーバー採番なので持たない）。
type CustomerCreate struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
}
