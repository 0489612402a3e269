package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	ClientsAPIURL  string // 顧客サービス（api-clients）のベースURL
	ProductsAPIURL string // 商品サービス（api-produits）のベースURL
	OrdersAPIURL   string // 注文サービス（api-commandes）のベースURL

	APIKey string // X-API-Keyの値。空なら送らない（最小構成）

	SessionSecret string // パーティションCookieの署名シークレット

	StorageDriver string // file / postgres
	StorageDir    string // fileドライバの保存先

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		ClientsAPIURL:  os.Getenv("CLIENTS_API_URL"),
		ProductsAPIURL: os.Getenv("PRODUCTS_API_URL"),
		OrdersAPIURL:   os.Getenv("ORDERS_API_URL"),

		APIKey: os.Getenv("API_KEY"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		StorageDir:    os.Getenv("STORAGE_DIR"),

		GoEnv: os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.ClientsAPIURL == "" {
		return Config{}, fmt.Errorf("CLIENTS_API_URL is required")
	}
	if cfg.ProductsAPIURL == "" {
		return Config{}, fmt.Errorf("PRODUCTS_API_URL is required")
	}
	if cfg.OrdersAPIURL == "" {
		return Config{}, fmt.Errorf("ORDERS_API_URL is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}

	//省略時はファイル保存
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "file"
	}
	if cfg.StorageDriver == "file" && cfg.StorageDir == "" {
		cfg.StorageDir = "./data"
	}

	return cfg, nil
}
