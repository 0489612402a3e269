package main

import (
	"payetonkawa/internal/apiclient"
	"payetonkawa/internal/config"
	"payetonkawa/internal/handler"
	"payetonkawa/internal/infra/db"
	infraStorage "payetonkawa/internal/infra/storage"
	"payetonkawa/internal/server"
	"payetonkawa/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//保存先の選択（file / postgres）
	var st storage.Storage
	switch cfg.StorageDriver {
	case "postgres":
		gormDB, err := db.Connect()
		if err != nil {
			panic(err)
		}
		if err := gormDB.AutoMigrate(&infraStorage.Entry{}); err != nil {
			panic(err)
		}
		st = infraStorage.NewGorm(gormDB)
	default:
		fileSt, err := storage.NewFile(cfg.StorageDir)
		if err != nil {
			panic(err)
		}
		st = fileSt
	}

	//サービスごとのクライアント生成（APIキーは共通）
	customers := apiclient.NewCustomers(apiclient.New(cfg.ClientsAPIURL, cfg.APIKey, nil))
	products := apiclient.NewProducts(apiclient.New(cfg.ProductsAPIURL, cfg.APIKey, nil))
	orders := apiclient.NewOrders(apiclient.New(cfg.OrdersAPIURL, cfg.APIKey, nil))

	stores := handler.NewStores(st, customers)

	//Handler生成
	authH := handler.NewAuthHandler(stores)
	cartH := handler.NewCartHandler(stores, products)
	productH := handler.NewProductHandler(products)
	orderH := handler.NewOrderHandler(stores, orders)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, authH, cartH, productH, orderH)
	if err := server.Start(addr, e); err != nil {
		panic(err)
	}
}
