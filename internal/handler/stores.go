package handler

import (
	"payetonkawa/internal/apiclient"
	"payetonkawa/internal/cart"
	"payetonkawa/internal/middleware"
	"payetonkawa/internal/session"
	"payetonkawa/internal/storage"

	"github.com/labstack/echo/v4"
)

// Stores はリクエストごとに訪問者パーティション用のストアを組み立てる。
// Storage本体は共有し、キーのプレフィックスだけ分ける。
type Stores struct {
	st        storage.Storage
	customers *apiclient.Customers
}

func NewStores(st storage.Storage, customers *apiclient.Customers) *Stores {
	return &Stores{st: st, customers: customers}
}

func (f *Stores) scoped(c echo.Context) storage.Storage {
	p, ok := middleware.PartitionFromContext(c)
	if !ok {
		return f.st
	}
	return storage.WithPrefix(f.st, p+"/")
}

func (f *Stores) Session(c echo.Context) *session.Store {
	return session.NewStore(f.scoped(c), f.customers)
}

func (f *Stores) Cart(c echo.Context) *cart.Store {
	return cart.NewStore(f.scoped(c))
}
