package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"payetonkawa/internal/apiclient"
	"payetonkawa/internal/config"
	"payetonkawa/internal/domain/model"
	"payetonkawa/internal/handler"
	"payetonkawa/internal/storage"

	"github.com/stretchr/testify/assert"
)

// 3サービスのスタブ。顧客と注文はメモリに積むだけ。
type fakeBackends struct {
	customers []model.Customer
	orders    []model.Order

	clientsSrv  *httptest.Server
	productsSrv *httptest.Server
	ordersSrv   *httptest.Server
}

func newFakeBackends(t *testing.T) *fakeBackends {
	t.Helper()
	f := &fakeBackends{}

	f.clientsSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers/":
			json.NewEncoder(w).Encode(f.customers)
		case r.Method == http.MethodPost && r.URL.Path == "/customers/":
			var in model.CustomerCreate
			json.NewDecoder(r.Body).Decode(&in)
			c := model.Customer{
				ID:        int64(len(f.customers) + 1),
				LastName:  in.LastName,
				FirstName: in.FirstName,
				Email:     in.Email,
			}
			f.customers = append(f.customers, c)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(c)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	f.productsSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products/":
			fmt.Fprint(w, `[{"id":1,"nom":"Kawa du Brésil","prix":3.0,"stock":40,"poids_kg":0.25}]`)
		case r.Method == http.MethodGet && r.URL.Path == "/products/1":
			fmt.Fprint(w, `{"id":1,"nom":"Kawa du Brésil","prix":3.0,"stock":40,"poids_kg":0.25}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	f.ordersSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/orders/":
			var in model.OrderCreate
			json.NewDecoder(r.Body).Decode(&in)
			o := model.Order{
				ID:         int64(len(f.orders) + 1),
				CustomerID: in.CustomerID,
				Status:     model.OrderStatusPending,
			}
			for _, l := range in.Lines {
				o.Total += l.UnitPrice * float64(l.Quantity)
				o.Lines = append(o.Lines, model.OrderLine{
					ProductID: l.ProductID,
					Quantity:  l.Quantity,
					UnitPrice: l.UnitPrice,
				})
			}
			f.orders = append(f.orders, o)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(o)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/orders/client/"):
			json.NewEncoder(w).Encode(f.orders)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Cleanup(func() {
		f.clientsSrv.Close()
		f.productsSrv.Close()
		f.ordersSrv.Close()
	})
	return f
}

// ストアフロント一式を起動して、Cookie持ちのHTTPクライアントを返す。
func newStorefront(t *testing.T, f *fakeBackends) (*httptest.Server, *http.Client) {
	t.Helper()

	cfg := config.Config{SessionSecret: "test-secret"}
	st := storage.NewMemory()

	customers := apiclient.NewCustomers(apiclient.New(f.clientsSrv.URL, "", nil))
	products := apiclient.NewProducts(apiclient.New(f.productsSrv.URL, "", nil))
	orders := apiclient.NewOrders(apiclient.New(f.ordersSrv.URL, "", nil))

	stores := handler.NewStores(st, customers)
	e := New(cfg,
		handler.NewAuthHandler(stores),
		handler.NewCartHandler(stores, products),
		handler.NewProductHandler(products),
		handler.NewOrderHandler(stores, orders),
	)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	assert.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, reader)
	assert.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	assert.NoError(t, err)
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, respBody
}

func TestStorefront_RegisterLoginCartCheckoutFlow(t *testing.T) {
	f := newFakeBackends(t)
	srv, client := newStorefront(t, f)

	//未ログイン
	resp, _ := doJSON(t, client, http.MethodGet, srv.URL+"/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	//会員登録
	resp, body := doJSON(t, client, http.MethodPost, srv.URL+"/auth/register", map[string]string{
		"nom": "Dupont", "prenom": "Jean", "email": "jean@example.com",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var me model.Customer
	assert.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, int64(1), me.ID)

	//登録後はme
	resp, _ = doJSON(t, client, http.MethodGet, srv.URL+"/auth/me", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	//カートに追加（商品情報は商品サービスから引く）
	resp, body = doJSON(t, client, http.MethodPost, srv.URL+"/cart", map[string]any{
		"produit_id": 1, "quantite": 2,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cartResp handler.CartResponse
	assert.NoError(t, json.Unmarshal(body, &cartResp))
	assert.Len(t, cartResp.Items, 1)
	assert.Equal(t, "Kawa du Brésil", cartResp.Items[0].Name)
	assert.Equal(t, int64(2), cartResp.Count)
	assert.Equal(t, 6.0, cartResp.Total)

	//数量変更
	resp, body = doJSON(t, client, http.MethodPatch, srv.URL+"/cart/1", map[string]any{"quantite": 5})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, json.Unmarshal(body, &cartResp))
	assert.Equal(t, int64(5), cartResp.Count)

	//チェックアウト
	resp, body = doJSON(t, client, http.MethodPost, srv.URL+"/checkout", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var order model.Order
	assert.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, int64(1), order.CustomerID)
	assert.Equal(t, 15.0, order.Total)

	//チェックアウト後はカートが空
	resp, body = doJSON(t, client, http.MethodGet, srv.URL+"/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, json.Unmarshal(body, &cartResp))
	assert.Empty(t, cartResp.Items)

	//注文一覧
	resp, _ = doJSON(t, client, http.MethodGet, srv.URL+"/orders", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Cookieを持たないクライアントは別パーティション＝別カート。
func TestStorefront_PartitionsAreIsolated(t *testing.T) {
	f := newFakeBackends(t)
	srv, clientA := newStorefront(t, f)

	jar, err := cookiejar.New(nil)
	assert.NoError(t, err)
	clientB := &http.Client{Jar: jar}

	resp, _ := doJSON(t, clientA, http.MethodPost, srv.URL+"/cart", map[string]any{"produit_id": 1, "quantite": 2})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, clientB, http.MethodGet, srv.URL+"/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cartResp handler.CartResponse
	assert.NoError(t, json.Unmarshal(body, &cartResp))
	assert.Empty(t, cartResp.Items)
}

// 未知の商品は404。カートには何も入らない。
func TestStorefront_AddUnknownProduct(t *testing.T) {
	f := newFakeBackends(t)
	srv, client := newStorefront(t, f)

	resp, _ := doJSON(t, client, http.MethodPost, srv.URL+"/cart", map[string]any{"produit_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := doJSON(t, client, http.MethodGet, srv.URL+"/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cartResp handler.CartResponse
	assert.NoError(t, json.Unmarshal(body, &cartResp))
	assert.Empty(t, cartResp.Items)
}

func TestStorefront_CheckoutRequiresLogin(t *testing.T) {
	f := newFakeBackends(t)
	srv, client := newStorefront(t, f)

	resp, _ := doJSON(t, client, http.MethodPost, srv.URL+"/cart", map[string]any{"produit_id": 1})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, srv.URL+"/checkout", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
