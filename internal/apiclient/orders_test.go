package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payetonkawa/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestOrders_ListByCustomer_Path(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/client/9", r.URL.Path)
		w.Write([]byte(`[{"id":1,"client_id":9,"statut":"en_attente","total":25.0,"lignes":[]}]`))
	}))
	defer srv.Close()

	s := NewOrders(New(srv.URL, "", nil))

	out, err := s.ListByCustomer(ctx, 9)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(9), out[0].CustomerID)
	assert.Equal(t, model.OrderStatusPending, out[0].Status)
}

func TestOrders_Create(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/", r.URL.Path)

		var body model.OrderCreate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(9), body.CustomerID)
		assert.Len(t, body.Lines, 2)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12,"client_id":9,"statut":"en_attente","total":31.0,"lignes":[{"id":1,"commande_id":12,"produit_id":1,"quantite":2,"prix_unitaire":3.0},{"id":2,"commande_id":12,"produit_id":2,"quantite":5,"prix_unitaire":5.0}]}`))
	}))
	defer srv.Close()

	s := NewOrders(New(srv.URL, "", nil))

	out, err := s.Create(ctx, model.OrderCreate{
		CustomerID: 9,
		Lines: []model.OrderLineCreate{
			{ProductID: 1, Quantity: 2, UnitPrice: 3.0},
			{ProductID: 2, Quantity: 5, UnitPrice: 5.0},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), out.ID)
	assert.Len(t, out.Lines, 2)
}

func TestOrders_Update_Status(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/12", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "expediee", body["statut"])

		w.Write([]byte(`{"id":12,"client_id":9,"statut":"expediee","total":31.0,"lignes":[]}`))
	}))
	defer srv.Close()

	s := NewOrders(New(srv.URL, "", nil))

	out, err := s.Update(ctx, 12, model.OrderUpdate{Status: model.OrderStatusShipped})
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, out.Status)
}
