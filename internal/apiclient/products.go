package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"payetonkawa/internal/domain/model"
)

// Products は api-produits（商品サービス）のクライアント。
type Products struct {
	c *Client
}

func NewProducts(c *Client) *Products {
	return &Products{c: c}
}

func (s *Products) List(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := s.c.doJSON(ctx, http.MethodGet, "/products/", "products", "list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Products) Get(ctx context.Context, id int64) (model.Product, error) {
	var out model.Product
	if err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "products", "get", nil, &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

func (s *Products) Create(ctx context.Context, in model.ProductCreate) (model.Product, error) {
	var out model.Product
	if err := s.c.doJSON(ctx, http.MethodPost, "/products/", "products", "create", in, &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// Update は部分更新（nilでないフィールドだけ送る）。
func (s *Products) Update(ctx context.Context, id int64, in model.ProductUpdate) (model.Product, error) {
	var out model.Product
	if err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), "products", "update", in, &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

func (s *Products) Delete(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), "products", "delete", nil, nil)
}

// UploadImage は商品画像をmultipartでPOSTする。
func (s *Products) UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (model.Product, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.Product{}, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return model.Product{}, err
	}
	if err := mw.Close(); err != nil {
		return model.Product{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+fmt.Sprintf("/products/%d/image", id), &buf)
	if err != nil {
		return model.Product{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out model.Product
	if err := s.c.send(req, "products", "upload_image", &out); err != nil {
		return model.Product{}, err
	}
	return out, nil
}
