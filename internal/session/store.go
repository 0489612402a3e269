package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"payetonkawa/internal/domain/model"
	"payetonkawa/internal/storage"
)

var (
	//そのメールの顧客がいない
	ErrNoAccount = errors.New("no account for this email")
	//同じメールの顧客がすでにいる
	ErrAccountExists = errors.New("account already exists for this email")
)

// CustomerAPI はセッションが必要とする顧客サービス操作だけの約束。
type CustomerAPI interface {
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, in model.CustomerCreate) (model.Customer, error)
}

// Store は「いまログインしているのは誰か」をStorageに持つ。
// 保存するのはログイン時点のスナップショットで、サーバー側が後から
// 変わっても追従しない。メール照合だけの簡易ログインであり、
// パスワード等の認証は行わない（意図した簡略化）。
type Store struct {
	st        storage.Storage
	key       string
	customers CustomerAPI
}

func NewStore(st storage.Storage, customers CustomerAPI) *Store {
	return &Store{
		st:        st,
		key:       storage.SessionKey,
		customers: customers,
	}
}

// CurrentUser は保存されたスナップショットを返す。
// 未保存・壊れた値は「未ログイン」として ok=false（エラーにしない）。
func (s *Store) CurrentUser(ctx context.Context) (model.Customer, bool) {
	b, ok, err := s.st.Get(ctx, s.key)
	if err != nil || !ok {
		return model.Customer{}, false
	}

	var c model.Customer
	if err := json.Unmarshal(b, &c); err != nil {
		return model.Customer{}, false
	}
	if c.ID == 0 || c.Email == "" {
		return model.Customer{}, false
	}
	return c, true
}

func (s *Store) IsLoggedIn(ctx context.Context) bool {
	_, ok := s.CurrentUser(ctx)
	return ok
}

// Login はメールの大文字小文字を無視して顧客を探し、最初の一致を保存する。
// APIのエラーはそのまま返す（包まない）。
func (s *Store) Login(ctx context.Context, email string) (model.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return model.Customer{}, err
	}

	for _, c := range customers {
		if strings.EqualFold(c.Email, email) {
			if err := s.save(ctx, c); err != nil {
				return model.Customer{}, err
			}
			return c, nil
		}
	}

	return model.Customer{}, ErrNoAccount
}

// Register は同じメールがいなければリモートに作成して保存する。
// 一覧→作成の間に他所で同じメールが作られる競合は防げない（既知の穴）。
func (s *Store) Register(ctx context.Context, in model.CustomerCreate) (model.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return model.Customer{}, err
	}

	for _, c := range customers {
		if strings.EqualFold(c.Email, in.Email) {
			return model.Customer{}, ErrAccountExists
		}
	}

	created, err := s.customers.Create(ctx, in)
	if err != nil {
		return model.Customer{}, err
	}

	if err := s.save(ctx, created); err != nil {
		return model.Customer{}, err
	}
	return created, nil
}

// Logout はスナップショットを消す。何度呼んでも同じ。
func (s *Store) Logout(ctx context.Context) error {
	return s.st.Remove(ctx, s.key)
}

func (s *Store) save(ctx context.Context, c model.Customer) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.st.Set(ctx, s.key, b)
}
