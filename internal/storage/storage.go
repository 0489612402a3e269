package storage

import "context"

// Storage はセッション・カートの保存先（ブラウザのlocalStorage相当）。
// Getは値が無ければ ok=false を返す。壊れた値の扱いは呼び出し側の責務。
type Storage interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// セッション・カートの既定キー。
const (
	SessionKey = "payetonkawa_user"
	CartKey    = "payetonkawa_cart"
)

type prefixed struct {
	inner  Storage
	prefix string
}

// WithPrefix はキーにプレフィックスを付けるラッパー。
// 訪問者パーティションごとの名前空間分離に使う。
func WithPrefix(inner Storage, prefix string) Storage {
	return &prefixed{inner: inner, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.inner.Remove(ctx, p.prefix+key)
}
