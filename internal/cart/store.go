package cart

import (
	"context"
	"encoding/json"
	"sync"

	"payetonkawa/internal/domain/model"
	"payetonkawa/internal/storage"
)

// Listener はカートが変わるたびに新しい明細リストを受け取る。
type Listener func(lines []model.CartLine)

// Store はカートをStorageに持つ。ネットワークには一切触れない。
// 変更系は毎回リスト全体を保存し、通知を1回だけ出す。
type Store struct {
	st  storage.Storage
	key string

	mu        sync.Mutex
	nextSubID int
	listeners map[int]Listener
}

func NewStore(st storage.Storage) *Store {
	return &Store{
		st:        st,
		key:       storage.CartKey,
		listeners: map[int]Listener{},
	}
}

// Items は保存されている明細リストを返す。
// 未保存・壊れた値は「空のカート」（エラーにしない）。
func (s *Store) Items(ctx context.Context) []model.CartLine {
	b, ok, err := s.st.Get(ctx, s.key)
	if err != nil || !ok {
		return []model.CartLine{}
	}

	var lines []model.CartLine
	if err := json.Unmarshal(b, &lines); err != nil {
		return []model.CartLine{}
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	return lines
}

// Add は同じ商品の行があれば数量を加算、無ければ行を追加する。
// 加算の結果が0以下になった行は残さず消す（UpdateQuantityと同じ扱いに
// 揃えた。負の加算で0以下の行が残る元の挙動は引き継がない）。
func (s *Store) Add(ctx context.Context, item model.CartLine, quantity int64) error {
	lines := s.Items(ctx)

	found := false
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		item.Quantity = quantity
		lines = append(lines, item)
	}

	return s.save(ctx, dropNonPositive(lines))
}

// UpdateQuantity は数量をそのまま置き換える（加算ではない）。
// 0以下なら行ごと消す。対象が無ければ何もしないが保存と通知は行う。
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int64) error {
	lines := s.Items(ctx)

	if quantity <= 0 {
		return s.save(ctx, remove(lines, productID))
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			break
		}
	}
	return s.save(ctx, lines)
}

// Remove は行を消す。無くても同じ結果になる。
func (s *Store) Remove(ctx context.Context, productID int64) error {
	return s.save(ctx, remove(s.Items(ctx), productID))
}

// Clear は空のリストに置き換える。
func (s *Store) Clear(ctx context.Context) error {
	return s.save(ctx, []model.CartLine{})
}

// Count は数量の合計（行数ではない）。
func (s *Store) Count(ctx context.Context) int64 {
	var sum int64
	for _, l := range s.Items(ctx) {
		sum += l.Quantity
	}
	return sum
}

// Total は prix×quantite の合計。
func (s *Store) Total(ctx context.Context) float64 {
	var sum float64
	for _, l := range s.Items(ctx) {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// Subscribe はカート更新の購読を登録し、解除関数を返す。
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// save は保存してから購読者全員に新しいリストを通知する。
func (s *Store) save(ctx context.Context, lines []model.CartLine) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := s.st.Set(ctx, s.key, b); err != nil {
		return err
	}

	s.mu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(lines)
	}
	return nil
}

func remove(lines []model.CartLine, productID int64) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}

func dropNonPositive(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}
