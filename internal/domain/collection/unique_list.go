package collection

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

var (
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrEntityNotFound  = errors.New("entity not found")
)

// Entity is a value record identified by a comparable key.
type Entity[K comparable, T any] interface {
	Key() K
	Clone() T
}

// Kind names an entity kind and carries its kind-specific sentinels. Both
// sentinels are expected to wrap ErrDuplicateEntity and ErrEntityNotFound.
type Kind struct {
	Name         string
	ErrDuplicate error
	ErrNotFound  error
}

// UniqueList is an insertion-ordered sequence of entities with unique keys.
// Reads hand out clones, so nothing outside the list aliases its entries.
type UniqueList[K comparable, T Entity[K, T]] struct {
	kind  Kind
	items []T
	index map[K]int
}

func New[K comparable, T Entity[K, T]](kind Kind, items ...T) (*UniqueList[K, T], error) {
	if kind.ErrDuplicate == nil {
		kind.ErrDuplicate = ErrDuplicateEntity
	}
	if kind.ErrNotFound == nil {
		kind.ErrNotFound = ErrEntityNotFound
	}

	l := &UniqueList[K, T]{
		kind:  kind,
		items: make([]T, 0, len(items)),
		index: make(map[K]int, len(items)),
	}
	for _, item := range items {
		if err := l.Add(item); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// MustNew is New for callers that build lists from already-unique items.
func MustNew[K comparable, T Entity[K, T]](kind Kind, items ...T) *UniqueList[K, T] {
	l, err := New(kind, items...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *UniqueList[K, T]) Kind() Kind {
	return l.kind
}

func (l *UniqueList[K, T]) Len() int {
	return len(l.items)
}

func (l *UniqueList[K, T]) Contains(key K) bool {
	_, ok := l.index[key]
	return ok
}

func (l *UniqueList[K, T]) Add(item T) error {
	key := item.Key()
	if l.Contains(key) {
		return errors.Wrapf(l.kind.ErrDuplicate, "%s %v", l.kind.Name, key)
	}

	l.index[key] = len(l.items)
	l.items = append(l.items, item.Clone())
	return nil
}

func (l *UniqueList[K, T]) Remove(key K) error {
	pos, ok := l.index[key]
	if !ok {
		return errors.Wrapf(l.kind.ErrNotFound, "%s %v", l.kind.Name, key)
	}

	l.items = slices.Delete(l.items, pos, pos+1)
	l.reindex()
	return nil
}

// Edit replaces the entry identified by key with item, keeping its position.
func (l *UniqueList[K, T]) Edit(key K, item T) error {
	pos, ok := l.index[key]
	if !ok {
		return errors.Wrapf(l.kind.ErrNotFound, "%s %v", l.kind.Name, key)
	}
	newKey := item.Key()
	if newKey != key && l.Contains(newKey) {
		return errors.Wrapf(l.kind.ErrDuplicate, "%s %v", l.kind.Name, newKey)
	}

	l.items[pos] = item.Clone()
	if newKey != key {
		delete(l.index, key)
		l.index[newKey] = pos
	}
	return nil
}

func (l *UniqueList[K, T]) Find(key K) (T, error) {
	pos, ok := l.index[key]
	if !ok {
		var zero T
		return zero, errors.Wrapf(l.kind.ErrNotFound, "%s %v", l.kind.Name, key)
	}

	return l.items[pos].Clone(), nil
}

func (l *UniqueList[K, T]) Clear() {
	l.items = l.items[:0]
	clear(l.index)
}

// All iterates over clones of the entries in list order.
func (l *UniqueList[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item.Clone()) {
				return
			}
		}
	}
}

func (l *UniqueList[K, T]) Items() []T {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item.Clone())
	}
	return out
}

func (l *UniqueList[K, T]) Keys() []K {
	out := make([]K, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item.Key())
	}
	return out
}

// Sort orders entries with cmp. Ties keep their insertion order.
func (l *UniqueList[K, T]) Sort(cmp func(a, b T) int) {
	slices.SortStableFunc(l.items, cmp)
	l.reindex()
}

// Clone returns an independent deep copy of the list.
func (l *UniqueList[K, T]) Clone() *UniqueList[K, T] {
	out := &UniqueList[K, T]{
		kind:  l.kind,
		items: l.Items(),
		index: make(map[K]int, len(l.items)),
	}
	out.reindex()
	return out
}

func (l *UniqueList[K, T]) reindex() {
	clear(l.index)
	for i, item := range l.items {
		l.index[item.Key()] = i
	}
}
