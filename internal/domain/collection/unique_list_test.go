package collection

import (
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

type item struct {
	id   string
	rank int
	tags []string
}

func (i item) Key() string { return i.id }

func (i item) Clone() item {
	copied := i
	copied.tags = slices.Clone(i.tags)
	return copied
}

var (
	errItemDuplicate = errors.Wrap(ErrDuplicateEntity, "item")
	errItemNotFound  = errors.Wrap(ErrEntityNotFound, "item")
	itemKind         = Kind{Name: "item", ErrDuplicate: errItemDuplicate, ErrNotFound: errItemNotFound}
)

func newItems(t *testing.T, items ...item) *UniqueList[string, item] {
	t.Helper()
	l, err := New[string, item](itemKind, items...)
	if err != nil {
		t.Fatalf("new list: %v", err)
	}
	return l
}

func TestUniqueList_AddRejectsDuplicateKey(t *testing.T) {
	t.Parallel()

	l := newItems(t, item{id: "a", rank: 1})
	err := l.Add(item{id: "a", rank: 2})
	if !errors.Is(err, errItemDuplicate) {
		t.Fatalf("expected kind duplicate error, got %v", err)
	}
	if !errors.Is(err, ErrDuplicateEntity) {
		t.Fatalf("expected generic duplicate error, got %v", err)
	}

	got, err := l.Find("a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.rank != 1 || l.Len() != 1 {
		t.Fatalf("expected list unchanged, got rank=%d len=%d", got.rank, l.Len())
	}
}

func TestNew_RejectsDuplicateSeed(t *testing.T) {
	t.Parallel()

	if _, err := New[string, item](itemKind, item{id: "a"}, item{id: "a"}); !errors.Is(err, errItemDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestNew_DefaultsToGenericSentinels(t *testing.T) {
	t.Parallel()

	l := MustNew[string, item](Kind{Name: "item"})
	if _, err := l.Find("missing"); !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected generic not found error, got %v", err)
	}
}

func TestKindSentinelsStayDistinct(t *testing.T) {
	t.Parallel()

	other := errors.Wrap(ErrEntityNotFound, "other")
	if errors.Is(errItemNotFound, other) {
		t.Fatalf("kind sentinels must not match each other")
	}
}

func TestUniqueList_RemoveAndFindMissing(t *testing.T) {
	t.Parallel()

	l := newItems(t, item{id: "a"}, item{id: "b"}, item{id: "c"})
	if err := l.Remove("b"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := l.Remove("b"); !errors.Is(err, errItemNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
	if _, err := l.Find("b"); !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if got := l.Keys(); !slices.Equal(got, []string{"a", "c"}) {
		t.Fatalf("unexpected keys after remove: %v", got)
	}
	if _, err := l.Find("c"); err != nil {
		t.Fatalf("index not rebuilt after remove: %v", err)
	}
}

func TestUniqueList_EditKeepsPosition(t *testing.T) {
	t.Parallel()

	l := newItems(t, item{id: "a"}, item{id: "b"}, item{id: "c"})
	if err := l.Edit("b", item{id: "z", rank: 9}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := l.Keys(); !slices.Equal(got, []string{"a", "z", "c"}) {
		t.Fatalf("unexpected keys after edit: %v", got)
	}
	if l.Contains("b") {
		t.Fatalf("old key still indexed")
	}

	if err := l.Edit("z", item{id: "a"}); !errors.Is(err, errItemDuplicate) {
		t.Fatalf("expected duplicate error when renaming onto existing key, got %v", err)
	}
	if err := l.Edit("missing", item{id: "q"}); !errors.Is(err, errItemNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := l.Edit("z", item{id: "z", rank: 10}); err != nil {
		t.Fatalf("edit in place: %v", err)
	}
}

func TestUniqueList_ReadsAreIndependent(t *testing.T) {
	t.Parallel()

	source := item{id: "a", tags: []string{"x"}}
	l := newItems(t, source)
	source.tags[0] = "mutated"

	found, err := l.Find("a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.tags[0] != "x" {
		t.Fatalf("list aliased the added item")
	}

	found.tags[0] = "mutated"
	for v := range l.All() {
		v.tags[0] = "mutated"
	}
	l.Items()[0].tags[0] = "mutated"

	again, _ := l.Find("a")
	if again.tags[0] != "x" {
		t.Fatalf("reads aliased list storage: %v", again.tags)
	}
}

func TestUniqueList_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	l := newItems(t, item{id: "a", tags: []string{"x"}}, item{id: "b"})
	copied := l.Clone()

	if err := copied.Remove("a"); err != nil {
		t.Fatalf("remove from clone: %v", err)
	}
	if err := copied.Add(item{id: "c"}); err != nil {
		t.Fatalf("add to clone: %v", err)
	}

	if got := l.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("original changed through clone: %v", got)
	}
	if copied.Kind().Name != "item" {
		t.Fatalf("clone lost its kind")
	}
}

func TestUniqueList_SortIsStable(t *testing.T) {
	t.Parallel()

	l := newItems(t,
		item{id: "d", rank: 2},
		item{id: "a", rank: 1},
		item{id: "c", rank: 2},
		item{id: "b", rank: 1},
	)
	l.Sort(func(x, y item) int { return x.rank - y.rank })

	if got := l.Keys(); !slices.Equal(got, []string{"a", "b", "d", "c"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if _, err := l.Find("c"); err != nil {
		t.Fatalf("index not rebuilt after sort: %v", err)
	}

	l.Sort(func(x, y item) int { return strings.Compare(x.id, y.id) })
	if got := l.Keys(); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("unexpected order by id: %v", got)
	}
}

func TestUniqueList_ClearAndIterateEarlyStop(t *testing.T) {
	t.Parallel()

	l := newItems(t, item{id: "a"}, item{id: "b"}, item{id: "c"})

	var seen []string
	for v := range l.All() {
		seen = append(seen, v.id)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Fatalf("unexpected iteration: %v", seen)
	}

	l.Clear()
	if l.Len() != 0 || l.Contains("a") {
		t.Fatalf("expected empty list after clear")
	}
	if err := l.Add(item{id: "a"}); err != nil {
		t.Fatalf("add after clear: %v", err)
	}
}
