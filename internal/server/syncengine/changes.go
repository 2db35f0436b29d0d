package syncengine

import "github.com/dmitrijs2005/chatsync/internal/wire"

// accumulator collects records by id. A later Put of the same id replaces
// the earlier record but keeps its position.
type accumulator[T wire.Record] struct {
	index map[string]int
	items []T
}

func newAccumulator[T wire.Record]() *accumulator[T] {
	return &accumulator[T]{index: make(map[string]int)}
}

func (a *accumulator[T]) Put(r T) {
	id := r.RecordID()
	if i, ok := a.index[id]; ok {
		a.items[i] = r
		return
	}
	a.index[id] = len(a.items)
	a.items = append(a.items, r)
}

func (a *accumulator[T]) Has(id string) bool {
	_, ok := a.index[id]
	return ok
}

func (a *accumulator[T]) Items() []T {
	return a.items
}
