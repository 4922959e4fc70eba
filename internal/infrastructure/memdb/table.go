package memdb

import "slices"

// Table хранит строки в порядке вставки и выдаёт id начиная с 1.
// Id не переиспользуются даже после удаления.
type Table[T any] struct {
	nextID uint64
	order  []uint64
	rows   map[uint64]T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{
		nextID: 1,
		rows:   make(map[uint64]T),
	}
}

// Insert выдаёт следующий id, строит по нему строку через build и сохраняет её.
func (t *Table[T]) Insert(build func(id uint64) T) T {
	id := t.nextID
	t.nextID++

	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *Table[T]) Get(id uint64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// Replace перезаписывает существующую строку. Если id нет, ничего не меняет и возвращает false.
func (t *Table[T]) Replace(id uint64, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *Table[T]) Delete(id uint64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(v uint64) bool { return v == id })
	return true
}

// All возвращает копию всех строк в порядке вставки.
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *Table[T]) Len() int { return len(t.rows) }
