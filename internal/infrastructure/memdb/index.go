package memdb

import "slices"

// Index - связь один-ко-многим parent id -> child ids в порядке вставки.
// Пишущие обновляют его сразу, читающим не нужно сканировать таблицу детей.
type Index struct {
	children map[uint64][]uint64
}

func newIndex() *Index {
	return &Index{children: make(map[uint64][]uint64)}
}

func (ix *Index) Add(parent, child uint64) {
	ix.children[parent] = append(ix.children[parent], child)
}

func (ix *Index) Remove(parent, child uint64) {
	ids, ok := ix.children[parent]
	if !ok {
		return
	}
	ids = slices.DeleteFunc(ids, func(v uint64) bool { return v == child })
	if len(ids) == 0 {
		delete(ix.children, parent)
		return
	}
	ix.children[parent] = ids
}

// Children возвращает копию, её можно держать и после транзакции.
func (ix *Index) Children(parent uint64) []uint64 {
	return slices.Clone(ix.children[parent])
}

func (ix *Index) Len(parent uint64) int {
	return len(ix.children[parent])
}
