package memdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexChildrenInInsertionOrder(t *testing.T) {
	ix := newIndex()
	ix.Add(1, 10)
	ix.Add(2, 20)
	ix.Add(1, 11)
	ix.Add(1, 12)

	assert.Equal(t, []uint64{10, 11, 12}, ix.Children(1))
	assert.Equal(t, []uint64{20}, ix.Children(2))
	assert.Equal(t, 3, ix.Len(1))
}

func TestIndexRemove(t *testing.T) {
	ix := newIndex()
	ix.Add(1, 10)
	ix.Add(1, 11)
	ix.Add(1, 12)

	ix.Remove(1, 11)
	assert.Equal(t, []uint64{10, 12}, ix.Children(1))

	ix.Remove(1, 10)
	ix.Remove(1, 12)
	assert.Empty(t, ix.Children(1))
	assert.Equal(t, 0, ix.Len(1))

	assert.NotPanics(t, func() { ix.Remove(7, 70) })
}

func TestIndexChildrenIsACopy(t *testing.T) {
	ix := newIndex()
	ix.Add(1, 10)

	ids := ix.Children(1)
	ids[0] = 999

	assert.Equal(t, []uint64{10}, ix.Children(1))
}
