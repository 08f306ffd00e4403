package store

import (
	"fmt"
	"testing"

	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest/assert"
)

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	models := make([]Model, size)
	for i := range models {
		models[i] = Pair([]byte(fmt.Sprintf("k%d", i)), []byte(fmt.Sprintf("v%d", i)))
	}

	it := NewSliceIterator(models)
	for i := 0; i < size; i++ {
		key, value, err := it.Next()
		assert.Nil(t, err)
		assert.Equal(t, models[i].Key, key)
		assert.Equal(t, models[i].Value, value)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want iterator done, got %v", err)
	}

	it = NewSliceIterator(models)
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("released iterator must be done, got %v", err)
	}
}
