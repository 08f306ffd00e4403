package store

import (
	"testing"

	"github.com/lpstake/lpstake/lpstaketest/assert"
)

// Releasing an iterator of a cache layer must not hold any lock on the
// parent store.
func TestCacheIteratorRelease(t *testing.T) {
	open := map[string]func(CacheableKVStore) (Iterator, error){
		"forward": func(kv CacheableKVStore) (Iterator, error) { return kv.Iterator([]byte("participant:"), nil) },
		"reverse": func(kv CacheableKVStore) (Iterator, error) { return kv.ReverseIterator([]byte("participant:"), nil) },
	}
	for name, iter := range open {
		t.Run(name, func(t *testing.T) {
			db := MemStore()
			assert.Nil(t, db.Set([]byte("participant:alice"), []byte("100")))

			it, err := iter(db.CacheWrap())
			assert.Nil(t, err)
			it.Release()

			assert.Nil(t, db.Delete([]byte("participant:alice")))
			assert.Nil(t, db.Set([]byte("participant:bob"), []byte("5")))
		})
	}
}
