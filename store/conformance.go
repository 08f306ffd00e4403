package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest/assert"
)

// OpenFunc returns an empty store and a function releasing it.
type OpenFunc func(t testing.TB) (CacheableKVStore, func())

// RunConformance checks that a CacheableKVStore implementation behaves like
// the in memory store: cache layers isolate writes until Write is called and
// iterators merge both layers in key order.
func RunConformance(t *testing.T, open OpenFunc) {
	t.Run("cache layers", func(t *testing.T) { checkCacheLayers(t, open) })
	t.Run("overlapping writes", func(t *testing.T) { checkOverlappingWrites(t, open) })
	t.Run("merged iteration", func(t *testing.T) { checkMergedIteration(t, open) })
}

func checkCacheLayers(t *testing.T, open OpenFunc) {
	base, release := open(t)
	defer release()

	pool, alice, bob := []byte("pool"), []byte("participant:alice"), []byte("participant:bob")
	expectValue(t, base, pool, nil)
	assert.Nil(t, base.Set(pool, []byte("LPT/RWD")))

	cache := base.CacheWrap()
	expectValue(t, cache, pool, []byte("LPT/RWD"))
	assert.Nil(t, cache.Set(alice, []byte("100")))
	expectValue(t, cache, alice, []byte("100"))
	expectValue(t, base, alice, nil)
	assert.Nil(t, cache.Write())
	expectValue(t, base, alice, []byte("100"))

	dropped := base.CacheWrap()
	assert.Nil(t, dropped.Set(bob, []byte("5")))
	assert.Nil(t, dropped.Delete(alice))
	dropped.Discard()
	expectValue(t, base, alice, []byte("100"))
	expectValue(t, base, bob, nil)

	removal := base.CacheWrap()
	assert.Nil(t, removal.Delete(alice))
	expectValue(t, removal, alice, nil)
	expectValue(t, base, alice, []byte("100"))
	assert.Nil(t, removal.Write())
	expectValue(t, base, alice, nil)
	expectValue(t, base, pool, []byte("LPT/RWD"))
}

func checkOverlappingWrites(t *testing.T, open OpenFunc) {
	k := func(name string) []byte { return []byte("participant:" + name) }
	v := func(amount string) []byte { return []byte(amount) }

	cases := map[string]struct {
		parent     []Op
		child      []Op
		wantParent []Model
		wantChild  []Model
	}{
		"child overwrites and deletes parent values": {
			parent:     []Op{SetOp(k("a"), v("1")), SetOp(k("b"), v("2"))},
			child:      []Op{SetOp(k("a"), v("10")), DelOp(k("b")), SetOp(k("c"), v("3"))},
			wantParent: []Model{Pair(k("a"), v("1")), Pair(k("b"), v("2")), Pair(k("c"), nil)},
			wantChild:  []Model{Pair(k("a"), v("10")), Pair(k("b"), nil), Pair(k("c"), v("3"))},
		},
		"child recreates a key it deleted": {
			parent:     []Op{SetOp(k("a"), v("1"))},
			child:      []Op{DelOp(k("a")), SetOp(k("a"), v("7"))},
			wantParent: []Model{Pair(k("a"), v("1"))},
			wantChild:  []Model{Pair(k("a"), v("7"))},
		},
		"child deletes a key the parent never had": {
			parent:     []Op{SetOp(k("a"), v("1"))},
			child:      []Op{DelOp(k("z"))},
			wantParent: []Model{Pair(k("a"), v("1")), Pair(k("z"), nil)},
			wantChild:  []Model{Pair(k("a"), v("1")), Pair(k("z"), nil)},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			parent, release := open(t)
			defer release()
			for _, op := range tc.parent {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.child {
				assert.Nil(t, op.Apply(child))
			}
			for _, m := range tc.wantParent {
				expectValue(t, parent, m.Key, m.Value)
			}
			for _, m := range tc.wantChild {
				expectValue(t, child, m.Key, m.Value)
			}
			assert.Nil(t, child.Write())
			for _, m := range tc.wantChild {
				expectValue(t, parent, m.Key, m.Value)
			}
		})
	}
}

// checkMergedIteration writes a set of participants to the parent, changes
// part of them in a cache layer and compares every range with a plain map
// holding the same data.
func checkMergedIteration(t *testing.T, open OpenFunc) {
	key := func(i int) []byte { return []byte(fmt.Sprintf("participant:%03d", i)) }

	var parentOps, childOps []Op
	model := make(map[string][]byte)
	for i := 0; i < 40; i += 2 {
		val := []byte(fmt.Sprintf("deposit:%d", i))
		parentOps = append(parentOps, SetOp(key(i), val))
		model[string(key(i))] = val
	}
	for i := 0; i < 45; i += 3 {
		switch {
		case i%4 == 0:
			childOps = append(childOps, DelOp(key(i)))
			delete(model, string(key(i)))
		default:
			val := []byte(fmt.Sprintf("updated:%d", i))
			childOps = append(childOps, SetOp(key(i), val))
			model[string(key(i))] = val
		}
	}

	base, release := open(t)
	defer release()
	for _, op := range parentOps {
		assert.Nil(t, op.Apply(base))
	}
	child := base.CacheWrap()
	for _, op := range childOps {
		assert.Nil(t, op.Apply(child))
	}

	ranges := []struct {
		start, end []byte
	}{
		{nil, nil},
		{key(9), nil},
		{nil, key(30)},
		{key(5), key(21)},
		{key(13), key(14)},
		{key(100), nil},
	}
	for _, r := range ranges {
		want := expectedRange(model, r.start, r.end)

		it, err := child.Iterator(r.start, r.end)
		assert.Nil(t, err)
		expectIteration(t, it, want)

		it, err = child.ReverseIterator(r.start, r.end)
		assert.Nil(t, err)
		expectIteration(t, it, reversed(want))
	}
}

func expectValue(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
	has, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, want != nil, has)
}

func expectIteration(t testing.TB, it Iterator, want []Model) {
	t.Helper()
	defer it.Release()
	for i, m := range want {
		key, value, err := it.Next()
		assert.Nil(t, err)
		if !bytes.Equal(m.Key, key) || !bytes.Equal(m.Value, value) {
			t.Fatalf("entry %d: want %s=%s, got %s=%s", i, m.Key, m.Value, key, value)
		}
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want end of iteration, got %+v", err)
	}
}

// expectedRange returns the model entries with start <= key < end in key
// order. A nil bound is open.
func expectedRange(model map[string][]byte, start, end []byte) []Model {
	var res []Model
	for k, v := range model {
		key := []byte(k)
		if start != nil && bytes.Compare(key, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(key, end) >= 0 {
			continue
		}
		res = append(res, Pair(key, v))
	}
	sort.Slice(res, func(i, j int) bool { return bytes.Compare(res[i].Key, res[j].Key) < 0 })
	return res
}

func reversed(models []Model) []Model {
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}
