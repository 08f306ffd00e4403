package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/lpstake/lpstake/errors"
)

// collectRange returns all cached items with a key in [start, end) in
// ascending order. Nil start or end means unbounded.
func collectRange(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	add := func(i btree.Item) bool {
		items = append(items, i.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(add)
	case start == nil:
		bt.AscendLessThan(bkey{end}, add)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, add)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, add)
	}
	return items
}

// itemIter merges the cached items with the iterator of the backing store.
// Cached entries shadow the parent ones with the same key and deleted
// entries hide them.
type itemIter struct {
	items   []keyer
	reverse bool

	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentDone bool
	// parentErr is an error of the parent lookahead, returned on the next
	// call.
	parentErr error
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(items []keyer, parent Iterator, reverse bool) *itemIter {
	it := &itemIter{
		items:   items,
		reverse: reverse,
		parent:  parent,
	}
	it.advanceParent()
	return it
}

func (i *itemIter) advanceParent() {
	if i.parentDone {
		return
	}
	k, v, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentVal = k, v
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
		i.parentKey, i.parentVal = nil, nil
	default:
		i.parentDone = true
		i.parentErr = err
	}
}

// Next returns the next key/value pair in the iteration order, skipping
// all deleted entries.
func (i *itemIter) Next() (key, value []byte, err error) {
	for {
		if i.parentErr != nil {
			return nil, nil, i.parentErr
		}
		if len(i.items) == 0 {
			if i.parentDone {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
			}
			k, v := i.parentKey, i.parentVal
			i.advanceParent()
			return k, v, nil
		}

		item := i.items[0]
		if !i.parentDone {
			cmp := bytes.Compare(item.Key(), i.parentKey)
			if i.reverse {
				cmp = -cmp
			}
			if cmp > 0 {
				// The parent entry comes first.
				k, v := i.parentKey, i.parentVal
				i.advanceParent()
				return k, v, nil
			}
			if cmp == 0 {
				// Cached entry shadows the parent one.
				i.advanceParent()
			}
		}

		i.items = i.items[1:]
		if s, ok := item.(setItem); ok {
			return s.Key(), s.value, nil
		}
	}
}

// Release releases the Iterator together with the parent one.
func (i *itemIter) Release() {
	i.items = nil
	i.parentDone = true
	i.parent.Release()
}
