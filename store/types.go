package store

import "github.com/lpstake/lpstake"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = lpstake.ReadOnlyKVStore
type SetDeleter = lpstake.SetDeleter
type KVStore = lpstake.KVStore
type Batch = lpstake.Batch
type Iterator = lpstake.Iterator
type CacheableKVStore = lpstake.CacheableKVStore
type KVCacheWrap = lpstake.KVCacheWrap
type CommitKVStore = lpstake.CommitKVStore
type CommitID = lpstake.CommitID

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}
