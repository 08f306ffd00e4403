package orm

import (
	"reflect"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

// ModelIterator loads stored models one by one.
//
//   it, err := bucket.IterAll(db)
//   ...
//   defer it.Release()
//   for {
//     var p Participant
//     key, err := it.LoadNext(&p)
//     if errors.ErrIteratorDone.Is(err) {
//       break
//     }
//     ...
//   }
type ModelIterator interface {
	// LoadNext loads the next model into dest and returns its primary
	// key. ErrIteratorDone is returned when there are no more models.
	LoadNext(dest Model) ([]byte, error)
	// Release releases the underlying database iterator.
	Release()
}

type modelIterator struct {
	it     lpstake.Iterator
	prefix []byte
	model  reflect.Type
}

func (m *modelIterator) LoadNext(dest Model) ([]byte, error) {
	if reflect.TypeOf(dest) != reflect.PtrTo(m.model) {
		return nil, errors.Wrapf(errors.ErrInvalidType, "%s cannot be loaded into %T", m.model, dest)
	}
	key, value, err := m.it.Next()
	if err != nil {
		return nil, err
	}
	if err := dest.Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal %s", m.model)
	}
	return key[len(m.prefix):], nil
}

func (m *modelIterator) Release() {
	m.it.Release()
}
