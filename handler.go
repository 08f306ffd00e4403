package lpstake

import (
	"encoding/json"

	"github.com/lpstake/lpstake/errors"
)

// Handler is a core engine that can process a few specific messages
// This could represent "coin transfer", or "deposit into the pool"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or logging, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// CheckResult captures any non-error check result. Data is a
// message specific result, Log is a human readable note.
type CheckResult struct {
	Data []byte
	Log  string
}

// DeliverResult captures any non-error deliver result. Data is a
// message specific result (ie. the amount paid by a claim), Log is a
// human readable note.
type DeliverResult struct {
	Data []byte
	Log  string
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot parse %q options: %s", key, err)
	}
	return nil
}

// Stream expects an array of json elements under the given key and returns
// a function that decodes one element per call. Once all elements are
// consumed ErrEmpty is returned, and any call after that fails with
// ErrInvalidState.
func (o Options) Stream(key string) (func(interface{}) error, error) {
	data, ok := o[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrEmpty, "no %q options", key)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "%q is not a list: %s", key, err)
	}

	var done bool
	next := func(obj interface{}) error {
		if done {
			return errors.Wrap(errors.ErrInvalidState, "stream already consumed")
		}
		if len(items) == 0 {
			done = true
			return errors.ErrEmpty
		}
		item := items[0]
		items = items[1:]
		if err := json.Unmarshal(item, obj); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "cannot parse %q element: %s", key, err)
		}
		return nil
	}
	return next, nil
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
