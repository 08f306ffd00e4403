package app

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

// BaseApp adds DeliverTx and CheckTx handlers to the storage functionality
// of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder lpstake.TxDecoder
	handler lpstake.Handler
	debug   bool
}

// NewBaseApp constructs a basic application
func NewBaseApp(
	store *StoreApp,
	decoder lpstake.TxDecoder,
	handler lpstake.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx dispatches to the handler. Calls are serialized and each one
// sees all state changes of the previous calls.
func (b BaseApp) DeliverTx(txBytes []byte) (*lpstake.DeliverResult, error) {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return nil, b.redact(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ctx := lpstake.WithLogInfo(b.blockContext, "call", "deliver_tx")
	res, err := b.handler.Deliver(ctx, b.store.DeliverStore(), tx)
	if err != nil {
		return nil, b.redact(err)
	}
	return res, nil
}

// CheckTx dispatches to the handler using the check store.
func (b BaseApp) CheckTx(txBytes []byte) (*lpstake.CheckResult, error) {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return nil, b.redact(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ctx := lpstake.WithLogInfo(b.blockContext, "call", "check_tx")
	res, err := b.handler.Check(ctx, b.store.CheckStore(), tx)
	if err != nil {
		return nil, b.redact(err)
	}
	return res, nil
}

func (b BaseApp) redact(err error) error {
	if b.debug {
		return err
	}
	return errors.Redact(err)
}

// loadTx calls the decoder, and capture any panics
func (b BaseApp) loadTx(txBytes []byte) (tx lpstake.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
