package lpstaketest

import "github.com/lpstake/lpstake"

// Calls counts the Check and Deliver invocations of a mock, failed ones
// included.
type Calls struct {
	check   int
	deliver int
}

func (c *Calls) CheckCallCount() int   { return c.check }
func (c *Calls) DeliverCallCount() int { return c.deliver }
func (c *Calls) CallCount() int        { return c.check + c.deliver }

// Handler is a lpstake.Handler returning the configured result, or the
// configured error when it is set.
type Handler struct {
	Calls
	CheckResult   lpstake.CheckResult
	CheckErr      error
	DeliverResult lpstake.DeliverResult
	DeliverErr    error
}

var _ lpstake.Handler = (*Handler)(nil)

func (h *Handler) Check(lpstake.Context, lpstake.KVStore, lpstake.Tx) (*lpstake.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(lpstake.Context, lpstake.KVStore, lpstake.Tx) (*lpstake.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// Decorator is a lpstake.Decorator that passes the call on to the next
// handler unless the matching error is set.
type Decorator struct {
	Calls
	CheckErr   error
	DeliverErr error
}

var _ lpstake.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx, next lpstake.Checker) (*lpstake.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx, next lpstake.Deliverer) (*lpstake.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate wraps h with d.
func Decorate(h lpstake.Handler, d lpstake.Decorator) lpstake.Handler {
	return decorated{next: h, with: d}
}

type decorated struct {
	next lpstake.Handler
	with lpstake.Decorator
}

func (d decorated) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	return d.with.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	return d.with.Deliver(ctx, db, tx, d.next)
}

// WriteHandler writes Key=Value on every call and returns Err afterwards.
// Use it to check that the writes of a failed call are discarded.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ lpstake.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &lpstake.DeliverResult{}, h.Err
}
