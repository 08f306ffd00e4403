package cash

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r lpstake.Registry, auth x.Authenticator, control Controller) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(auth, control))
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ lpstake.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and authorized.
func (h SendHandler) Check(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

// Deliver moves the tokens from source to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(store, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &lpstake.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Source, "account owner"); err != nil {
		return nil, err
	}
	return &msg, nil
}
