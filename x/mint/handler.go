package mint

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
	"github.com/lpstake/lpstake/ttl"
	"github.com/lpstake/lpstake/x"
	"github.com/lpstake/lpstake/x/cash"
)

// RegisterRoutes registers the mint and configuration handlers.
func RegisterRoutes(r lpstake.Registry, auth x.Authenticator, issuer cash.Issuer) {
	r.Handle(MintMsg{}.Path(), NewMintHandler(auth, issuer))
	r.Handle(UpdateConfigurationMsg{}.Path(), NewConfigHandler(auth))
}

// NewConfigHandler returns a handler that updates the mint configuration.
// The configuration must be created in genesis.
func NewConfigHandler(auth x.Authenticator) lpstake.Handler {
	return gconf.NewConfigHandler(packageName, &Configuration{}, auth, gconf.GenesisOnly{})
}

// MintHandler issues new coins on behalf of the configured owner.
type MintHandler struct {
	auth   x.Authenticator
	issuer cash.Issuer
}

var _ lpstake.Handler = MintHandler{}

// NewMintHandler returns a handler for MintMsg.
func NewMintHandler(auth x.Authenticator, issuer cash.Issuer) MintHandler {
	return MintHandler{auth: auth, issuer: issuer}
}

func (h MintHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h MintHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, err := lpstake.BlockHeight(ctx)
	if err != nil {
		return nil, err
	}
	if err := ttl.Extend(db, gconf.Key(packageName), height, ttl.DefaultThreshold, ttl.DefaultBump); err != nil {
		return nil, errors.Wrap(err, "extend configuration lifetime")
	}
	if msg.Amount.IsZero() {
		return &lpstake.DeliverResult{}, nil
	}
	if err := h.issuer.IssueCoins(db, msg.Recipient, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "issue coins")
	}
	lpstake.GetLogger(ctx).Debug("mint", "recipient", msg.Recipient, "amount", msg.Amount)
	return &lpstake.DeliverResult{}, nil
}

func (h MintHandler) validate(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, conf.Owner, "mint owner"); err != nil {
		return nil, err
	}
	return &msg, nil
}
