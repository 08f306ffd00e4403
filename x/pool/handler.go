package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
	"github.com/lpstake/lpstake/x"
)

// RegisterRoutes registers all pool handlers. Tokens are moved with given
// gateway.
func RegisterRoutes(r lpstake.Registry, auth x.Authenticator, gateway TokenGateway) {
	ctrl := NewController(gateway)
	r.Handle(InitializeMsg{}.Path(), &initializeHandler{auth: auth, ctrl: ctrl})
	r.Handle(FundMsg{}.Path(), &fundHandler{auth: auth, ctrl: ctrl})
	r.Handle(ExtendMsg{}.Path(), &extendHandler{auth: auth, ctrl: ctrl})
	r.Handle(DepositMsg{}.Path(), &depositHandler{auth: auth, ctrl: ctrl})
	r.Handle(WithdrawMsg{}.Path(), &withdrawHandler{auth: auth, ctrl: ctrl})
	r.Handle(ClaimMsg{}.Path(), &claimHandler{auth: auth, ctrl: ctrl})
	r.Handle(UpdateConfigurationMsg{}.Path(), NewConfigHandler(auth))
}

// NewConfigHandler returns a handler that updates the pool configuration.
// Until a configuration is stored, the pool admin is allowed to create one.
func NewConfigHandler(auth x.Authenticator) lpstake.Handler {
	return gconf.NewConfigHandler(packageName, &Configuration{}, auth, AdminBootstrap{})
}

// AdminBootstrap lets the pool admin create a pool configuration missing
// from genesis.
type AdminBootstrap struct{}

var _ gconf.Bootstrap = AdminBootstrap{}

func (AdminBootstrap) BootstrapAdmin(db lpstake.ReadOnlyKVStore) (lpstake.Address, error) {
	p, err := loadPool(db, NewPoolBucket())
	if err != nil {
		return nil, errors.Wrap(err, "pool admin")
	}
	return p.Admin, nil
}

// openLedger returns the ledger bound to the current block together with
// the block time.
func openLedger(ctx lpstake.Context, db lpstake.KVStore) (*Ledger, lpstake.UnixTime, error) {
	now, err := lpstake.BlockTime(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "block time")
	}
	height, err := lpstake.BlockHeight(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "block height")
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, 0, err
	}
	return NewLedger(db).WithTTL(height, conf), lpstake.AsUnixTime(now), nil
}

type initializeHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lpstake.Handler = (*initializeHandler)(nil)

func (h *initializeHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h *initializeHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	l, now, err := openLedger(ctx, db)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Initialize(l, now, admin, msg.LiquidityTicker, msg.RewardTicker); err != nil {
		return nil, errors.Wrap(err, "initialize")
	}
	lpstake.GetLogger(ctx).Debug("pool initialized",
		"admin", admin.Address(), "liquidity", msg.LiquidityTicker, "reward", msg.RewardTicker)
	return &lpstake.DeliverResult{}, nil
}

func (h *initializeHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (*InitializeMsg, Signer, error) {
	var msg InitializeMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, Signer{}, errors.Wrap(err, "load msg")
	}
	admin, err := Authorize(ctx, h.auth, msg.Admin)
	if err != nil {
		return nil, Signer{}, err
	}
	return &msg, admin, nil
}

type fundHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lpstake.Handler = (*fundHandler)(nil)

func (h *fundHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h *fundHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	l, now, err := openLedger(ctx, db)
	if err != nil {
		return nil, err
	}
	p, err := h.ctrl.Fund(l, now, admin, msg.RewardAmount, msg.Duration)
	if err != nil {
		return nil, errors.Wrap(err, "fund")
	}
	lpstake.GetLogger(ctx).Debug("pool funded",
		"reward", msg.RewardAmount, "rate", p.RewardRate, "end", p.EmissionEndTime)
	return &lpstake.DeliverResult{}, nil
}

func (h *fundHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (*FundMsg, Signer, error) {
	var msg FundMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, Signer{}, errors.Wrap(err, "load msg")
	}
	admin, err := Authorize(ctx, h.auth, msg.Admin)
	if err != nil {
		return nil, Signer{}, err
	}
	return &msg, admin, nil
}

type extendHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lpstake.Handler = (*extendHandler)(nil)

func (h *extendHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h *extendHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, admin, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	l, now, err := openLedger(ctx, db)
	if err != nil {
		return nil, err
	}
	p, err := h.ctrl.Extend(l, now, admin, msg.AdditionalReward, msg.AdditionalDuration)
	if err != nil {
		return nil, errors.Wrap(err, "extend")
	}
	lpstake.GetLogger(ctx).Debug("pool extended",
		"reward", msg.AdditionalReward, "rate", p.RewardRate, "end", p.EmissionEndTime)
	return &lpstake.DeliverResult{}, nil
}

func (h *extendHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (*ExtendMsg, Signer, error) {
	var msg ExtendMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, Signer{}, errors.Wrap(err, "load msg")
	}
	admin, err := Authorize(ctx, h.auth, msg.Admin)
	if err != nil {
		return nil, Signer{}, err
	}
	return &msg, admin, nil
}

type depositHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lpstake.Handler = (*depositHandler)(nil)

func (h *depositHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h *depositHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, signer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	l, now, err := openLedger(ctx, db)
	if err != nil {
		return nil, err
	}
	part, err := h.ctrl.Deposit(l, now, signer, msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	lpstake.GetLogger(ctx).Debug("deposit",
		"participant", part.Address, "amount", msg.Amount, "total", part.Deposit)
	return &lpstake.DeliverResult{}, nil
}

func (h *depositHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (*DepositMsg, Signer, error) {
	var msg DepositMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, Signer{}, errors.Wrap(err, "load msg")
	}
	signer, err := Authorize(ctx, h.auth, msg.Participant)
	if err != nil {
		return nil, Signer{}, err
	}
	return &msg, signer, nil
}

type withdrawHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lpstake.Handler = (*withdrawHandler)(nil)

func (h *withdrawHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h *withdrawHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	msg, signer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	l, now, err := openLedger(ctx, db)
	if err != nil {
		return nil, err
	}
	part, err := h.ctrl.Withdraw(l, now, signer, msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "withdraw")
	}
	lpstake.GetLogger(ctx).Debug("withdraw",
		"participant", part.Address, "amount", msg.Amount, "remaining", part.Deposit)
	return &lpstake.DeliverResult{}, nil
}

func (h *withdrawHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (*WithdrawMsg, Signer, error) {
	var msg WithdrawMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return nil, Signer{}, errors.Wrap(err, "load msg")
	}
	signer, err := Authorize(ctx, h.auth, msg.Participant)
	if err != nil {
		return nil, Signer{}, err
	}
	return &msg, signer, nil
}

type claimHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lpstake.Handler = (*claimHandler)(nil)

func (h *claimHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

// Deliver pays the pending reward. The result data holds the paid coin.
func (h *claimHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	signer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	l, now, err := openLedger(ctx, db)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.Claim(l, now, signer)
	if err != nil {
		return nil, errors.Wrap(err, "claim")
	}
	p, err := l.Load()
	if err != nil {
		return nil, err
	}
	paid := coin.NewCoin(amount, p.RewardTicker)
	raw, err := paid.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal paid reward")
	}
	lpstake.GetLogger(ctx).Debug("claim", "participant", signer.Address(), "paid", paid)
	return &lpstake.DeliverResult{Data: raw}, nil
}

func (h *claimHandler) validate(ctx lpstake.Context, tx lpstake.Tx) (Signer, error) {
	var msg ClaimMsg
	if err := lpstake.LoadMsg(tx, &msg); err != nil {
		return Signer{}, errors.Wrap(err, "load msg")
	}
	return Authorize(ctx, h.auth, msg.Participant)
}
