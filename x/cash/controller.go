package cash

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/orm"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// Moving coins happens from the source to the destination address.
	// Zero or negative values must result in an error.
	MoveCoins(lpstake.KVStore, lpstake.Address, lpstake.Address, coin.Coin) error
}

// Balancer is an interface to query the amount of coins.
type Balancer interface {
	Balance(lpstake.ReadOnlyKVStore, lpstake.Address) (coin.Coins, error)
}

// Issuer is an interface for creating coins.
type Issuer interface {
	IssueCoins(lpstake.KVStore, lpstake.Address, coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and
// other extensions that move tokens.
type Controller interface {
	CoinMover
	Balancer
	Issuer
}

// BaseController is the default implementation of Controller, storing
// wallets in a model bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that manages wallets of given bucket.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins owned by given address. An address that never
// received coins has an empty balance.
func (c BaseController) Balance(db lpstake.ReadOnlyKVStore, addr lpstake.Address) (coin.Coins, error) {
	w, err := c.load(db, addr)
	if err != nil {
		return nil, err
	}
	return w.Coins, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db lpstake.KVStore, src, dest lpstake.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive amount %s", amount)
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.load(db, src)
	if err != nil {
		return err
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientBalance, "%s cannot pay %s", src, amount)
	}
	if src.Equals(dest) {
		return nil
	}
	if err := c.add(db, src, sender, amount.Negative()); err != nil {
		return errors.Wrap(err, "source")
	}

	recipient, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if err := c.add(db, dest, recipient, amount); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db lpstake.KVStore, dest lpstake.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.load(db, dest)
	if err != nil {
		return err
	}
	return c.add(db, dest, w, amount)
}

// load returns the wallet of given address or an empty one.
func (c BaseController) load(db lpstake.ReadOnlyKVStore, addr lpstake.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}

// add changes the wallet balance by amount and persists it. Empty wallets
// are removed from the store.
func (c BaseController) add(db lpstake.KVStore, addr lpstake.Address, w *Wallet, amount coin.Coin) error {
	coins, err := w.Coins.Add(amount)
	if err != nil {
		return err
	}
	if !coins.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientBalance, "%s cannot pay %s", addr, amount.Negative())
	}
	if coins.IsEmpty() {
		if err := c.bucket.Delete(db, addr); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return c.bucket.Put(db, addr, &Wallet{Coins: coins})
}
