package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/x/cash"
)

// TokenGateway moves tokens between accounts and the pool. Errors are
// returned unchanged to the caller.
type TokenGateway interface {
	// TransferFrom moves amount from payer to payee.
	TransferFrom(db lpstake.KVStore, payer, payee lpstake.Address, amount coin.Coin) error
	// Transfer pays amount from the pool account to payee.
	Transfer(db lpstake.KVStore, payee lpstake.Address, amount coin.Coin) error
}

// PoolAccount is the account holding all deposited and funded tokens.
func PoolAccount() lpstake.Address {
	return lpstake.NewCondition("pool", "account", []byte("pool")).Address()
}

type cashGateway struct {
	mover   cash.CoinMover
	account lpstake.Address
}

// NewCashGateway returns a gateway that moves tokens with the cash
// extension.
func NewCashGateway(mover cash.CoinMover) TokenGateway {
	return cashGateway{mover: mover, account: PoolAccount()}
}

func (g cashGateway) TransferFrom(db lpstake.KVStore, payer, payee lpstake.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	return g.mover.MoveCoins(db, payer, payee, amount)
}

func (g cashGateway) Transfer(db lpstake.KVStore, payee lpstake.Address, amount coin.Coin) error {
	return g.TransferFrom(db, g.account, payee, amount)
}
