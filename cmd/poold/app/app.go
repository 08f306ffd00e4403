/*
Package poold links together all the extensions to construct the pool
node application.
*/
package poold

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/app"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/store/iavl"
	"github.com/lpstake/lpstake/x"
	"github.com/lpstake/lpstake/x/cash"
	"github.com/lpstake/lpstake/x/mint"
	"github.com/lpstake/lpstake/x/pool"
	"github.com/lpstake/lpstake/x/sigs"
	"github.com/lpstake/lpstake/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by all handlers, public
// key signatures only.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication, logging
// and recovery.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewActionTagger(),
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, a failed message still increments the nonce
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all extensions. All tokens are
// held by the cash controller.
func Router(authFn x.Authenticator, bank cash.Controller) *app.Router {
	r := app.NewRouter()
	cash.RegisterRoutes(r, authFn, bank)
	mint.RegisterRoutes(r, authFn, bank)
	sigs.RegisterRoutes(r, authFn)
	pool.RegisterRoutes(r, authFn, pool.NewCashGateway(bank))
	return r
}

// Stack wires up the router with the decorator chain. This can be passed
// into BaseApp.
func Stack() lpstake.Handler {
	authFn := Authenticator()
	bank := cash.NewController(cash.NewBucket())
	return Chain().WithHandler(Router(authFn, bank))
}

// Initializers returns the genesis initializer of every extension that
// keeps state.
func Initializers() lpstake.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		mint.Initializer{},
		pool.Initializer{},
	)
}

// Application constructs the pool application on top of given store.
func Application(name string, h lpstake.Handler, kv lpstake.CommitKVStore, logger log.Logger, debug bool) (app.BaseApp, error) {
	store, err := app.NewStoreApp(name, kv, context.Background())
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "store app")
	}
	store = store.WithInit(Initializers()).WithLogger(logger)
	return app.NewBaseApp(store, TxDecoder, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists the data to
// the named path.
func CommitKVStore(dbPath string) (iavl.CommitStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return iavl.CommitStore{}, errors.Wrapf(errors.ErrInvalidInput, "invalid database name: %s", dbPath)
	}
	// Some callers add a ".db" suffix, the backend adds its own.
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
}
