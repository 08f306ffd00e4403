package poold

import (
	"encoding/json"
	"time"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/app"
	"github.com/lpstake/lpstake/crypto"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/store"
	"github.com/lpstake/lpstake/store/iavl"
	"github.com/lpstake/lpstake/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Node runs the application without a consensus engine. Every transaction
// is processed in its own block.
type Node struct {
	app    app.BaseApp
	kv     iavl.CommitStore
	logger log.Logger
}

// OpenNode loads the application state stored at dbPath. An empty path
// keeps everything in memory.
func OpenNode(dbPath string, logger log.Logger, debug bool) (*Node, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	a, err := Application("poold", Stack(), kv, logger, debug)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return &Node{app: a, kv: kv, logger: logger}, nil
}

// Close releases the database.
func (n *Node) Close() error {
	return n.kv.Close()
}

// InitChain loads the genesis and commits the initial state.
func (n *Node) InitChain(gen app.Genesis) error {
	appState, err := json.Marshal(gen.AppState)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if err := n.app.InitChain(gen.ChainID, appState); err != nil {
		return err
	}
	if _, err := n.app.Commit(); err != nil {
		return err
	}
	return nil
}

// ChainID returns the chain ID set by the genesis.
func (n *Node) ChainID() string {
	return n.app.GetChainID()
}

// Height returns the height of the last committed block.
func (n *Node) Height() (int64, error) {
	info, err := n.app.LatestVersion()
	if err != nil {
		return 0, err
	}
	return info.Version, nil
}

// QueryStore returns a view of the committed state. Writes are accepted
// but never persisted.
func (n *Node) QueryStore() lpstake.KVStore {
	empty := store.EmptyKVStore{}
	return store.NewBTreeCacheWrap(n.app.ReadStore(), empty.NewBatch(), nil)
}

// Sign adds a signature of the key to the transaction, using the next
// sequence of the key owner.
func (n *Node) Sign(tx *Tx, key crypto.Signer) error {
	chainID := n.ChainID()
	if chainID == "" {
		return errors.Wrap(errors.ErrInvalidState, "chain not initialized")
	}
	seq, err := sigs.NextNonce(n.app.ReadStore(), key.PublicKey().Address())
	if err != nil {
		return err
	}
	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return errors.Wrap(err, "sign")
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

// Apply processes the transaction in a new block with the given time and
// commits it. The block is committed even if the transaction fails, so
// the sequence of its signers moves on.
func (n *Node) Apply(tx *Tx, now time.Time) (*lpstake.DeliverResult, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, err
	}
	if _, err := n.app.CheckTx(raw); err != nil {
		return nil, errors.Wrap(err, "check")
	}

	height, err := n.Height()
	if err != nil {
		return nil, err
	}
	n.app.BeginBlock(abci.Header{
		ChainID: n.ChainID(),
		Height:  height + 1,
		Time:    now.UTC(),
	})
	res, deliverErr := n.app.DeliverTx(raw)
	commit, err := n.app.Commit()
	if err != nil {
		return nil, err
	}
	n.logger.Debug("block applied", "height", commit.Version, "path", lpstake.GetPath(tx))
	if deliverErr != nil {
		return nil, deliverErr
	}
	return res, nil
}
