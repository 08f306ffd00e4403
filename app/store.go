package app

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp contains a data store and all info needed to initialize it from
// a genesis and move it from block to block.
//
// All methods are safe for concurrent use. Calls are serialized, so every
// operation observes the complete result of the operations before it.
type StoreApp struct {
	mu sync.Mutex

	logger log.Logger

	// name is used in log entries
	name string

	// Database state (committed, check, deliver....)
	store *CommitStore

	// Code to initialize from a genesis file
	initializer lpstake.Initializer

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext lpstake.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height, header), reset on BeginBlock
	blockContext lpstake.Context
}

// NewStoreApp initializes this app into a ready state with some defaults.
func NewStoreApp(name string, store lpstake.CommitKVStore, baseContext lpstake.Context) (*StoreApp, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	s := &StoreApp{
		name:        name,
		store:       cs,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	s.chainID = chainID
	if s.chainID != "" {
		s.baseContext = lpstake.WithChainID(s.baseContext, s.chainID)
	}

	// get the most recent height
	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	s.blockContext = lpstake.WithHeight(s.baseContext, info.Version)
	return s, nil
}

// GetChainID returns the current chainID
func (s *StoreApp) GetChainID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chainID
}

// WithInit is used to set the init function we call
func (s *StoreApp) WithInit(init lpstake.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger on the StoreApp and returns it,
// to make it easy to chain in initialization
//
// also sets baseContext logger
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = lpstake.WithLogger(s.baseContext, logger)
	if s.blockContext != nil {
		s.blockContext = lpstake.WithLogger(s.blockContext, logger)
	}
	s.logger = logger.With("app", s.name)
	return s
}

// Logger returns the application base logger
func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the block context for public use
func (s *StoreApp) BlockContext() lpstake.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockContext
}

// ReadStore returns a read only view of the last committed state.
func (s *StoreApp) ReadStore() lpstake.ReadOnlyKVStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ReadStore()
}

// LatestVersion returns the height and hash of the last commit.
func (s *StoreApp) LatestVersion() (lpstake.CommitID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CommitInfo()
}

// InitChain is called once, when the chain starts. It stores the chain ID
// and initializes all extensions from the app state of the genesis.
func (s *StoreApp) InitChain(chainID string, appState []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chainID != "" {
		return errors.Wrapf(errors.ErrDuplicate, "app state previously loaded for chain: %s", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis")
	}
	var opts lpstake.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "app_state: %s", err)
	}

	if err := saveChainID(s.store.DeliverStore(), chainID); err != nil {
		return err
	}
	if s.initializer != nil {
		if err := s.initializer.FromGenesis(opts, s.store.DeliverStore()); err != nil {
			return errors.Wrap(err, "genesis")
		}
	}

	s.chainID = chainID
	s.baseContext = lpstake.WithChainID(s.baseContext, chainID)
	s.blockContext = lpstake.WithChainID(s.blockContext, chainID)
	s.logger.Info("Chain initialized", "chain_id", chainID)
	return nil
}

// BeginBlock sets up the block context. The header time is the clock used
// by every message processed within this block.
func (s *StoreApp) BeginBlock(header abci.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := lpstake.WithHeader(s.baseContext, header)
	ctx = lpstake.WithHeight(ctx, header.GetHeight())
	s.blockContext = ctx
}

// Commit persists everything delivered since the last commit.
func (s *StoreApp) Commit() (lpstake.CommitID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	commitID, err := s.store.Commit()
	if err != nil {
		return commitID, errors.Wrap(err, "commit")
	}
	s.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)
	return commitID, nil
}
