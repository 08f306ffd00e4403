package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/orm"
	"github.com/lpstake/lpstake/ttl"
)

// Ledger is the handle to the pool state stored in a database. It is owned
// by a single operation and must not be shared.
type Ledger struct {
	db           lpstake.KVStore
	pools        orm.ModelBucket
	participants orm.ModelBucket

	// Lifetime extension of the pool instance, disabled when bump is zero.
	height    int64
	threshold int64
	bump      int64
}

// NewLedger returns a ledger operating on given database.
func NewLedger(db lpstake.KVStore) *Ledger {
	return &Ledger{
		db:           db,
		pools:        NewPoolBucket(),
		participants: NewParticipantBucket(),
	}
}

// WithTTL makes every pool write extend the pool instance lifetime as of
// the given block height.
func (l *Ledger) WithTTL(height int64, conf Configuration) *Ledger {
	l.height = height
	l.threshold = conf.TTLThreshold
	l.bump = conf.TTLBump
	return l
}

// Load returns the pool state. ErrUninitialized is returned if the pool
// was not initialized yet.
func (l *Ledger) Load() (*Pool, error) {
	return loadPool(l.db, l.pools)
}

func loadPool(db lpstake.ReadOnlyKVStore, pools orm.ModelBucket) (*Pool, error) {
	var p Pool
	switch err := pools.One(db, poolKey, &p); {
	case err == nil:
		return &p, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrUninitialized, "no pool state")
	default:
		return nil, errors.Wrap(err, "cannot load pool")
	}
}

// Exists returns true if the pool was initialized.
func (l *Ledger) Exists() (bool, error) {
	switch err := l.pools.Has(l.db, poolKey); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Save validates and writes the pool state.
func (l *Ledger) Save(p *Pool) error {
	if err := l.pools.Put(l.db, poolKey, p); err != nil {
		return errors.Wrap(err, "cannot save pool")
	}
	if l.bump == 0 {
		return nil
	}
	if err := ttl.Extend(l.db, l.pools.DBKey(poolKey), l.height, l.threshold, l.bump); err != nil {
		return errors.Wrap(err, "cannot extend pool lifetime")
	}
	return nil
}

// Participant returns the record of given address or ErrNotFound.
func (l *Ledger) Participant(addr lpstake.Address) (*Participant, error) {
	var p Participant
	if err := l.participants.One(l.db, addr, &p); err != nil {
		return nil, errors.Wrapf(err, "participant %s", addr)
	}
	return &p, nil
}

// SaveParticipant validates and writes a participant record.
func (l *Ledger) SaveParticipant(p *Participant) error {
	if err := l.participants.Put(l.db, p.Address, p); err != nil {
		return errors.Wrap(err, "cannot save participant")
	}
	return nil
}

// Participants returns all participant records ordered by address.
func (l *Ledger) Participants() ([]*Participant, error) {
	it, err := l.participants.IterAll(l.db)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []*Participant
	for {
		var p Participant
		switch _, err := it.LoadNext(&p); {
		case err == nil:
			res = append(res, &p)
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, errors.Wrap(err, "cannot load participant")
		}
	}
}

// CheckInvariants returns an error if the stored state is not consistent:
// the total deposit must equal the sum of participant deposits and no
// deposit can be negative.
func (l *Ledger) CheckInvariants() error {
	p, err := l.Load()
	if err != nil {
		return err
	}
	participants, err := l.Participants()
	if err != nil {
		return err
	}
	var sum int64
	for _, part := range participants {
		if part.Deposit < 0 {
			return errors.Wrapf(errors.ErrInvalidState, "negative deposit of %s", part.Address)
		}
		if sum, err = safeAdd(sum, part.Deposit); err != nil {
			return err
		}
	}
	if p.TotalDeposit < 0 {
		return errors.Wrap(errors.ErrInvalidState, "negative total deposit")
	}
	if sum != p.TotalDeposit {
		return errors.Wrapf(errors.ErrInvalidState, "total deposit %d, participants hold %d", p.TotalDeposit, sum)
	}
	return nil
}
