package gconf

import (
	"reflect"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/x"
)

// OwnedConfig is a configuration that names the address allowed to change
// it.
type OwnedConfig interface {
	Configuration
	GetOwner() lpstake.Address
}

// PatchMsg carries a partial configuration. Fields left at their zero value
// keep the stored value.
type PatchMsg interface {
	lpstake.Msg
	ConfigPatch() OwnedConfig
}

// Bootstrap resolves the address allowed to create a configuration that
// was not provided in genesis. It is never consulted once a configuration
// is stored.
type Bootstrap interface {
	BootstrapAdmin(db lpstake.ReadOnlyKVStore) (lpstake.Address, error)
}

// GenesisOnly is the Bootstrap of configurations that can only be created
// in genesis.
type GenesisOnly struct{}

var _ Bootstrap = GenesisOnly{}

func (GenesisOnly) BootstrapAdmin(lpstake.ReadOnlyKVStore) (lpstake.Address, error) {
	return nil, errors.Wrap(errors.ErrUnauthorized, "configuration must be created in genesis")
}

// ConfigHandler applies a PatchMsg to the configuration of a single
// package.
type ConfigHandler struct {
	pkg       string
	kind      reflect.Type
	auth      x.Authenticator
	bootstrap Bootstrap
}

var _ lpstake.Handler = ConfigHandler{}

// NewConfigHandler returns a handler for the configuration of pkg. The
// empty value is only used to learn the configuration type and is never
// written to. A patch must be signed by the stored owner or, while nothing
// is stored, by the bootstrap admin.
func NewConfigHandler(pkg string, empty OwnedConfig, auth x.Authenticator, bootstrap Bootstrap) ConfigHandler {
	if bootstrap == nil {
		bootstrap = GenesisOnly{}
	}
	return ConfigHandler{
		pkg:       pkg,
		kind:      reflect.TypeOf(empty).Elem(),
		auth:      auth,
		bootstrap: bootstrap,
	}
}

func (h ConfigHandler) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	if err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lpstake.CheckResult{}, nil
}

func (h ConfigHandler) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	if err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lpstake.DeliverResult{}, nil
}

func (h ConfigHandler) apply(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx) error {
	current := reflect.New(h.kind).Interface().(OwnedConfig)
	if err := h.authorize(ctx, db, current); err != nil {
		return err
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "message")
	}
	pm, ok := msg.(PatchMsg)
	if !ok {
		return errors.Wrapf(errors.ErrInvalidMsg, "%T is not a configuration patch", msg)
	}
	if err := pm.Validate(); err != nil {
		return err
	}
	if err := merge(current, pm.ConfigPatch()); err != nil {
		return err
	}
	if err := Save(db, h.pkg, current); err != nil {
		return errors.Wrap(err, "save configuration")
	}
	return nil
}

// authorize loads the stored configuration into current and ensures the
// transaction is signed by whoever may change it.
func (h ConfigHandler) authorize(ctx lpstake.Context, db lpstake.KVStore, current OwnedConfig) error {
	var signer lpstake.Address
	switch err := Load(db, h.pkg, current); {
	case err == nil:
		signer = current.GetOwner()
	case errors.ErrNotFound.Is(err):
		admin, err := h.bootstrap.BootstrapAdmin(db)
		if err != nil {
			return errors.Wrap(err, "bootstrap admin")
		}
		signer = admin
	default:
		return errors.Wrap(err, "load configuration")
	}
	return x.RequireAddress(ctx, h.auth, signer, "configuration owner")
}

// merge copies every non zero field of patch into dst.
func merge(dst, patch OwnedConfig) error {
	pv := reflect.ValueOf(patch)
	if pv.Kind() != reflect.Ptr || pv.IsNil() {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	dv := reflect.ValueOf(dst).Elem()
	pv = pv.Elem()
	if pv.Type() != dv.Type() {
		return errors.Wrapf(errors.ErrInvalidMsg, "patch %s does not match %s", pv.Type(), dv.Type())
	}
	for i := 0; i < pv.NumField(); i++ {
		if f := pv.Field(i); !f.IsZero() {
			dv.Field(i).Set(f)
		}
	}
	return nil
}
