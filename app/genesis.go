package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

// Genesis file format, designed to be overlayed with tendermint genesis
type Genesis struct {
	ChainID  string          `json:"chain_id"`
	AppState lpstake.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInvalidInput, "loading genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInvalidInput, "unmarshaling genesis file: %s", err)
	}
	if !lpstake.IsValidChainID(gen.ChainID) {
		return gen, errors.Wrapf(errors.ErrInvalidInput, "chain id: %q", gen.ChainID)
	}
	return gen, nil
}
