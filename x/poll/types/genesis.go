package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/axelarnetwork/utils/slices"
)

// GenesisState represents the module's full state
type GenesisState struct {
	Config *Config `json:"config,omitempty"`
	Polls  []Poll  `json:"polls"`
}

// NewGenesisState is the constructor for GenesisState
func NewGenesisState(config *Config, polls []Poll) *GenesisState {
	return &GenesisState{
		Config: config,
		Polls:  polls,
	}
}

// DefaultGenesisState returns an uninstantiated genesis state
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(nil, []Poll{})
}

// Validate performs a validation check on the genesis state
func (m GenesisState) Validate() error {
	if m.Config == nil {
		if len(m.Polls) > 0 {
			return getValidateError(errorsmod.Wrap(ErrNotFound, "polls require a config"))
		}

		return nil
	}

	if err := m.Config.ValidateBasic(); err != nil {
		return getValidateError(err)
	}

	for _, poll := range m.Polls {
		if err := poll.ValidateBasic(); err != nil {
			return getValidateError(err)
		}
	}

	questions := slices.Map(m.Polls, func(p Poll) string { return p.Question })
	if len(slices.Distinct(questions)) != len(questions) {
		return getValidateError(errorsmod.Wrap(ErrDuplicateKey, "duplicate poll questions"))
	}

	return nil
}

func getValidateError(err error) error {
	return errorsmod.Wrapf(ErrInvalidGenesis, "genesis state for module %s is invalid: %s", ModuleName, err)
}
