package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ AddressValidator = Bech32AddressValidator{}

// Bech32AddressValidator accepts bech32 account addresses with a fixed human readable prefix
type Bech32AddressValidator struct {
	prefix string
}

// NewBech32AddressValidator returns a validator for addresses with the given prefix
func NewBech32AddressValidator(prefix string) Bech32AddressValidator {
	return Bech32AddressValidator{prefix: prefix}
}

// Validate decodes the address and checks its format
func (v Bech32AddressValidator) Validate(address string) (sdk.AccAddress, error) {
	bz, err := sdk.GetFromBech32(address, v.prefix)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAddress, "%q: %s", address, err)
	}

	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAddress, "%q: %s", address, err)
	}

	return bz, nil
}
