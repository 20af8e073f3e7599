package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

//go:generate moq -out ./mock/expected_keepers.go -pkg mock . AddressValidator

// AddressValidator validates raw participant addresses supplied by callers
type AddressValidator interface {
	Validate(address string) (sdk.AccAddress, error)
}
