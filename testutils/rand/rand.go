// Package rand provides random value generators for tests.
package rand

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/axelarnetwork/utils/test/rand"
)

// AccAddr returns a random account address
func AccAddr() sdk.AccAddress {
	return rand.Bytes(address.Len)
}

// Of returns a random item from the given items
func Of[T any](items ...T) T {
	return items[rand.I64Between(0, len(items))]
}
