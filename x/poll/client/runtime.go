// Package client contains the command line and REST surfaces of the poll module.
package client

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/polls/x/poll/types"
)

//go:generate moq -out ./mock/runtime.go -pkg mock . Runtime

// Runtime executes poll messages against persisted state and resolves queries
type Runtime interface {
	Addresses() types.AddressValidator
	Execute(msg types.Msg) (types.TxResult, error)
	InstantiateJSON(bz []byte, sender sdk.AccAddress) (types.TxResult, error)
	ExecuteJSON(bz []byte, sender sdk.AccAddress) (types.TxResult, error)
	Query(path ...string) ([]byte, error)
	Close() error
}
