package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/polls/x/poll/types"
)

// InitGenesis initializes the poll module's state from a given genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState.Config != nil {
		k.setConfig(ctx, *genState.Config)
	}

	for _, poll := range genState.Polls {
		if k.HasPoll(ctx, poll.Question) {
			panic(errorsmod.Wrapf(types.ErrDuplicateKey, "poll %q", poll.Question))
		}

		k.setPoll(ctx, poll)
	}
}

// ExportGenesis returns the poll module's genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	polls := k.GetPolls(ctx)
	if polls == nil {
		polls = []types.Poll{}
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.NewGenesisState(nil, polls)
	}

	return types.NewGenesisState(&config, polls)
}
