/*
Package keeper holds the poll module's state. It is the only component that reads or writes poll records and
the configuration, and it implements the transitions that move between states.
*/
package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/utils/key"
	"github.com/axelarnetwork/polls/x/poll/types"
)

var (
	configKey  = key.FromStr("config")
	pollPrefix = key.FromStr("poll")
)

// Keeper provides access to the poll module's configuration and polls
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       *codec.LegacyAmino
	addresses types.AddressValidator
}

// NewKeeper returns a new poll keeper
func NewKeeper(cdc *codec.LegacyAmino, storeKey storetypes.StoreKey, addresses types.AddressValidator) Keeper {
	return Keeper{
		storeKey:  storeKey,
		cdc:       cdc,
		addresses: addresses,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetConfig returns the module configuration. It fails if the module has not been instantiated.
func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	var config types.Config
	if !k.getStore(ctx).Get(configKey, &config) {
		return types.Config{}, errorsmod.Wrap(types.ErrNotFound, "config")
	}

	return config, nil
}

func (k Keeper) setConfig(ctx sdk.Context, config types.Config) {
	k.getStore(ctx).Set(configKey, &config)
}

func (k Keeper) hasConfig(ctx sdk.Context) bool {
	return k.getStore(ctx).Has(configKey)
}

// HasPoll returns true if a poll exists for the given question
func (k Keeper) HasPoll(ctx sdk.Context, question string) bool {
	return k.getStore(ctx).Has(pollKey(question))
}

// GetPoll returns the poll for the given question. It fails if no such poll exists.
func (k Keeper) GetPoll(ctx sdk.Context, question string) (types.Poll, error) {
	poll, ok := k.FindPoll(ctx, question)
	if !ok {
		return types.Poll{}, errorsmod.Wrapf(types.ErrPollNotFound, "%q", question)
	}

	return poll, nil
}

// FindPoll returns the poll for the given question and whether it exists
func (k Keeper) FindPoll(ctx sdk.Context, question string) (types.Poll, bool) {
	var poll types.Poll
	ok := k.getStore(ctx).Get(pollKey(question), &poll)

	return poll, ok
}

// GetPolls returns all polls ordered by question
func (k Keeper) GetPolls(ctx sdk.Context) []types.Poll {
	var polls []types.Poll

	iter := k.getStore(ctx).Iterator(pollPrefix)
	defer utils.CloseLogError(iter, k.Logger(ctx))

	for ; iter.Valid(); iter.Next() {
		var poll types.Poll
		iter.UnmarshalValue(&poll)

		polls = append(polls, poll)
	}

	return polls
}

// setPoll overwrites the poll stored under its own question
func (k Keeper) setPoll(ctx sdk.Context, poll types.Poll) {
	k.getStore(ctx).Set(pollKey(poll.Question), &poll)
}

func pollKey(question string) key.Key {
	return pollPrefix.Append(key.FromRawStr(question))
}

func (k Keeper) getStore(ctx sdk.Context) utils.KVStore {
	return utils.NewNormalizedStore(ctx.KVStore(k.storeKey), k.cdc)
}
