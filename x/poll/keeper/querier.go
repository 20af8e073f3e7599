package keeper

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/axelarnetwork/polls/x/poll/types"
)

// LegacyQuerier is a query handler that resolves a path to JSON encoded state
type LegacyQuerier func(ctx sdk.Context, path []string) ([]byte, error)

// NewQuerier returns a new legacy querier for the poll module
func NewQuerier(k Keeper) LegacyQuerier {
	q := NewQueryServer(k)

	return func(ctx sdk.Context, path []string) ([]byte, error) {
		if len(path) == 0 {
			return nil, errorsmod.Wrap(sdkerrors.ErrUnknownRequest, "empty query path")
		}

		c := sdk.WrapSDKContext(ctx)

		var res interface{}
		var err error
		switch path[0] {
		case types.QueryPoll:
			if len(path) != 2 {
				return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "expected path %s/<question>", types.QueryPoll)
			}
			res, err = q.Poll(c, &types.PollRequest{Question: path[1]})
		case types.QueryConfig:
			res, err = q.Config(c, &types.ConfigRequest{})
		case types.QueryPolls:
			res, err = q.Polls(c, &types.PollsRequest{})
		default:
			return nil, errorsmod.Wrap(sdkerrors.ErrUnknownRequest, fmt.Sprintf("unknown %s query endpoint: %s", types.ModuleName, path[0]))
		}

		if err != nil {
			return nil, err
		}

		return json.Marshal(res)
	}
}
