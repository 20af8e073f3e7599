package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/polls/x/poll/types"
)

// Querier implements the read-only endpoints of the poll module
type Querier struct {
	keeper Keeper
}

// NewQueryServer creates a new poll Querier
func NewQueryServer(k Keeper) Querier {
	return Querier{keeper: k}
}

// Poll returns the poll for the given question. A missing poll is not an error, the response is just empty.
func (q Querier) Poll(c context.Context, req *types.PollRequest) (*types.PollResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	poll, ok := q.keeper.FindPoll(ctx, req.Question)
	if !ok {
		return &types.PollResponse{}, nil
	}

	return &types.PollResponse{Poll: &poll}, nil
}

// Config returns the module configuration
func (q Querier) Config(c context.Context, _ *types.ConfigRequest) (*types.ConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	config, err := q.keeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &types.ConfigResponse{Config: config}, nil
}

// Polls returns all polls
func (q Querier) Polls(c context.Context, _ *types.PollsRequest) (*types.PollsResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	polls := q.keeper.GetPolls(ctx)
	if polls == nil {
		polls = []types.Poll{}
	}

	return &types.PollsResponse{Polls: polls}, nil
}
