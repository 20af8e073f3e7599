package poll

import (
	"context"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/utils/errors"
	"github.com/axelarnetwork/polls/x/poll/keeper"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// NewHandler returns the handler of the poll module
func NewHandler(k keeper.Keeper) types.Handler {
	server := keeper.NewMsgServerImpl(k)
	h := func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		switch msg := msg.(type) {
		case *types.InstantiateRequest:
			return run(ctx, k, func(c context.Context) (*types.InstantiateResponse, error) {
				return server.Instantiate(c, msg)
			})
		case *types.CreatePollRequest:
			return run(ctx, k, func(c context.Context) (*types.CreatePollResponse, error) {
				return server.CreatePoll(c, msg)
			})
		case *types.VoteRequest:
			return run(ctx, k, func(c context.Context) (*types.VoteResponse, error) {
				return server.Vote(c, msg)
			})
		default:
			return nil, errorsmod.Wrap(sdkerrors.ErrUnknownRequest,
				fmt.Sprintf("unrecognized %s message type: %T", types.ModuleName, msg))
		}
	}

	return func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
		res, err := h(ctx, msg)
		if err != nil {
			k.Logger(ctx).Debug(fmt.Sprintf("%s failed", msg.Type()), append([]interface{}{"error", err}, errors.KeyVals(err)...)...)
			return nil, err
		}

		return res, nil
	}
}

// run executes the transition on a cached branch of the store, so a failed transition leaves no partial writes
func run[T any](ctx sdk.Context, k keeper.Keeper, transition func(context.Context) (T, error)) (*sdk.Result, error) {
	res, err := utils.RunCached(ctx, k, func(ctx sdk.Context) (T, error) {
		return transition(sdk.WrapSDKContext(ctx))
	})
	if err != nil {
		return nil, err
	}

	bz, err := json.Marshal(res)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	return &sdk.Result{
		Data:   bz,
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}
