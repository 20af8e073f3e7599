package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/polls/utils/errors"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// MsgServer is the server of the poll module's state transitions
type MsgServer interface {
	Instantiate(context.Context, *types.InstantiateRequest) (*types.InstantiateResponse, error)
	CreatePoll(context.Context, *types.CreatePollRequest) (*types.CreatePollResponse, error)
	Vote(context.Context, *types.VoteRequest) (*types.VoteResponse, error)
}

var _ MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns a new msg server instance
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return msgServer{Keeper: keeper}
}

// Instantiate validates the admin address and stores the configuration
func (s msgServer) Instantiate(c context.Context, req *types.InstantiateRequest) (*types.InstantiateResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	if s.hasConfig(ctx) {
		return nil, errorsmod.Wrap(types.ErrAlreadyInstantiated, "config is already set")
	}

	admin, err := s.addresses.Validate(req.AdminAddress)
	if err != nil && !errorsmod.IsOf(err, types.ErrInvalidAddress) {
		err = errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}
	if err != nil {
		return nil, errors.With(err, "admin_address", req.AdminAddress)
	}

	config := types.NewConfig(admin)
	s.setConfig(ctx, config)

	emitAction(ctx, types.AttributeValueInstantiate,
		sdk.NewAttribute(types.AttributeKeyAdmin, admin.String()),
	)
	s.Logger(ctx).Info("instantiated", "admin", admin.String(), "sender", req.Sender.String())

	return &types.InstantiateResponse{Config: config}, nil
}

// CreatePoll stores a new poll without votes. A question can only be used once.
func (s msgServer) CreatePoll(c context.Context, req *types.CreatePollRequest) (*types.CreatePollResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	if err := types.ValidateQuestion(req.Question); err != nil {
		return nil, err
	}

	if s.HasPoll(ctx, req.Question) {
		return nil, errors.With(errorsmod.Wrapf(types.ErrDuplicateKey, "poll %q", req.Question), "question", req.Question)
	}

	poll := types.NewPoll(req.Question)
	s.setPoll(ctx, poll)

	emitAction(ctx, types.AttributeValueCreatePoll,
		sdk.NewAttribute(types.AttributeKeyQuestion, poll.Question),
	)
	telemetry.IncrCounter(1, types.ModuleName, "poll", "created")
	s.Logger(ctx).Debug("poll created", "question", poll.Question)

	return &types.CreatePollResponse{Poll: poll}, nil
}

// Vote counts a single yes or no vote on an existing poll
func (s msgServer) Vote(c context.Context, req *types.VoteRequest) (*types.VoteResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	poll, err := s.GetPoll(ctx, req.Question)
	if err != nil {
		return nil, errors.With(err, "question", req.Question)
	}

	choice, err := types.ParseVoteChoice(req.Choice)
	if err != nil {
		return nil, errors.With(err, "question", req.Question, "choice", req.Choice)
	}

	poll = poll.WithVote(choice)
	s.setPoll(ctx, poll)

	emitAction(ctx, types.AttributeValueVote,
		sdk.NewAttribute(types.AttributeKeyQuestion, poll.Question),
		sdk.NewAttribute(types.AttributeKeyChoice, choice.String()),
	)
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "vote"},
		1,
		[]metrics.Label{telemetry.NewLabel("choice", choice.String())},
	)
	s.Logger(ctx).Debug("vote counted", "question", poll.Question, "choice", choice.String())

	return &types.VoteResponse{Poll: poll}, nil
}

func emitAction(ctx sdk.Context, action string, attributes ...sdk.Attribute) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			append([]sdk.Attribute{
				sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
				sdk.NewAttribute(types.AttributeKeyAction, action),
			}, attributes...)...,
		),
	)
}
