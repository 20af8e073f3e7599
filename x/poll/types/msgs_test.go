package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	rand2 "github.com/axelarnetwork/polls/testutils/rand"
	"github.com/axelarnetwork/polls/x/poll/types"
	"github.com/axelarnetwork/utils/test/rand"
)

func TestInstantiateRequest_ValidateBasic(t *testing.T) {
	assert.NoError(t, types.NewInstantiateRequest(rand2.AccAddr(), "anything").ValidateBasic())
	assert.ErrorIs(t, types.NewInstantiateRequest(nil, "anything").ValidateBasic(), types.ErrInvalidAddress)
}

func TestCreatePollRequest_ValidateBasic(t *testing.T) {
	assert.NoError(t, types.NewCreatePollRequest(rand2.AccAddr(), rand.StrBetween(1, 100)).ValidateBasic())
	assert.ErrorIs(t, types.NewCreatePollRequest(rand2.AccAddr(), "").ValidateBasic(), types.ErrInvalidQuestion)
	assert.ErrorIs(t, types.NewCreatePollRequest(nil, "q").ValidateBasic(), types.ErrInvalidAddress)
}

func TestVoteRequest_ValidateBasic(t *testing.T) {
	// the choice is checked against the stored poll, not here
	assert.NoError(t, types.NewVoteRequest(rand2.AccAddr(), "q", "maybe").ValidateBasic())
	assert.ErrorIs(t, types.NewVoteRequest(nil, "q", "yes").ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsg_Type(t *testing.T) {
	sender := rand2.AccAddr()

	assert.Equal(t, "instantiate", types.NewInstantiateRequest(sender, "").Type())
	assert.Equal(t, "create_poll", types.NewCreatePollRequest(sender, "").Type())
	assert.Equal(t, "vote", types.NewVoteRequest(sender, "", "").Type())

	for _, msg := range []types.Msg{
		types.NewInstantiateRequest(sender, ""),
		types.NewCreatePollRequest(sender, ""),
		types.NewVoteRequest(sender, "", ""),
	} {
		assert.Equal(t, types.RouterKey, msg.Route())
		assert.Equal(t, sender, msg.GetSigners()[0])
	}
}
