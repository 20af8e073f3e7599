package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/testutils/rand"
	"github.com/axelarnetwork/polls/x/poll/types"
)

func TestParseInstantiateMsg(t *testing.T) {
	sender := rand.AccAddr()

	req, err := types.ParseInstantiateMsg([]byte(`{"admin_address":"addr1"}`), sender)
	assert.NoError(t, err)
	assert.Equal(t, types.NewInstantiateRequest(sender, "addr1"), req)

	_, err = types.ParseInstantiateMsg([]byte(`{"admin":"addr1"}`), sender)
	assert.ErrorIs(t, err, types.ErrInvalidMessage)
}

func TestParseExecuteMsg(t *testing.T) {
	sender := rand.AccAddr()

	msg, err := types.ParseExecuteMsg([]byte(`{"create_poll":{"question":"Do you love X?"}}`), sender)
	assert.NoError(t, err)
	assert.Equal(t, types.NewCreatePollRequest(sender, "Do you love X?"), msg)

	msg, err = types.ParseExecuteMsg([]byte(`{"vote":{"question":"Do you love X?","choice":"maybe"}}`), sender)
	assert.NoError(t, err)
	assert.Equal(t, types.NewVoteRequest(sender, "Do you love X?", "maybe"), msg)

	for _, raw := range []string{
		`{}`,
		`{"create_poll":{"question":"a"},"vote":{"question":"a","choice":"yes"}}`,
		`{"close_poll":{"question":"a"}}`,
		`not json`,
	} {
		_, err := types.ParseExecuteMsg([]byte(raw), sender)
		assert.ErrorIs(t, err, types.ErrInvalidMessage, raw)
	}
}

func TestParseQueryMsg(t *testing.T) {
	path, err := types.ParseQueryMsg([]byte(`{"poll":{"question":"Do you love X?"}}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{types.QueryPoll, "Do you love X?"}, path)

	path, err = types.ParseQueryMsg([]byte(`{"config":{}}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{types.QueryConfig}, path)

	path, err = types.ParseQueryMsg([]byte(`{"polls":{}}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{types.QueryPolls}, path)

	for _, raw := range []string{`{}`, `{"config":{},"polls":{}}`, `{"votes":{}}`} {
		_, err := types.ParseQueryMsg([]byte(raw))
		assert.ErrorIs(t, err, types.ErrInvalidMessage, raw)
	}
}
