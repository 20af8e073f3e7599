package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/testutils/rand"
	"github.com/axelarnetwork/polls/x/poll/client"
	"github.com/axelarnetwork/polls/x/poll/client/cli"
	"github.com/axelarnetwork/polls/x/poll/client/mock"
	"github.com/axelarnetwork/polls/x/poll/types"
	"github.com/axelarnetwork/utils/funcs"
)

const bech32Prefix = "polls"

func newRuntime() *mock.RuntimeMock {
	return &mock.RuntimeMock{
		AddressesFunc: func() types.AddressValidator { return types.NewBech32AddressValidator(bech32Prefix) },
		CloseFunc:     func() error { return nil },
		ExecuteFunc: func(msg types.Msg) (types.TxResult, error) {
			return types.TxResult{Height: 1, Action: msg.Type(), Data: []byte(`{}`)}, nil
		},
		QueryFunc: func(path ...string) ([]byte, error) {
			return []byte(`{"polls":[]}`), nil
		},
	}
}

func factory(rt client.Runtime) cli.RuntimeFactory {
	return func(*cobra.Command) (client.Runtime, error) { return rt, nil }
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGetTxCmd(t *testing.T) {
	sender := rand.AccAddr()
	from := funcs.Must(sdk.Bech32ifyAddressBytes(bech32Prefix, sender))

	t.Run("create poll", func(t *testing.T) {
		rt := newRuntime()

		out, err := execute(cli.GetTxCmd(factory(rt)), "create-poll", "Do you love X?", "--from", from)
		assert.NoError(t, err)

		assert.Len(t, rt.ExecuteCalls(), 1)
		assert.Equal(t, types.NewCreatePollRequest(sender, "Do you love X?"), rt.ExecuteCalls()[0].Msg)
		assert.Len(t, rt.CloseCalls(), 1)

		var res types.TxResult
		assert.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, types.AttributeValueCreatePoll, res.Action)
	})

	t.Run("vote", func(t *testing.T) {
		rt := newRuntime()

		_, err := execute(cli.GetTxCmd(factory(rt)), "vote", "Do you love X?", "no", "--from", from)
		assert.NoError(t, err)

		assert.Len(t, rt.ExecuteCalls(), 1)
		assert.Equal(t, types.NewVoteRequest(sender, "Do you love X?", "no"), rt.ExecuteCalls()[0].Msg)
	})

	t.Run("instantiate", func(t *testing.T) {
		rt := newRuntime()
		admin := funcs.Must(sdk.Bech32ifyAddressBytes(bech32Prefix, rand.AccAddr()))

		_, err := execute(cli.GetTxCmd(factory(rt)), "instantiate", admin, "--from", from)
		assert.NoError(t, err)

		assert.Equal(t, types.NewInstantiateRequest(sender, admin), rt.ExecuteCalls()[0].Msg)
	})

	t.Run("generate only", func(t *testing.T) {
		rt := newRuntime()

		out, err := execute(cli.GetTxCmd(factory(rt)), "create-poll", "Do you love X?", "--from", from, "--generate-only")
		assert.NoError(t, err)

		assert.Len(t, rt.ExecuteCalls(), 0)
		assert.Contains(t, out, "poll/CreatePoll")
		assert.Contains(t, out, "Do you love X?")
	})

	t.Run("invalid sender", func(t *testing.T) {
		rt := newRuntime()

		_, err := execute(cli.GetTxCmd(factory(rt)), "create-poll", "Do you love X?", "--from", "nobody")
		assert.ErrorIs(t, err, types.ErrInvalidAddress)
		assert.Len(t, rt.ExecuteCalls(), 0)
		assert.Len(t, rt.CloseCalls(), 1)
	})

	t.Run("blank question", func(t *testing.T) {
		rt := newRuntime()

		_, err := execute(cli.GetTxCmd(factory(rt)), "create-poll", "  ", "--from", from)
		assert.ErrorIs(t, err, types.ErrInvalidQuestion)
		assert.Len(t, rt.ExecuteCalls(), 0)
	})
}

func TestGetQueryCmd(t *testing.T) {
	rt := newRuntime()

	out, err := execute(cli.GetQueryCmd(factory(rt)), "poll", "Do you love X?")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"polls":[]}`, out)
	assert.Equal(t, []string{types.QueryPoll, "Do you love X?"}, rt.QueryCalls()[0].Path)

	_, err = execute(cli.GetQueryCmd(factory(rt)), "config")
	assert.NoError(t, err)
	assert.Equal(t, []string{types.QueryConfig}, rt.QueryCalls()[1].Path)

	_, err = execute(cli.GetQueryCmd(factory(rt)), "polls")
	assert.NoError(t, err)
	assert.Equal(t, []string{types.QueryPolls}, rt.QueryCalls()[2].Path)

	assert.Len(t, rt.CloseCalls(), 3)
}
