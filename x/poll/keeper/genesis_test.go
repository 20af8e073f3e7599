package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	rand2 "github.com/axelarnetwork/polls/testutils/rand"
	"github.com/axelarnetwork/polls/x/poll/types"
	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
)

func TestGenesis(t *testing.T) {
	var (
		genesis *types.GenesisState
	)

	Given("a genesis state", func() {}).Branch(
		When("it is the default state", func() {
			genesis = types.DefaultGenesisState()
		}).
			Then("export returns it unchanged", func(t *testing.T) {
				ctx, k := setup()
				k.InitGenesis(ctx, genesis)

				assert.Equal(t, genesis, k.ExportGenesis(ctx))
			}),

		When("it holds a config and polls", func() {
			config := types.NewConfig(rand2.AccAddr())

			var polls []types.Poll
			for _, q := range rand.Strings(1, 30).Distinct().Take(int(rand.I64Between(1, 20))) {
				polls = append(polls, types.Poll{Question: q, YesVotes: uint64(rand.I64Between(0, 1000)), NoVotes: uint64(rand.I64Between(0, 1000))})
			}

			genesis = types.NewGenesisState(&config, polls)
		}).
			Then("export returns the same state", func(t *testing.T) {
				ctx, k := setup()
				assert.NoError(t, genesis.Validate())
				k.InitGenesis(ctx, genesis)

				exported := k.ExportGenesis(ctx)
				assert.Equal(t, genesis.Config, exported.Config)
				assert.ElementsMatch(t, genesis.Polls, exported.Polls)
			}),

		When("it holds duplicate polls", func() {
			config := types.NewConfig(rand2.AccAddr())
			genesis = types.NewGenesisState(&config, []types.Poll{types.NewPoll("q"), types.NewPoll("q")})
		}).
			Then("init panics", func(t *testing.T) {
				ctx, k := setup()
				assert.Panics(t, func() { k.InitGenesis(ctx, genesis) })
			}),
	).Run(t, 5)
}
