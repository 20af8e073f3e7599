package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	rand2 "github.com/axelarnetwork/polls/testutils/rand"
	"github.com/axelarnetwork/polls/x/poll/types"
	"github.com/axelarnetwork/utils/test/rand"
)

func TestGenesisState_Validate(t *testing.T) {
	config := types.NewConfig(rand2.AccAddr())
	questions := rand.Strings(1, 30).Distinct().Take(5)

	var polls []types.Poll
	for _, q := range questions {
		polls = append(polls, types.Poll{Question: q, YesVotes: uint64(rand.I64Between(0, 100)), NoVotes: uint64(rand.I64Between(0, 100))})
	}

	testCases := []struct {
		label   string
		genesis *types.GenesisState
		valid   bool
	}{
		{"default", types.DefaultGenesisState(), true},
		{"config only", types.NewGenesisState(&config, nil), true},
		{"config and polls", types.NewGenesisState(&config, polls), true},
		{"polls without config", types.NewGenesisState(nil, polls), false},
		{"invalid admin", types.NewGenesisState(&types.Config{}, nil), false},
		{"empty question", types.NewGenesisState(&config, []types.Poll{{Question: ""}}), false},
		{"duplicate question", types.NewGenesisState(&config, append(polls, types.NewPoll(questions[0]))), false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.label, func(t *testing.T) {
			err := testCase.genesis.Validate()
			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, types.ErrInvalidGenesis)
			}
		})
	}
}
