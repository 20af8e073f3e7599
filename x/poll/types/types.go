package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Config is the module's singleton configuration record
type Config struct {
	Admin sdk.AccAddress `json:"admin"`
}

// NewConfig returns a new Config
func NewConfig(admin sdk.AccAddress) Config {
	return Config{Admin: admin}
}

// ValidateBasic returns an error if the config is malformed
func (c Config) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(c.Admin); err != nil {
		return errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}

	return nil
}

// Poll is a yes/no poll addressed by its question
type Poll struct {
	Question string `json:"question"`
	YesVotes uint64 `json:"yes_votes"`
	NoVotes  uint64 `json:"no_votes"`
}

// NewPoll returns a poll for the given question with no votes
func NewPoll(question string) Poll {
	return Poll{Question: question}
}

// WithVote returns a copy of the poll with the given choice counted
func (p Poll) WithVote(choice VoteChoice) Poll {
	switch choice {
	case Yes:
		p.YesVotes++
	case No:
		p.NoVotes++
	default:
		panic(fmt.Sprintf("unexpected vote choice %d", choice))
	}

	return p
}

// ValidateBasic returns an error if the poll is malformed
func (p Poll) ValidateBasic() error {
	return ValidateQuestion(p.Question)
}

// ValidateQuestion returns an error if the given question is blank
func ValidateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return errorsmod.Wrap(ErrInvalidQuestion, "question must not be empty")
	}

	return nil
}

// VoteChoice is a validated vote. The wire format accepts any string; only "yes" and "no" parse.
type VoteChoice int

// vote choices
const (
	Yes VoteChoice = iota + 1
	No
)

const (
	choiceYes = "yes"
	choiceNo  = "no"
)

// ParseVoteChoice parses the raw choice. Matching is exact and case-sensitive.
func ParseVoteChoice(choice string) (VoteChoice, error) {
	switch choice {
	case choiceYes:
		return Yes, nil
	case choiceNo:
		return No, nil
	default:
		return 0, errorsmod.Wrapf(ErrInvalidChoice, "expected %q or %q, got %q", choiceYes, choiceNo, choice)
	}
}

func (c VoteChoice) String() string {
	switch c {
	case Yes:
		return choiceYes
	case No:
		return choiceNo
	default:
		return fmt.Sprintf("VoteChoice(%d)", int(c))
	}
}
