package types

import (
	"bytes"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InstantiateMsg is the JSON instantiation message
type InstantiateMsg struct {
	AdminAddress string `json:"admin_address"`
}

// ExecuteMsg is the JSON envelope of all write instructions. Exactly one field must be set.
type ExecuteMsg struct {
	CreatePoll *CreatePollMsg `json:"create_poll,omitempty"`
	Vote       *VoteMsg       `json:"vote,omitempty"`
}

// CreatePollMsg is the JSON body of a create_poll instruction
type CreatePollMsg struct {
	Question string `json:"question"`
}

// VoteMsg is the JSON body of a vote instruction
type VoteMsg struct {
	Question string `json:"question"`
	Choice   string `json:"choice"`
}

// QueryMsg is the JSON envelope of all read instructions. Exactly one field must be set.
type QueryMsg struct {
	Poll   *PollRequest   `json:"poll,omitempty"`
	Config *ConfigRequest `json:"config,omitempty"`
	Polls  *PollsRequest  `json:"polls,omitempty"`
}

// ParseInstantiateMsg decodes a JSON instantiation message into a request from the given sender
func ParseInstantiateMsg(bz []byte, sender sdk.AccAddress) (*InstantiateRequest, error) {
	var msg InstantiateMsg
	if err := decodeStrict(bz, &msg); err != nil {
		return nil, err
	}

	return NewInstantiateRequest(sender, msg.AdminAddress), nil
}

// ParseExecuteMsg decodes a JSON execute message into a request from the given sender
func ParseExecuteMsg(bz []byte, sender sdk.AccAddress) (Msg, error) {
	var msg ExecuteMsg
	if err := decodeStrict(bz, &msg); err != nil {
		return nil, err
	}

	switch {
	case msg.CreatePoll != nil && msg.Vote == nil:
		return NewCreatePollRequest(sender, msg.CreatePoll.Question), nil
	case msg.Vote != nil && msg.CreatePoll == nil:
		return NewVoteRequest(sender, msg.Vote.Question, msg.Vote.Choice), nil
	default:
		return nil, errorsmod.Wrap(ErrInvalidMessage, "execute message must set exactly one of create_poll, vote")
	}
}

// ParseQueryMsg decodes a JSON query message into a legacy querier path
func ParseQueryMsg(bz []byte) ([]string, error) {
	var msg QueryMsg
	if err := decodeStrict(bz, &msg); err != nil {
		return nil, err
	}

	var path []string
	set := 0
	if msg.Poll != nil {
		path = []string{QueryPoll, msg.Poll.Question}
		set++
	}
	if msg.Config != nil {
		path = []string{QueryConfig}
		set++
	}
	if msg.Polls != nil {
		path = []string{QueryPolls}
		set++
	}

	if set != 1 {
		return nil, errorsmod.Wrap(ErrInvalidMessage, "query message must set exactly one of poll, config, polls")
	}

	return path, nil
}

func decodeStrict(bz []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errorsmod.Wrap(ErrInvalidMessage, err.Error())
	}

	return nil
}
