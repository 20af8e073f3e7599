package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg is a state transition instruction handled by the poll module
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
}

// Handler executes a Msg against the state exposed by the context
type Handler func(ctx sdk.Context, msg Msg) (*sdk.Result, error)

var (
	_ Msg = &InstantiateRequest{}
	_ Msg = &CreatePollRequest{}
	_ Msg = &VoteRequest{}
)

// InstantiateRequest records the admin identity. It runs once per store.
type InstantiateRequest struct {
	Sender       sdk.AccAddress `json:"sender"`
	AdminAddress string         `json:"admin_address"`
}

// NewInstantiateRequest is the constructor for InstantiateRequest
func NewInstantiateRequest(sender sdk.AccAddress, adminAddress string) *InstantiateRequest {
	return &InstantiateRequest{Sender: sender, AdminAddress: adminAddress}
}

// Route returns the route for this message
func (m InstantiateRequest) Route() string { return RouterKey }

// Type returns the type of the message
func (m InstantiateRequest) Type() string { return AttributeValueInstantiate }

// ValidateBasic executes a stateless message validation.
// The admin address is checked by the address validator when the message is executed.
func (m InstantiateRequest) ValidateBasic() error {
	return validateSender(m.Sender)
}

// GetSigners returns the set of signers for this message
func (m InstantiateRequest) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{m.Sender} }

// InstantiateResponse carries the stored configuration
type InstantiateResponse struct {
	Config Config `json:"config"`
}

// CreatePollRequest creates a poll with zero votes
type CreatePollRequest struct {
	Sender   sdk.AccAddress `json:"sender"`
	Question string         `json:"question"`
}

// NewCreatePollRequest is the constructor for CreatePollRequest
func NewCreatePollRequest(sender sdk.AccAddress, question string) *CreatePollRequest {
	return &CreatePollRequest{Sender: sender, Question: question}
}

// Route returns the route for this message
func (m CreatePollRequest) Route() string { return RouterKey }

// Type returns the type of the message
func (m CreatePollRequest) Type() string { return AttributeValueCreatePoll }

// ValidateBasic executes a stateless message validation
func (m CreatePollRequest) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}

	return ValidateQuestion(m.Question)
}

// GetSigners returns the set of signers for this message
func (m CreatePollRequest) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{m.Sender} }

// CreatePollResponse carries the created poll
type CreatePollResponse struct {
	Poll Poll `json:"poll"`
}

// VoteRequest casts a single vote on an existing poll
type VoteRequest struct {
	Sender   sdk.AccAddress `json:"sender"`
	Question string         `json:"question"`
	Choice   string         `json:"choice"`
}

// NewVoteRequest is the constructor for VoteRequest
func NewVoteRequest(sender sdk.AccAddress, question string, choice string) *VoteRequest {
	return &VoteRequest{Sender: sender, Question: question, Choice: choice}
}

// Route returns the route for this message
func (m VoteRequest) Route() string { return RouterKey }

// Type returns the type of the message
func (m VoteRequest) Type() string { return AttributeValueVote }

// ValidateBasic executes a stateless message validation.
// The choice is parsed only after the poll has been loaded, so a vote on a missing poll reports the missing poll.
func (m VoteRequest) ValidateBasic() error {
	return validateSender(m.Sender)
}

// GetSigners returns the set of signers for this message
func (m VoteRequest) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{m.Sender} }

// VoteResponse carries the poll after the vote was counted
type VoteResponse struct {
	Poll Poll `json:"poll"`
}

func validateSender(sender sdk.AccAddress) error {
	if err := sdk.VerifyAddressFormat(sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "invalid sender: %s", err)
	}

	return nil
}
