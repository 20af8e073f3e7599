package types

// event attributes
const (
	AttributeKeyAction   = "action"
	AttributeKeyQuestion = "question"
	AttributeKeyChoice   = "choice"
	AttributeKeyAdmin    = "admin"

	AttributeValueInstantiate = "instantiate"
	AttributeValueCreatePoll  = "create_poll"
	AttributeValueVote        = "vote"
)
