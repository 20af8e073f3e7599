package types

// query endpoints supported by the legacy querier
const (
	QueryPoll   = "poll"
	QueryConfig = "config"
	QueryPolls  = "polls"
)

// PollRequest looks up a poll by its question
type PollRequest struct {
	Question string `json:"question"`
}

// PollResponse holds the poll, or nil if no poll exists for the question
type PollResponse struct {
	Poll *Poll `json:"poll"`
}

// ConfigRequest looks up the module configuration
type ConfigRequest struct{}

// ConfigResponse holds the module configuration
type ConfigResponse struct {
	Config Config `json:"config"`
}

// PollsRequest lists all polls
type PollsRequest struct{}

// PollsResponse holds all polls ordered by question
type PollsResponse struct {
	Polls []Poll `json:"polls"`
}
