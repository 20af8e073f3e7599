package types

import (
	"encoding/json"

	abci "github.com/cometbft/cometbft/abci/types"
)

// TxResult is the outcome of a committed message
type TxResult struct {
	Height int64           `json:"height"`
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
	Events []abci.Event    `json:"events"`
}
