// Package rest exposes the poll module over HTTP.
package rest

import (
	"encoding/json"
	"io"
	"net/http"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gorilla/mux"

	"github.com/axelarnetwork/polls/x/poll/client"
	"github.com/axelarnetwork/polls/x/poll/types"
)

// rest routes
const (
	PathVarQuestion = "question"

	RouteConfig      = "/config"
	RoutePolls       = "/polls"
	RoutePoll        = "/polls/{" + PathVarQuestion + ":.+}"
	RouteInstantiate = "/instantiate"
	RouteExecute     = "/execute"
	RouteQuery       = "/query"
)

const maxBodyBytes = 1 << 20

// TxReq is the body of all write requests
type TxReq struct {
	Sender string          `json:"sender"`
	Msg    json.RawMessage `json:"msg"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Error     string `json:"error"`
}

// RegisterRoutes registers the poll module's REST routes on the given router
func RegisterRoutes(rt client.Runtime, r *mux.Router) {
	r.HandleFunc(RouteConfig, queryHandler(rt, func(*http.Request) []string {
		return []string{types.QueryConfig}
	})).Methods(http.MethodGet)

	r.HandleFunc(RoutePolls, queryHandler(rt, func(*http.Request) []string {
		return []string{types.QueryPolls}
	})).Methods(http.MethodGet)

	r.HandleFunc(RoutePoll, queryHandler(rt, func(req *http.Request) []string {
		return []string{types.QueryPoll, mux.Vars(req)[PathVarQuestion]}
	})).Methods(http.MethodGet)

	r.HandleFunc(RouteQuery, QueryJSONHandler(rt)).Methods(http.MethodPost)
	r.HandleFunc(RouteInstantiate, TxHandler(rt, rt.InstantiateJSON)).Methods(http.MethodPost)
	r.HandleFunc(RouteExecute, TxHandler(rt, rt.ExecuteJSON)).Methods(http.MethodPost)
}

func queryHandler(rt client.Runtime, path func(*http.Request) []string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res, err := rt.Query(path(req)...)
		if err != nil {
			WriteErrorResponse(w, err)
			return
		}

		writeRaw(w, http.StatusOK, res)
	}
}

// QueryJSONHandler returns a handler that resolves a JSON query message from the request body
func QueryJSONHandler(rt client.Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		bz, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
		if err != nil {
			WriteErrorResponse(w, errorsmod.Wrap(types.ErrInvalidMessage, err.Error()))
			return
		}

		path, err := types.ParseQueryMsg(bz)
		if err != nil {
			WriteErrorResponse(w, err)
			return
		}

		res, err := rt.Query(path...)
		if err != nil {
			WriteErrorResponse(w, err)
			return
		}

		writeRaw(w, http.StatusOK, res)
	}
}

// TxHandler returns a handler that executes the JSON message of a TxReq on behalf of its sender
func TxHandler(rt client.Runtime, execute func(bz []byte, sender sdk.AccAddress) (types.TxResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var txReq TxReq
		if err := json.NewDecoder(io.LimitReader(req.Body, maxBodyBytes)).Decode(&txReq); err != nil {
			WriteErrorResponse(w, errorsmod.Wrap(types.ErrInvalidMessage, err.Error()))
			return
		}

		sender, err := rt.Addresses().Validate(txReq.Sender)
		if err != nil {
			WriteErrorResponse(w, err)
			return
		}

		res, err := execute(txReq.Msg, sender)
		if err != nil {
			WriteErrorResponse(w, err)
			return
		}

		bz, err := json.Marshal(res)
		if err != nil {
			WriteErrorResponse(w, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error()))
			return
		}

		writeRaw(w, http.StatusOK, bz)
	}
}

// WriteErrorResponse writes err with the HTTP status matching its registered error
func WriteErrorResponse(w http.ResponseWriter, err error) {
	codespace, code, log := errorsmod.ABCIInfo(err, false)

	bz, _ := json.Marshal(ErrorResponse{
		Codespace: codespace,
		Code:      code,
		Error:     log,
	})

	writeRaw(w, StatusCode(err), bz)
}

// StatusCode maps an error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errorsmod.IsOf(err, types.ErrNotFound, types.ErrPollNotFound):
		return http.StatusNotFound
	case errorsmod.IsOf(err, types.ErrDuplicateKey, types.ErrAlreadyInstantiated):
		return http.StatusConflict
	case errorsmod.IsOf(err,
		types.ErrInvalidAddress,
		types.ErrInvalidChoice,
		types.ErrInvalidQuestion,
		types.ErrInvalidMessage,
		sdkerrors.ErrUnknownRequest,
		sdkerrors.ErrInvalidRequest,
	):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeRaw(w http.ResponseWriter, status int, bz []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bz)
}
