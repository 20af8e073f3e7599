package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/app"
	"github.com/axelarnetwork/polls/testutils/rand"
	"github.com/axelarnetwork/polls/x/poll/client/rest"
	"github.com/axelarnetwork/polls/x/poll/types"
	"github.com/axelarnetwork/utils/funcs"
)

func setup(t *testing.T) *httptest.Server {
	conf := app.DefaultConfig()
	conf.DBBackend = string(dbm.MemDBBackend)

	a := funcs.Must(app.NewApp(dbm.NewMemDB(), log.NewNopLogger(), conf))

	r := mux.NewRouter()
	rest.RegisterRoutes(a, r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func bech32Addr(addr sdk.AccAddress) string {
	return funcs.Must(sdk.Bech32ifyAddressBytes(app.AccountAddressPrefix, addr))
}

func post(t *testing.T, server *httptest.Server, route string, body interface{}) (int, []byte) {
	bz := funcs.Must(json.Marshal(body))
	res := funcs.Must(http.Post(server.URL+route, "application/json", bytes.NewReader(bz)))
	defer res.Body.Close()

	var out bytes.Buffer
	funcs.Must(out.ReadFrom(res.Body))
	return res.StatusCode, out.Bytes()
}

func get(t *testing.T, server *httptest.Server, route string) (int, []byte) {
	res := funcs.Must(http.Get(server.URL + route))
	defer res.Body.Close()

	var out bytes.Buffer
	funcs.Must(out.ReadFrom(res.Body))
	return res.StatusCode, out.Bytes()
}

func txReq(sender sdk.AccAddress, msg string) rest.TxReq {
	return rest.TxReq{Sender: bech32Addr(sender), Msg: json.RawMessage(msg)}
}

func TestRoutes(t *testing.T) {
	server := setup(t)
	sender := rand.AccAddr()
	admin := rand.AccAddr()

	status, _ := get(t, server, rest.RouteConfig)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := post(t, server, rest.RouteInstantiate, txReq(sender, fmt.Sprintf(`{"admin_address":%q}`, bech32Addr(admin))))
	assert.Equal(t, http.StatusOK, status, string(body))

	var res types.TxResult
	assert.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, types.AttributeValueInstantiate, res.Action)

	status, _ = post(t, server, rest.RouteInstantiate, txReq(sender, fmt.Sprintf(`{"admin_address":%q}`, bech32Addr(admin))))
	assert.Equal(t, http.StatusConflict, status)

	status, body = post(t, server, rest.RouteExecute, txReq(sender, `{"create_poll":{"question":"Do you love X?"}}`))
	assert.Equal(t, http.StatusOK, status, string(body))

	status, _ = post(t, server, rest.RouteExecute, txReq(sender, `{"create_poll":{"question":"Do you love X?"}}`))
	assert.Equal(t, http.StatusConflict, status)

	status, _ = post(t, server, rest.RouteExecute, txReq(sender, `{"vote":{"question":"Do you love X?","choice":"yes"}}`))
	assert.Equal(t, http.StatusOK, status)

	status, body = post(t, server, rest.RouteExecute, txReq(sender, `{"vote":{"question":"Do you love X?","choice":"maybe"}}`))
	assert.Equal(t, http.StatusBadRequest, status)

	var errRes rest.ErrorResponse
	assert.NoError(t, json.Unmarshal(body, &errRes))
	assert.Equal(t, types.ModuleName, errRes.Codespace)
	assert.Equal(t, types.ErrInvalidChoice.ABCICode(), errRes.Code)

	status, _ = post(t, server, rest.RouteExecute, txReq(sender, `{"vote":{"question":"Do you hate X?","choice":"yes"}}`))
	assert.Equal(t, http.StatusNotFound, status)

	status, body = get(t, server, "/polls/"+url.PathEscape("Do you love X?"))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"poll":{"question":"Do you love X?","yes_votes":1,"no_votes":0}}`, string(body))

	status, body = get(t, server, "/polls/"+url.PathEscape("Do you hate X?"))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"poll":null}`, string(body))

	status, body = get(t, server, rest.RoutePolls)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"polls":[{"question":"Do you love X?","yes_votes":1,"no_votes":0}]}`, string(body))

	status, body = post(t, server, rest.RouteQuery, json.RawMessage(`{"poll":{"question":"Do you love X?"}}`))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"poll":{"question":"Do you love X?","yes_votes":1,"no_votes":0}}`, string(body))
}

func TestRoutes_QuestionWithSlash(t *testing.T) {
	server := setup(t)
	sender := rand.AccAddr()

	status, body := post(t, server, rest.RouteInstantiate, txReq(sender, fmt.Sprintf(`{"admin_address":%q}`, bech32Addr(rand.AccAddr()))))
	assert.Equal(t, http.StatusOK, status, string(body))

	status, body = post(t, server, rest.RouteExecute, txReq(sender, `{"create_poll":{"question":"Is a/b better than c/d?"}}`))
	assert.Equal(t, http.StatusOK, status, string(body))

	status, body = get(t, server, "/polls/"+url.PathEscape("Is a/b better than c/d?"))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"poll":{"question":"Is a/b better than c/d?","yes_votes":0,"no_votes":0}}`, string(body))

	status, body = get(t, server, "/polls/Is%20a/b%20better%20than%20c/d%3F")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"poll":{"question":"Is a/b better than c/d?","yes_votes":0,"no_votes":0}}`, string(body))
}

func TestTxHandler_InvalidRequests(t *testing.T) {
	server := setup(t)

	status, _ := post(t, server, rest.RouteExecute, rest.TxReq{Sender: "nobody", Msg: json.RawMessage(`{}`)})
	assert.Equal(t, http.StatusBadRequest, status)

	res := funcs.Must(http.Post(server.URL+rest.RouteExecute, "application/json", bytes.NewReader([]byte("not json"))))
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	status, _ = post(t, server, rest.RouteExecute, txReq(rand.AccAddr(), `{"create_poll":{"question":"a"},"vote":{"question":"a","choice":"yes"}}`))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, server, rest.RouteExecute)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
