// Package fake provides in-memory stand-ins for the hosting chain in tests.
package fake

import (
	"time"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/store/rootmulti"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/test/rand"
)

// ChainID is the chain id of every fake context
const ChainID = "polls-test"

// NewMultiStore returns a multistore backed by an in-memory database with the given stores mounted
func NewMultiStore(keys ...storetypes.StoreKey) storetypes.CommitMultiStore {
	cms := rootmulti.NewStore(dbm.NewMemDB(), log.NewNopLogger())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	funcs.MustNoErr(cms.LoadLatestVersion())

	return cms
}

// NewContext returns a context over a fresh in-memory multistore with the given stores mounted
func NewContext(keys ...storetypes.StoreKey) sdk.Context {
	header := tmproto.Header{
		ChainID: ChainID,
		Height:  rand.I64Between(1, 1_000_000),
		Time:    time.Now().UTC(),
	}

	return sdk.NewContext(NewMultiStore(keys...), header, false, log.NewNopLogger())
}
