/*
Package app hosts the poll module. It owns the persistent multistore, supplies the chain metadata every transition
sees and commits a new version for every successful transition.
*/
package app

import (
	"path/filepath"
	"sync"
	"time"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	pruningtypes "github.com/cosmos/cosmos-sdk/store/pruning/types"
	"github.com/cosmos/cosmos-sdk/store/rootmulti"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/polls/x/poll"
	pollKeeper "github.com/axelarnetwork/polls/x/poll/keeper"
	pollTypes "github.com/axelarnetwork/polls/x/poll/types"
)

// Name is the name of the application and its database
const Name = "polls"

// App is the hosting runtime of the poll module.
// Transitions are serialized, every transition either commits completely or leaves no trace.
type App struct {
	mu sync.RWMutex

	db      dbm.DB
	cms     storetypes.CommitMultiStore
	logger  log.Logger
	chainID string
	now     func() time.Time

	keys      map[string]*storetypes.KVStoreKey
	addresses pollTypes.AddressValidator
	keeper    pollKeeper.Keeper
	handler   pollTypes.Handler
	querier   pollKeeper.LegacyQuerier
}

// OpenDB opens the database configured by conf under the given home directory
func OpenDB(home string, conf Config) (dbm.DB, error) {
	db, err := dbm.NewDB(Name, dbm.BackendType(conf.DBBackend), filepath.Join(home, conf.DBDir))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", conf.DBBackend)
	}

	return db, nil
}

// NewApp loads the latest committed state from db and returns a runtime ready to process transitions
func NewApp(db dbm.DB, logger log.Logger, conf Config) (*App, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	keys := CreateStoreKeys()

	cms := rootmulti.NewStore(db, logger)
	cms.SetPruning(pruningtypes.NewPruningOptionsFromString(conf.Pruning))
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}

	if err := cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "failed to load latest state")
	}

	addresses := pollTypes.NewBech32AddressValidator(conf.Bech32Prefix)
	keeper := pollKeeper.NewKeeper(pollTypes.ModuleCdc, keys[pollTypes.StoreKey], addresses)

	app := &App{
		db:      db,
		cms:     cms,
		logger:  logger.With("module", "app"),
		chainID: conf.ChainID,
		now:     func() time.Time { return time.Now().UTC() },

		keys:      keys,
		addresses: addresses,
		keeper:    keeper,
		handler:   poll.NewHandler(keeper),
		querier:   pollKeeper.NewQuerier(keeper),
	}

	app.logger.Info("loaded state", "chain_id", app.chainID, "height", app.LastBlockHeight())

	return app, nil
}

// CreateStoreKeys returns the store keys of all mounted modules
func CreateStoreKeys() map[string]*storetypes.KVStoreKey {
	return sdk.NewKVStoreKeys(pollTypes.StoreKey)
}

// Addresses returns the validator used to parse account addresses
func (app *App) Addresses() pollTypes.AddressValidator {
	return app.addresses
}

// LastBlockHeight returns the height of the last committed transition
func (app *App) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// Execute runs msg against the latest state and commits the result if the transition succeeds
func (app *App) Execute(msg pollTypes.Msg) (pollTypes.TxResult, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache)

	res, err := app.handler(ctx, msg)
	if err != nil {
		return pollTypes.TxResult{}, err
	}

	cache.Write()
	commitID := app.cms.Commit()

	app.logger.Info("committed transition", "action", msg.Type(), "height", commitID.Version)

	return pollTypes.TxResult{
		Height: commitID.Version,
		Action: msg.Type(),
		Data:   res.Data,
		Events: res.Events,
	}, nil
}

// InstantiateJSON parses a JSON instantiation message from sender and executes it
func (app *App) InstantiateJSON(bz []byte, sender sdk.AccAddress) (pollTypes.TxResult, error) {
	msg, err := pollTypes.ParseInstantiateMsg(bz, sender)
	if err != nil {
		return pollTypes.TxResult{}, err
	}

	return app.Execute(msg)
}

// ExecuteJSON parses a JSON execute message from sender and executes it
func (app *App) ExecuteJSON(bz []byte, sender sdk.AccAddress) (pollTypes.TxResult, error) {
	msg, err := pollTypes.ParseExecuteMsg(bz, sender)
	if err != nil {
		return pollTypes.TxResult{}, err
	}

	return app.Execute(msg)
}

// Query resolves path against the latest committed state and returns the JSON encoded result
func (app *App) Query(path ...string) ([]byte, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.querier(app.newContext(app.cms.CacheMultiStore()), path)
}

// QueryJSON parses a JSON query message and resolves it against the latest committed state
func (app *App) QueryJSON(bz []byte) ([]byte, error) {
	path, err := pollTypes.ParseQueryMsg(bz)
	if err != nil {
		return nil, err
	}

	return app.Query(path...)
}

// Close releases the underlying database
func (app *App) Close() error {
	return app.db.Close()
}

// newContext returns a context for the block following the last committed one
func (app *App) newContext(ms storetypes.MultiStore) sdk.Context {
	header := tmproto.Header{
		ChainID: app.chainID,
		Height:  app.LastBlockHeight() + 1,
		Time:    app.now(),
	}

	return sdk.NewContext(ms, header, false, app.logger)
}
