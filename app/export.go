package app

import (
	"github.com/pkg/errors"

	pollTypes "github.com/axelarnetwork/polls/x/poll/types"
)

// InitGenesis writes genState into an empty store and commits it as the first version
func (app *App) InitGenesis(genState *pollTypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if height := app.LastBlockHeight(); height != 0 {
		return errors.Errorf("cannot import genesis into a store at height %d", height)
	}

	cache := app.cms.CacheMultiStore()
	app.keeper.InitGenesis(app.newContext(cache), genState)
	cache.Write()

	commitID := app.cms.Commit()
	app.logger.Info("imported genesis", "polls", len(genState.Polls), "height", commitID.Version)

	return nil
}

// ExportGenesis returns the latest committed state of the application
func (app *App) ExportGenesis() *pollTypes.GenesisState {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.keeper.ExportGenesis(app.newContext(app.cms.CacheMultiStore()))
}
