package utils

import (
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/go-errors/errors"
)

//go:generate moq -out ./mock/abci.go -pkg mock . Logger

// Logger wraps keepers which expose a Logger method
type Logger interface {
	Logger(ctx sdk.Context) log.Logger
}

// RunCached runs f on a cache-wrapped branch of the given context. The branch is written back only if f succeeds,
// so a failing or panicking f leaves the parent store untouched. A recovered panic is returned as an error.
func RunCached[T any](c sdk.Context, l Logger, f func(sdk.Context) (T, error)) (result T, err error) {
	cacheStore := c.MultiStore().CacheMultiStore()
	ctx := c.WithMultiStore(cacheStore)

	defer func() {
		if r := recover(); r != nil {
			l.Logger(ctx).Error(fmt.Sprintf("recovered from panic in cached context: %v", r))
			l.Logger(ctx).Error(string(errors.Wrap(r, 1).Stack()))

			result, err = *new(T), fmt.Errorf("recovered from panic: %v", r)
		}
	}()

	result, err = f(ctx)
	if err != nil {
		l.Logger(ctx).Debug(fmt.Sprintf("discarding cached context: %s", err.Error()))
		return *new(T), err
	}

	cacheStore.Write()

	return result, nil
}
