package utils

import (
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"

	"github.com/axelarnetwork/polls/utils/key"
)

// KVStore is a wrapper around the cosmos-sdk KVStore to provide more safety regarding key management and better ease-of-use
type KVStore struct {
	storetypes.KVStore
	cdc *codec.LegacyAmino
}

// NewNormalizedStore returns a new KVStore that encodes values with the given codec
func NewNormalizedStore(store storetypes.KVStore, cdc *codec.LegacyAmino) KVStore {
	return KVStore{
		KVStore: store,
		cdc:     cdc,
	}
}

// Set marshals the value and stores it under the given key
func (store KVStore) Set(key key.Key, value interface{}) {
	store.KVStore.Set(key.Bytes(), store.cdc.MustMarshal(value))
}

// Get unmarshals the raw bytes stored under the given key into the value object. Returns false if the key does not exist.
func (store KVStore) Get(key key.Key, value interface{}) bool {
	bz := store.KVStore.Get(key.Bytes())
	if bz == nil {
		return false
	}

	store.cdc.MustUnmarshal(bz, value)
	return true
}

// Has returns true if the key exists
func (store KVStore) Has(key key.Key) bool {
	return store.KVStore.Has(key.Bytes())
}

// Delete deletes the value stored under the given key, if it exists
func (store KVStore) Delete(key key.Key) {
	store.KVStore.Delete(key.Bytes())
}

// Iterator returns an Iterator over all keys nested under the given prefix.
// The prefix delimiter is part of the scan, so "poll" does not match "polls_x".
func (store KVStore) Iterator(prefix key.Key) Iterator {
	scan := append(prefix.Bytes(), []byte(key.DefaultDelimiter)...)

	return iterator{
		Iterator: storetypes.KVStorePrefixIterator(store.KVStore, scan),
		cdc:      store.cdc,
	}
}

// Iterator is an easier and safer to use sdk.Iterator extension
type Iterator interface {
	storetypes.Iterator
	UnmarshalValue(value interface{})
}

type iterator struct {
	storetypes.Iterator
	cdc *codec.LegacyAmino
}

// UnmarshalValue returns the value marshalled into the given type
func (i iterator) UnmarshalValue(value interface{}) {
	i.cdc.MustUnmarshal(i.Value(), value)
}

// CloseLogError closes the given iterator and logs if an error is returned
func CloseLogError(iter storetypes.Iterator, logger log.Logger) {
	if err := iter.Close(); err != nil {
		logger.Error("failed to close kv store iterator", "error", err)
	}
}
