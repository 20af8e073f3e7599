package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the codec used to persist records and encode messages of the module
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the module's concrete types on the given codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterInterface((*Msg)(nil), nil)
	cdc.RegisterConcrete(&InstantiateRequest{}, "poll/Instantiate", nil)
	cdc.RegisterConcrete(&CreatePollRequest{}, "poll/CreatePoll", nil)
	cdc.RegisterConcrete(&VoteRequest{}, "poll/Vote", nil)
}
