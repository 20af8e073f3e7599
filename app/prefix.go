package app

import sdk "github.com/cosmos/cosmos-sdk/types"

// AccountAddressPrefix is the default bech32 prefix of account addresses
var AccountAddressPrefix = "polls"

// SetConfig sets the bech32 account prefix used to render addresses and seals the global sdk config
func SetConfig(prefix string) {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(prefix, prefix+sdk.PrefixPublic)
	config.Seal()
}
