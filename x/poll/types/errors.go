package types

import (
	errorsmod "cosmossdk.io/errors"
)

// module errors
var (
	// Code 1 is a reserved code for internal errors and should not be used for anything else
	_ = errorsmod.Register(ModuleName, 1, "internal error")

	ErrInvalidAddress      = errorsmod.Register(ModuleName, 2, "invalid address")
	ErrDuplicateKey        = errorsmod.Register(ModuleName, 3, "poll already exists")
	ErrPollNotFound        = errorsmod.Register(ModuleName, 4, "poll not found")
	ErrInvalidChoice       = errorsmod.Register(ModuleName, 5, "invalid vote choice")
	ErrNotFound            = errorsmod.Register(ModuleName, 6, "not found")
	ErrInvalidQuestion     = errorsmod.Register(ModuleName, 7, "invalid question")
	ErrAlreadyInstantiated = errorsmod.Register(ModuleName, 8, "already instantiated")
	ErrInvalidMessage      = errorsmod.Register(ModuleName, 9, "invalid message")
	ErrInvalidGenesis      = errorsmod.Register(ModuleName, 10, "invalid genesis state")
)
