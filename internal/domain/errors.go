package domain

import "errors"

var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInsufficientQuantity   = errors.New("insufficient quantity")
	ErrCargoFull              = errors.New("cargo capacity exceeded")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrCreditCapacityExceeded = errors.New("credit capacity exceeded")
	ErrSameCity               = errors.New("already in this city")
	ErrUnknownCity            = errors.New("unknown city")
	ErrUnknownGood            = errors.New("unknown good")
	ErrUnknownAsset           = errors.New("unknown asset")
	ErrUnknownLot             = errors.New("unknown lot")
	ErrNoActiveLoan           = errors.New("no active loan")
	ErrSchemaVersionMismatch  = errors.New("savegame schema version mismatch")
	ErrCorruptSave            = errors.New("corrupt savegame")
)
