package inventory

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Failure kinds of the ledger. Beyond the ERC-1155 style taxonomy the
// ledger reports NOT_A_COLLECTION when a token id is declared as a
// collection, NOT_FUNGIBLE when a fungible mint names a non-fungible id,
// and REENTRANT_CALL when a receiver hook mutates the ledger without the
// context it was handed.
const (
	ErrorInvalidOwner        = "INVALID_OWNER"
	ErrorLengthMismatch      = "LENGTH_MISMATCH"
	ErrorNotATokenId         = "NOT_A_TOKEN_ID"
	ErrorNotTransferable     = "NOT_TRANSFERABLE"
	ErrorNotACollection      = "NOT_A_COLLECTION"
	ErrorNotFungible         = "NOT_FUNGIBLE"
	ErrorTokenNotFound       = "TOKEN_NOT_FOUND"
	ErrorAlreadyMinted       = "ALREADY_MINTED"
	ErrorAlreadyExists       = "ALREADY_EXISTS"
	ErrorInvalidSupply       = "INVALID_SUPPLY"
	ErrorInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrorNotOwner            = "NOT_OWNER"
	ErrorUnauthorized        = "UNAUTHORIZED"
	ErrorSelfApproval        = "SELF_APPROVAL"
	ErrorBalanceOverflow     = "BALANCE_OVERFLOW"
	ErrorTransferRejected    = "TRANSFER_REJECTED"
	ErrorReentrantCall       = "REENTRANT_CALL"
)

var errorCategories = map[string]goerrors.Category{
	ErrorInvalidOwner:        goerrors.CategoryBadInput,
	ErrorLengthMismatch:      goerrors.CategoryBadInput,
	ErrorNotATokenId:         goerrors.CategoryBadInput,
	ErrorNotTransferable:     goerrors.CategoryBadInput,
	ErrorNotACollection:      goerrors.CategoryBadInput,
	ErrorNotFungible:         goerrors.CategoryBadInput,
	ErrorTokenNotFound:       goerrors.CategoryNotFound,
	ErrorAlreadyMinted:       goerrors.CategoryConflict,
	ErrorAlreadyExists:       goerrors.CategoryConflict,
	ErrorInvalidSupply:       goerrors.CategoryValidation,
	ErrorInsufficientBalance: goerrors.CategoryOperation,
	ErrorNotOwner:            goerrors.CategoryAuthz,
	ErrorUnauthorized:        goerrors.CategoryAuthz,
	ErrorSelfApproval:        goerrors.CategoryBadInput,
	ErrorBalanceOverflow:     goerrors.CategoryOperation,
	ErrorTransferRejected:    goerrors.CategoryExternal,
	ErrorReentrantCall:       goerrors.CategoryConflict,
}

func ledgerError(code string, format string, args ...any) error {
	category, ok := errorCategories[code]
	if !ok {
		panic(code)
	}
	return goerrors.New(fmt.Sprintf(format, args...), category).
		WithTextCode(code)
}

func rejectionError(source error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if source == nil {
		return ledgerError(ErrorTransferRejected, "%s", msg)
	}
	err := goerrors.Wrap(source, goerrors.CategoryExternal, msg).
		WithTextCode(ErrorTransferRejected)
	err.Category = goerrors.CategoryExternal
	return err
}

// KindOf returns the text code of a ledger failure, or an empty string
// for errors outside the taxonomy such as storage failures.
func KindOf(err error) string {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return ""
	}
	if _, ok := errorCategories[richErr.TextCode]; !ok {
		return ""
	}
	return richErr.TextCode
}

func IsKind(err error, code string) bool {
	return err != nil && KindOf(err) == code
}
