package inventory

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

// Transfer moves amount of id from from to to on behalf of sender. When to
// is a contract its acceptance hook runs after the balances are applied
// and a rejection discards the whole request.
func (l *Ledger) Transfer(ctx context.Context, sender, from, to uuid.UUID, id uint256.Int, amount uint256.Int, data []byte) error {
	return l.execute(ctx, "Transfer", func(ctx context.Context, s *session) error {
		err := l.validateTransfer(s.txn, sender, from, to)
		if err != nil {
			return err
		}
		err = l.applyTransfer(s.txn, from, to, id, amount)
		if err != nil {
			return err
		}
		s.emit(newTransferEvent(sender, from, to, []uint256.Int{id}, []uint256.Int{amount}, false))
		return l.notifyReceived(ctx, sender, from, to, id, amount, data)
	})
}

func (l *Ledger) BatchTransfer(ctx context.Context, sender, from, to uuid.UUID, ids, amounts []uint256.Int, data []byte) error {
	return l.execute(ctx, "BatchTransfer", func(ctx context.Context, s *session) error {
		err := l.validateTransfer(s.txn, sender, from, to)
		if err != nil {
			return err
		}
		err = l.applyBatchTransfer(s.txn, from, to, ids, amounts)
		if err != nil {
			return err
		}
		s.emit(newTransferEvent(sender, from, to, ids, amounts, true))
		return l.notifyBatchReceived(ctx, sender, from, to, ids, amounts, data)
	})
}

// Burn destroys amount of id held by from. A token can only be burnt by
// its literal owner or an operator of that owner, anything else is
// NotOwner; fungible burns check the operator relation before the balance.
func (l *Ledger) Burn(ctx context.Context, sender, from uuid.UUID, id uint256.Int, amount uint256.Int) error {
	return l.execute(ctx, "Burn", func(ctx context.Context, s *session) error {
		err := l.burn(s.txn, sender, from, id, amount)
		if err != nil {
			return err
		}
		s.emit(newTransferEvent(sender, from, uuid.Nil, []uint256.Int{id}, []uint256.Int{amount}, false))
		return nil
	})
}

func (l *Ledger) BatchBurn(ctx context.Context, sender, from uuid.UUID, ids, amounts []uint256.Int) error {
	return l.execute(ctx, "BatchBurn", func(ctx context.Context, s *session) error {
		if len(ids) != len(amounts) {
			return ledgerError(ErrorLengthMismatch, "%d ids for %d amounts", len(ids), len(amounts))
		}
		for i := range ids {
			err := l.burn(s.txn, sender, from, ids[i], amounts[i])
			if err != nil {
				return err
			}
		}
		s.emit(newTransferEvent(sender, from, uuid.Nil, ids, amounts, true))
		return nil
	})
}

func (l *Ledger) validateTransfer(txn StoreTxn, sender, from, to uuid.UUID) error {
	if to == uuid.Nil {
		return ledgerError(ErrorInvalidOwner, "transfer to the null address")
	}
	if from == uuid.Nil {
		return ledgerError(ErrorInvalidOwner, "transfer from the null address")
	}
	authorized, err := l.isAuthorized(txn, from, sender)
	if err != nil {
		return err
	}
	if !authorized {
		return ledgerError(ErrorUnauthorized, "%s is not approved by %s", sender, from)
	}
	return nil
}

func (l *Ledger) burn(txn StoreTxn, sender, from uuid.UUID, id uint256.Int, amount uint256.Int) error {
	if from == uuid.Nil {
		return ledgerError(ErrorInvalidOwner, "burn from the null address")
	}
	switch l.codec.Classify(id) {
	case KindNonFungibleToken:
		owner, err := txn.ReadTokenOwner(id)
		if err != nil {
			return err
		}
		if owner != from {
			return ledgerError(ErrorNotOwner, "token %s not owned by %s", id.Hex(), from)
		}
		authorized, err := l.isAuthorized(txn, owner, sender)
		if err != nil {
			return err
		}
		if !authorized {
			return ledgerError(ErrorNotOwner, "token %s not owned by %s", id.Hex(), sender)
		}
	case KindFungible:
		authorized, err := l.isAuthorized(txn, from, sender)
		if err != nil {
			return err
		}
		if !authorized {
			return ledgerError(ErrorUnauthorized, "%s is not approved by %s", sender, from)
		}
	}
	return l.applyTransfer(txn, from, uuid.Nil, id, amount)
}
