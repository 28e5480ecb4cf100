package inventory

import (
	"context"

	"github.com/gofrs/uuid"
)

// SetApprovalForAll grants or revokes operator over every asset of owner,
// fungible and non-fungible alike.
func (l *Ledger) SetApprovalForAll(ctx context.Context, owner, operator uuid.UUID, approved bool) error {
	return l.execute(ctx, "SetApprovalForAll", func(ctx context.Context, s *session) error {
		if owner == uuid.Nil || operator == uuid.Nil {
			return ledgerError(ErrorInvalidOwner, "approval with the null address")
		}
		if operator == owner {
			return ledgerError(ErrorSelfApproval, "%s can not approve itself", owner)
		}
		err := s.txn.WriteApproval(owner, operator, approved)
		if err != nil {
			return err
		}
		s.emit(&Event{
			Type:     EventApprovalForAll,
			Operator: operator,
			From:     owner,
			Approved: approved,
		})
		return nil
	})
}

func (l *Ledger) IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error) {
	var approved bool
	err := l.view(ctx, func(txn StoreTxn) error {
		var err error
		approved, err = txn.ReadApproval(owner, operator)
		return err
	})
	return approved, err
}

func (l *Ledger) isAuthorized(txn StoreTxn, owner, sender uuid.UUID) (bool, error) {
	if sender == owner {
		return true, nil
	}
	return txn.ReadApproval(owner, sender)
}
