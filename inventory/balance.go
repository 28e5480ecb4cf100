package inventory

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

var tokenSupply = *uint256.NewInt(1)

func (l *Ledger) BalanceOf(ctx context.Context, owner uuid.UUID, id uint256.Int) (uint256.Int, error) {
	var bal uint256.Int
	err := l.view(ctx, func(txn StoreTxn) error {
		var err error
		bal, err = l.balanceOf(txn, owner, id)
		return err
	})
	return bal, err
}

func (l *Ledger) BalanceOfBatch(ctx context.Context, owners []uuid.UUID, ids []uint256.Int) ([]uint256.Int, error) {
	if len(owners) != len(ids) {
		return nil, ledgerError(ErrorLengthMismatch, "%d owners for %d ids", len(owners), len(ids))
	}
	balances := make([]uint256.Int, len(ids))
	err := l.view(ctx, func(txn StoreTxn) error {
		for i := range ids {
			bal, err := l.balanceOf(txn, owners[i], ids[i])
			if err != nil {
				return err
			}
			balances[i] = bal
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balances, nil
}

func (l *Ledger) OwnerOf(ctx context.Context, id uint256.Int) (uuid.UUID, error) {
	if l.codec.Classify(id) != KindNonFungibleToken {
		return uuid.Nil, ledgerError(ErrorNotATokenId, "%s is not a token id", id.Hex())
	}
	var owner uuid.UUID
	err := l.view(ctx, func(txn StoreTxn) error {
		var err error
		owner, err = txn.ReadTokenOwner(id)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	if owner == uuid.Nil {
		return uuid.Nil, ledgerError(ErrorTokenNotFound, "token %s not found", id.Hex())
	}
	return owner, nil
}

func (l *Ledger) balanceOf(txn StoreTxn, owner uuid.UUID, id uint256.Int) (uint256.Int, error) {
	if owner == uuid.Nil {
		return uint256.Int{}, ledgerError(ErrorInvalidOwner, "balance of the null address")
	}
	switch l.codec.Classify(id) {
	case KindFungible:
		return txn.ReadFungibleBalance(owner, id)
	case KindNonFungibleCollection:
		count, err := txn.ReadCollectionCount(owner, id)
		return *uint256.NewInt(count), err
	case KindNonFungibleToken:
		current, err := txn.ReadTokenOwner(id)
		if err != nil || current != owner {
			return uint256.Int{}, err
		}
		return tokenSupply, nil
	}
	panic(id.Hex())
}

func (l *Ledger) MintFungible(ctx context.Context, sender, to uuid.UUID, collection uint256.Int, amount uint256.Int) error {
	return l.execute(ctx, "MintFungible", func(ctx context.Context, s *session) error {
		err := l.checkMint(sender, to)
		if err != nil {
			return err
		}
		err = l.mintFungible(s, sender, to, collection, amount)
		if err != nil {
			return err
		}
		s.emit(newTransferEvent(sender, uuid.Nil, to, []uint256.Int{collection}, []uint256.Int{amount}, false))
		return nil
	})
}

func (l *Ledger) MintNonFungible(ctx context.Context, sender, to uuid.UUID, token uint256.Int) error {
	return l.execute(ctx, "MintNonFungible", func(ctx context.Context, s *session) error {
		err := l.checkMint(sender, to)
		if err != nil {
			return err
		}
		err = l.mintNonFungible(s, sender, to, token)
		if err != nil {
			return err
		}
		s.emit(newTransferEvent(sender, uuid.Nil, to, []uint256.Int{token}, []uint256.Int{tokenSupply}, false))
		return nil
	})
}

// BatchMint mints fungible amounts and non-fungible tokens to one owner,
// token ids must come with an amount of exactly one.
func (l *Ledger) BatchMint(ctx context.Context, sender, to uuid.UUID, ids, amounts []uint256.Int) error {
	return l.execute(ctx, "BatchMint", func(ctx context.Context, s *session) error {
		if len(ids) != len(amounts) {
			return ledgerError(ErrorLengthMismatch, "%d ids for %d amounts", len(ids), len(amounts))
		}
		err := l.checkMint(sender, to)
		if err != nil {
			return err
		}
		for i, id := range ids {
			switch l.codec.Classify(id) {
			case KindFungible:
				err = l.mintFungible(s, sender, to, id, amounts[i])
			case KindNonFungibleToken:
				if !amounts[i].Eq(&tokenSupply) {
					return ledgerError(ErrorInvalidSupply, "token %s minted with amount %s", id.Hex(), amounts[i].Dec())
				}
				err = l.mintNonFungible(s, sender, to, id)
			default:
				err = ledgerError(ErrorNotATokenId, "collection %s can not be minted", id.Hex())
			}
			if err != nil {
				return err
			}
		}
		s.emit(newTransferEvent(sender, uuid.Nil, to, ids, amounts, true))
		return nil
	})
}

func (l *Ledger) checkMint(sender, to uuid.UUID) error {
	err := l.checkCreator(sender)
	if err != nil {
		return err
	}
	if to == uuid.Nil {
		return ledgerError(ErrorInvalidOwner, "mint to the null address")
	}
	return nil
}

func (l *Ledger) mintFungible(s *session, sender, to uuid.UUID, collection uint256.Int, amount uint256.Int) error {
	if l.codec.Classify(collection) != KindFungible {
		return ledgerError(ErrorNotFungible, "%s is not a fungible collection", collection.Hex())
	}
	if amount.IsZero() {
		return ledgerError(ErrorInvalidSupply, "mint zero of %s", collection.Hex())
	}
	err := l.ensureCollection(s, sender, collection)
	if err != nil {
		return err
	}
	return l.creditFungible(s.txn, to, collection, amount)
}

func (l *Ledger) mintNonFungible(s *session, sender, to uuid.UUID, token uint256.Int) error {
	if l.codec.Classify(token) != KindNonFungibleToken {
		return ledgerError(ErrorNotATokenId, "%s is not a token id", token.Hex())
	}
	old, err := s.txn.ReadTokenOwner(token)
	if err != nil {
		return err
	} else if old != uuid.Nil {
		return ledgerError(ErrorAlreadyMinted, "token %s already minted", token.Hex())
	}
	err = l.ensureCollection(s, sender, token)
	if err != nil {
		return err
	}
	err = s.txn.WriteTokenOwner(token, to)
	if err != nil {
		return err
	}
	return l.adjustCollectionCount(s.txn, to, token, 1)
}

// applyTransfer moves one item from the owner, a null recipient burns it.
func (l *Ledger) applyTransfer(txn StoreTxn, from, to uuid.UUID, id uint256.Int, amount uint256.Int) error {
	switch l.codec.Classify(id) {
	case KindNonFungibleCollection:
		return ledgerError(ErrorNotTransferable, "collection %s is not transferable", id.Hex())
	case KindNonFungibleToken:
		if !amount.Eq(&tokenSupply) {
			return ledgerError(ErrorInvalidSupply, "token %s moved with amount %s", id.Hex(), amount.Dec())
		}
		owner, err := txn.ReadTokenOwner(id)
		if err != nil {
			return err
		}
		if owner == uuid.Nil {
			return ledgerError(ErrorTokenNotFound, "token %s not found", id.Hex())
		}
		if owner != from {
			return ledgerError(ErrorNotOwner, "token %s not owned by %s", id.Hex(), from)
		}
		err = l.adjustCollectionCount(txn, from, id, -1)
		if err != nil {
			return err
		}
		err = txn.WriteTokenOwner(id, to)
		if err != nil || to == uuid.Nil {
			return err
		}
		return l.adjustCollectionCount(txn, to, id, 1)
	case KindFungible:
		if amount.IsZero() {
			return ledgerError(ErrorInvalidSupply, "move zero of %s", id.Hex())
		}
		bal, err := txn.ReadFungibleBalance(from, id)
		if err != nil {
			return err
		}
		if bal.Lt(&amount) {
			return ledgerError(ErrorInsufficientBalance, "%s holds %s of %s, needs %s", from, bal.Dec(), id.Hex(), amount.Dec())
		}
		bal.Sub(&bal, &amount)
		err = txn.WriteFungibleBalance(from, id, bal)
		if err != nil || to == uuid.Nil {
			return err
		}
		return l.creditFungible(txn, to, id, amount)
	}
	panic(id.Hex())
}

func (l *Ledger) applyBatchTransfer(txn StoreTxn, from, to uuid.UUID, ids, amounts []uint256.Int) error {
	if len(ids) != len(amounts) {
		return ledgerError(ErrorLengthMismatch, "%d ids for %d amounts", len(ids), len(amounts))
	}
	for i := range ids {
		err := l.applyTransfer(txn, from, to, ids[i], amounts[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) creditFungible(txn StoreTxn, to uuid.UUID, collection uint256.Int, amount uint256.Int) error {
	bal, err := txn.ReadFungibleBalance(to, collection)
	if err != nil {
		return err
	}
	_, overflow := bal.AddOverflow(&bal, &amount)
	if overflow {
		return ledgerError(ErrorBalanceOverflow, "balance of %s in %s overflows", to, collection.Hex())
	}
	return txn.WriteFungibleBalance(to, collection, bal)
}

func (l *Ledger) adjustCollectionCount(txn StoreTxn, owner uuid.UUID, token uint256.Int, delta int) error {
	coll := l.codec.CollectionOf(token)
	count, err := txn.ReadCollectionCount(owner, coll)
	if err != nil {
		return err
	}
	if delta < 0 && count < uint64(-delta) {
		panic(owner)
	}
	return txn.WriteCollectionCount(owner, coll, uint64(int64(count)+int64(delta)))
}
