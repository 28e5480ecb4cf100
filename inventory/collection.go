package inventory

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

type Collection struct {
	Id        uint256.Int
	Kind      Kind
	Creator   uuid.UUID
	CreatedAt time.Time
}

// CreateCollection declares id and announces its URI. Declaring again,
// or after a mint declared it implicitly, keeps the first record and
// announces the URI once more.
func (l *Ledger) CreateCollection(ctx context.Context, sender uuid.UUID, id uint256.Int) error {
	return l.execute(ctx, "CreateCollection", func(ctx context.Context, s *session) error {
		err := l.checkCreator(sender)
		if err != nil {
			return err
		}
		if l.codec.Classify(id) == KindNonFungibleToken {
			return ledgerError(ErrorNotACollection, "%s is a token id", id.Hex())
		}
		err = l.ensureCollection(s, sender, id)
		if err != nil {
			return err
		}
		e := &Event{
			Type:     EventURI,
			Operator: sender,
			Ids:      []uint256.Int{id},
		}
		if l.uris != nil {
			e.URI = l.uris.URI(id)
		}
		s.emit(e)
		return nil
	})
}

func (l *Ledger) CollectionExists(ctx context.Context, id uint256.Int) (bool, error) {
	c, err := l.ReadCollection(ctx, id)
	return c != nil, err
}

func (l *Ledger) ReadCollection(ctx context.Context, id uint256.Int) (*Collection, error) {
	var c *Collection
	err := l.view(ctx, func(txn StoreTxn) error {
		var err error
		c, err = txn.ReadCollection(id)
		return err
	})
	return c, err
}

func (l *Ledger) IsFungible(id uint256.Int) bool {
	return l.codec.IsFungible(id)
}

func (l *Ledger) CollectionOf(id uint256.Int) uint256.Int {
	return l.codec.CollectionOf(id)
}

// ensureCollection declares the collection of id on first mint without a
// URI event, an existing declaration is left untouched.
func (l *Ledger) ensureCollection(s *session, sender uuid.UUID, id uint256.Int) error {
	coll := l.codec.CollectionOf(id)
	old, err := s.txn.ReadCollection(coll)
	if err != nil || old != nil {
		return err
	}
	return l.declare(s, sender, coll)
}

func (l *Ledger) declare(s *session, sender uuid.UUID, id uint256.Int) error {
	c := &Collection{
		Id:        id,
		Kind:      l.codec.Classify(id),
		Creator:   sender,
		CreatedAt: time.Now(),
	}
	return s.txn.WriteCollection(c)
}

func (l *Ledger) checkCreator(sender uuid.UUID) error {
	if l.creator == uuid.Nil || sender == l.creator {
		return nil
	}
	return ledgerError(ErrorUnauthorized, "%s is not the inventory creator", sender)
}
