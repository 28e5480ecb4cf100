package inventory

import (
	"context"

	"github.com/MixinNetwork/mixin/crypto"
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

type Store interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)

	BeginTransaction(update bool) StoreTxn

	ListEvents(offset uint64, limit int) ([]*Event, error)
	ReadEventByHash(hash crypto.Hash) (*Event, error)
}

// StoreTxn is one request worth of reads and writes. Savepoints nest and
// nothing is visible to other transactions before Commit.
type StoreTxn interface {
	Savepoint() int
	RollbackTo(savepoint int) error
	Commit() error
	Discard()

	ReadFungibleBalance(owner uuid.UUID, collection uint256.Int) (uint256.Int, error)
	WriteFungibleBalance(owner uuid.UUID, collection uint256.Int, amount uint256.Int) error

	ReadTokenOwner(token uint256.Int) (uuid.UUID, error)
	WriteTokenOwner(token uint256.Int, owner uuid.UUID) error

	ReadCollectionCount(owner uuid.UUID, collection uint256.Int) (uint64, error)
	WriteCollectionCount(owner uuid.UUID, collection uint256.Int, count uint64) error

	ReadCollection(id uint256.Int) (*Collection, error)
	WriteCollection(c *Collection) error

	ReadApproval(owner, operator uuid.UUID) (bool, error)
	WriteApproval(owner, operator uuid.UUID, approved bool) error

	NextEventSequence() (uint64, error)
	WriteEvent(e *Event) error
}

type Listener interface {
	ProcessEvent(ctx context.Context, e *Event)
}

type URIResolver interface {
	URI(id uint256.Int) string
}
