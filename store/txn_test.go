package store

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

func TestTxnSavepoint(t *testing.T) {
	bs, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer bs.Close()

	owner := uuid.Must(uuid.NewV4())
	coll := *uint256.NewInt(7)

	txn := bs.BeginTransaction(true)
	err = txn.WriteFungibleBalance(owner, coll, *uint256.NewInt(100))
	if err != nil {
		t.Fatalf("WriteFungibleBalance failed: %v", err)
	}
	sp := txn.Savepoint()
	err = txn.WriteFungibleBalance(owner, coll, *uint256.NewInt(40))
	if err != nil {
		t.Fatalf("WriteFungibleBalance failed: %v", err)
	}
	err = txn.WriteApproval(owner, uuid.Must(uuid.NewV4()), true)
	if err != nil {
		t.Fatalf("WriteApproval failed: %v", err)
	}
	err = txn.RollbackTo(sp)
	if err != nil {
		t.Fatalf("RollbackTo failed: %v", err)
	}
	bal, err := txn.ReadFungibleBalance(owner, coll)
	if err != nil || bal.Uint64() != 100 {
		t.Fatalf("balance after rollback %s %v", bal.Dec(), err)
	}
	err = txn.RollbackTo(sp + 1)
	if err == nil {
		t.Fatalf("RollbackTo beyond the journal should fail")
	}
	err = txn.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	txn = bs.BeginTransaction(false)
	defer txn.Discard()
	bal, err = txn.ReadFungibleBalance(owner, coll)
	if err != nil || bal.Uint64() != 100 {
		t.Fatalf("committed balance %s %v", bal.Dec(), err)
	}
	err = txn.WriteFungibleBalance(owner, coll, *uint256.NewInt(1))
	if err == nil {
		t.Fatalf("write in a read only transaction should fail")
	}
}

func TestTxnRollbackRestoresDeleted(t *testing.T) {
	bs, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer bs.Close()

	owner := uuid.Must(uuid.NewV4())
	token := *uint256.NewInt(9)

	txn := bs.BeginTransaction(true)
	defer txn.Discard()
	err = txn.WriteTokenOwner(token, owner)
	if err != nil {
		t.Fatalf("WriteTokenOwner failed: %v", err)
	}
	err = txn.WriteCollectionCount(owner, token, 1)
	if err != nil {
		t.Fatalf("WriteCollectionCount failed: %v", err)
	}

	sp := txn.Savepoint()
	err = txn.WriteTokenOwner(token, uuid.Nil)
	if err != nil {
		t.Fatalf("WriteTokenOwner failed: %v", err)
	}
	err = txn.WriteCollectionCount(owner, token, 0)
	if err != nil {
		t.Fatalf("WriteCollectionCount failed: %v", err)
	}
	current, _ := txn.ReadTokenOwner(token)
	if current != uuid.Nil {
		t.Fatalf("token should be removed, owned by %s", current)
	}

	err = txn.RollbackTo(sp)
	if err != nil {
		t.Fatalf("RollbackTo failed: %v", err)
	}
	current, err = txn.ReadTokenOwner(token)
	if err != nil || current != owner {
		t.Fatalf("token owner after rollback %s %v", current, err)
	}
	count, err := txn.ReadCollectionCount(owner, token)
	if err != nil || count != 1 {
		t.Fatalf("collection count after rollback %d %v", count, err)
	}
}

func TestEventSequence(t *testing.T) {
	bs, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer bs.Close()

	txn := bs.BeginTransaction(true)
	for i := uint64(1); i <= 3; i++ {
		seq, err := txn.NextEventSequence()
		if err != nil || seq != i {
			t.Fatalf("NextEventSequence %d %v", seq, err)
		}
	}
	err = txn.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	txn = bs.BeginTransaction(true)
	defer txn.Discard()
	seq, err := txn.NextEventSequence()
	if err != nil || seq != 4 {
		t.Fatalf("NextEventSequence after commit %d %v", seq, err)
	}

	events, err := bs.ListEvents(0, 10)
	if err != nil || len(events) != 0 {
		t.Fatalf("ListEvents %d %v", len(events), err)
	}
}
