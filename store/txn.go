package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// Txn wraps one badger transaction with an undo journal, every write
// remembers the value it replaced so savepoints can be restored without
// giving up the surrounding transaction.
type Txn struct {
	txn     *badger.Txn
	update  bool
	journal []*undo
}

type undo struct {
	key    []byte
	val    []byte
	exists bool
}

func (t *Txn) Savepoint() int {
	return len(t.journal)
}

func (t *Txn) RollbackTo(savepoint int) error {
	if savepoint < 0 || savepoint > len(t.journal) {
		return fmt.Errorf("invalid savepoint %d/%d", savepoint, len(t.journal))
	}
	for i := len(t.journal) - 1; i >= savepoint; i-- {
		u := t.journal[i]
		var err error
		if u.exists {
			err = t.txn.Set(u.key, u.val)
		} else {
			err = t.txn.Delete(u.key)
		}
		if err != nil {
			return err
		}
	}
	t.journal = t.journal[:savepoint]
	return nil
}

func (t *Txn) Commit() error {
	if !t.update {
		return badger.ErrReadOnlyTxn
	}
	t.journal = nil
	return t.txn.Commit()
}

func (t *Txn) Discard() {
	t.journal = nil
	t.txn.Discard()
}

func (t *Txn) get(key []byte) ([]byte, error) {
	item, err := t.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (t *Txn) set(key, val []byte) error {
	err := t.remember(key)
	if err != nil {
		return err
	}
	return t.txn.Set(key, val)
}

func (t *Txn) delete(key []byte) error {
	err := t.remember(key)
	if err != nil {
		return err
	}
	return t.txn.Delete(key)
}

func (t *Txn) remember(key []byte) error {
	if !t.update {
		return badger.ErrReadOnlyTxn
	}
	u := &undo{key: key}
	item, err := t.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		t.journal = append(t.journal, u)
		return nil
	} else if err != nil {
		return err
	}
	u.val, err = item.ValueCopy(nil)
	if err != nil {
		return err
	}
	u.exists = true
	t.journal = append(t.journal, u)
	return nil
}
