package store

import (
	"github.com/MixinNetwork/inventory/inventory"
	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/mixin/crypto"
	"github.com/dgraph-io/badger/v3"
)

const (
	prefixEventPayload = "EVENT:PAYLOAD:"
	prefixEventHash    = "EVENT:HASH:"
	keyEventSequence   = "EVENT:SEQUENCE"
)

func (t *Txn) NextEventSequence() (uint64, error) {
	key := []byte(keyEventSequence)
	val, err := t.get(key)
	if err != nil {
		return 0, err
	}
	var seq uint64
	if val != nil {
		seq = bytesToUint64(val)
	}
	seq = seq + 1
	return seq, t.set(key, uint64ToBytes(seq))
}

func (t *Txn) WriteEvent(e *inventory.Event) error {
	if e.Sequence == 0 || !e.Hash.HasValue() {
		panic(e.Sequence)
	}
	key := buildKey(prefixEventPayload, uint64ToBytes(e.Sequence))
	err := t.set(key, common.MsgpackMarshalPanic(e))
	if err != nil {
		return err
	}
	key = buildKey(prefixEventHash, e.Hash[:])
	return t.set(key, uint64ToBytes(e.Sequence))
}

// ListEvents returns committed events with a sequence above offset.
func (bs *BadgerStore) ListEvents(offset uint64, limit int) ([]*inventory.Event, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefixEventPayload)
	it := txn.NewIterator(opts)
	defer it.Close()

	var events []*inventory.Event
	start := buildKey(prefixEventPayload, uint64ToBytes(offset+1))
	for it.Seek(start); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var e inventory.Event
		err = common.MsgpackUnmarshal(val, &e)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
		if len(events) == limit {
			break
		}
	}
	return events, nil
}

func (bs *BadgerStore) ReadEventByHash(hash crypto.Hash) (*inventory.Event, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	key := buildKey(prefixEventHash, hash[:])
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	seq, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	item, err = txn.Get(buildKey(prefixEventPayload, seq))
	if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var e inventory.Event
	err = common.MsgpackUnmarshal(val, &e)
	return &e, err
}
