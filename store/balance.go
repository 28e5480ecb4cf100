package store

import (
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

const (
	prefixFungibleBalance = "LEDGER:FUNGIBLE:BALANCE:"
	prefixTokenOwner      = "LEDGER:TOKEN:OWNER:"
	prefixCollectionCount = "LEDGER:COLLECTION:COUNT:"
)

func (t *Txn) ReadFungibleBalance(owner uuid.UUID, collection uint256.Int) (uint256.Int, error) {
	var bal uint256.Int
	key := buildKey(prefixFungibleBalance, userBytes(owner), idBytes(collection))
	val, err := t.get(key)
	if err != nil || val == nil {
		return bal, err
	}
	bal.SetBytes32(val)
	return bal, nil
}

func (t *Txn) WriteFungibleBalance(owner uuid.UUID, collection uint256.Int, amount uint256.Int) error {
	key := buildKey(prefixFungibleBalance, userBytes(owner), idBytes(collection))
	if amount.IsZero() {
		return t.delete(key)
	}
	return t.set(key, idBytes(amount))
}

func (t *Txn) ReadTokenOwner(token uint256.Int) (uuid.UUID, error) {
	key := buildKey(prefixTokenOwner, idBytes(token))
	val, err := t.get(key)
	if err != nil || val == nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(val)
}

// WriteTokenOwner removes the ownership entry when owner is the nil id.
func (t *Txn) WriteTokenOwner(token uint256.Int, owner uuid.UUID) error {
	key := buildKey(prefixTokenOwner, idBytes(token))
	if owner == uuid.Nil {
		return t.delete(key)
	}
	return t.set(key, userBytes(owner))
}

func (t *Txn) ReadCollectionCount(owner uuid.UUID, collection uint256.Int) (uint64, error) {
	key := buildKey(prefixCollectionCount, userBytes(owner), idBytes(collection))
	val, err := t.get(key)
	if err != nil || val == nil {
		return 0, err
	}
	return bytesToUint64(val), nil
}

func (t *Txn) WriteCollectionCount(owner uuid.UUID, collection uint256.Int, count uint64) error {
	key := buildKey(prefixCollectionCount, userBytes(owner), idBytes(collection))
	if count == 0 {
		return t.delete(key)
	}
	return t.set(key, uint64ToBytes(count))
}
