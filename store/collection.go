package store

import (
	"github.com/MixinNetwork/inventory/inventory"
	"github.com/MixinNetwork/mixin/common"
	"github.com/holiman/uint256"
)

const prefixCollectionPayload = "COLLECTION:PAYLOAD:"

func (t *Txn) ReadCollection(id uint256.Int) (*inventory.Collection, error) {
	key := buildKey(prefixCollectionPayload, idBytes(id))
	val, err := t.get(key)
	if err != nil || val == nil {
		return nil, err
	}
	var c inventory.Collection
	err = common.MsgpackUnmarshal(val, &c)
	return &c, err
}

func (t *Txn) WriteCollection(c *inventory.Collection) error {
	old, err := t.ReadCollection(c.Id)
	if err != nil {
		return err
	} else if old != nil {
		panic(c.Id.Hex())
	}
	key := buildKey(prefixCollectionPayload, idBytes(c.Id))
	return t.set(key, common.MsgpackMarshalPanic(c))
}
