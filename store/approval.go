package store

import (
	"github.com/gofrs/uuid"
)

const prefixApproval = "APPROVAL:OPERATOR:"

func (t *Txn) ReadApproval(owner, operator uuid.UUID) (bool, error) {
	key := buildKey(prefixApproval, userBytes(owner), userBytes(operator))
	val, err := t.get(key)
	return len(val) == 1 && val[0] == 1, err
}

func (t *Txn) WriteApproval(owner, operator uuid.UUID, approved bool) error {
	key := buildKey(prefixApproval, userBytes(owner), userBytes(operator))
	if !approved {
		return t.delete(key)
	}
	return t.set(key, []byte{1})
}
