package inventory

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

const (
	ReceivedMagic      uint32 = 0xf23a6e61
	BatchReceivedMagic uint32 = 0xbc197c81
)

// Receiver is implemented by contracts accepting single transfers. The
// context joins the pending request, so ledger calls made with it observe
// the transfer as already applied.
type Receiver interface {
	OnReceived(ctx context.Context, operator, from uuid.UUID, id uint256.Int, amount uint256.Int, data []byte) (uint32, error)
}

type BatchReceiver interface {
	OnBatchReceived(ctx context.Context, operator, from uuid.UUID, ids, amounts []uint256.Int, data []byte) (uint32, error)
}

func (l *Ledger) notifyReceived(ctx context.Context, operator, from, to uuid.UUID, id uint256.Int, amount uint256.Int, data []byte) error {
	code, ok := l.contractOf(to)
	if !ok {
		return nil
	}
	r, ok := code.(Receiver)
	if !ok {
		return rejectionError(nil, "contract %s does not accept transfers", to)
	}
	return l.callReceiver(to, ReceivedMagic, func() (uint32, error) {
		return r.OnReceived(ctx, operator, from, id, amount, data)
	})
}

func (l *Ledger) notifyBatchReceived(ctx context.Context, operator, from, to uuid.UUID, ids, amounts []uint256.Int, data []byte) error {
	code, ok := l.contractOf(to)
	if !ok {
		return nil
	}
	r, ok := code.(BatchReceiver)
	if !ok {
		return rejectionError(nil, "contract %s does not accept batch transfers", to)
	}
	ids, amounts = append([]uint256.Int{}, ids...), append([]uint256.Int{}, amounts...)
	return l.callReceiver(to, BatchReceivedMagic, func() (uint32, error) {
		return r.OnBatchReceived(ctx, operator, from, ids, amounts, data)
	})
}

// callReceiver runs the hook with the request lock held. Until it returns
// every mutating call that does not carry the request context is refused,
// it could never acquire the lock.
func (l *Ledger) callReceiver(to uuid.UUID, magic uint32, hook func() (uint32, error)) (err error) {
	l.callouts.Add(1)
	defer l.callouts.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			err = rejectionError(fmt.Errorf("%v", r), "contract %s panicked", to)
		}
	}()

	ret, err := hook()
	if err != nil {
		return rejectionError(err, "contract %s failed", to)
	}
	if ret != magic {
		return rejectionError(nil, "contract %s returned %08x", to, ret)
	}
	return nil
}
