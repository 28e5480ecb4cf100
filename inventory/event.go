package inventory

import (
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/mixin/crypto"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

const (
	EventTransferSingle = 10
	EventTransferBatch  = 11
	EventApprovalForAll = 12
	EventURI            = 13
)

// Event is the observable record of a committed request. For
// ApprovalForAll the owner is carried in From and the operator in Operator.
type Event struct {
	Sequence  uint64
	TraceId   string
	Hash      crypto.Hash
	Type      int
	Operator  uuid.UUID
	From      uuid.UUID
	To        uuid.UUID
	Ids       []uint256.Int
	Values    []uint256.Int
	Approved  bool
	URI       string
	CreatedAt time.Time
}

// Delta is one asset movement of a transfer event. Mints come from and
// burns go to the null address.
type Delta struct {
	Id     uint256.Int
	Kind   Kind
	From   uuid.UUID
	To     uuid.UUID
	Amount uint256.Int
}

func (e *Event) TypeName() string {
	switch e.Type {
	case EventTransferSingle:
		return "TransferSingle"
	case EventTransferBatch:
		return "TransferBatch"
	case EventApprovalForAll:
		return "ApprovalForAll"
	case EventURI:
		return "URI"
	}
	panic(e.Type)
}

func (e *Event) Deltas(codec Codec) []*Delta {
	if e.Type != EventTransferSingle && e.Type != EventTransferBatch {
		return nil
	}
	deltas := make([]*Delta, len(e.Ids))
	for i, id := range e.Ids {
		deltas[i] = &Delta{
			Id:     id,
			Kind:   codec.Classify(id),
			From:   e.From,
			To:     e.To,
			Amount: e.Values[i],
		}
	}
	return deltas
}

func (e *Event) String() string {
	return fmt.Sprintf("%s#%d(%s %s -> %s %d items)", e.TypeName(), e.Sequence, e.Operator, e.From, e.To, len(e.Ids))
}

func (e *Event) seal(seq uint64, ts time.Time) {
	e.Sequence = seq
	e.CreatedAt = ts
	e.TraceId = mixin.UniqueConversationID(e.Operator.String(), fmt.Sprintf("EVENT:%d", seq))
	e.Hash = crypto.Hash{}
	e.Hash = crypto.NewHash(common.MsgpackMarshalPanic(e))
}

func newTransferEvent(operator, from, to uuid.UUID, ids, values []uint256.Int, batch bool) *Event {
	e := &Event{
		Type:     EventTransferSingle,
		Operator: operator,
		From:     from,
		To:       to,
		Ids:      append([]uint256.Int{}, ids...),
		Values:   append([]uint256.Int{}, values...),
	}
	if batch {
		e.Type = EventTransferBatch
	}
	return e
}
