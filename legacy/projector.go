package legacy

import (
	"context"

	"github.com/MixinNetwork/inventory/inventory"
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

// Transfer is the single asset notification re-emitted for a token move.
type Transfer struct {
	Sequence uint64
	TraceId  string
	From     uuid.UUID
	To       uuid.UUID
	TokenId  uint256.Int
}

type Sink interface {
	EmitTransfer(ctx context.Context, t *Transfer)
}

type Reader interface {
	Codec() inventory.Codec
	OwnerOf(ctx context.Context, id uint256.Int) (uuid.UUID, error)
}

// Projector replays committed inventory events in the single asset shape.
// Fungible movements produce nothing.
type Projector struct {
	reader Reader
	sink   Sink
}

func NewProjector(reader Reader, sink Sink) *Projector {
	return &Projector{
		reader: reader,
		sink:   sink,
	}
}

func (p *Projector) ProcessEvent(ctx context.Context, e *inventory.Event) {
	for _, d := range e.Deltas(p.reader.Codec()) {
		if d.Kind != inventory.KindNonFungibleToken {
			continue
		}
		p.sink.EmitTransfer(ctx, &Transfer{
			Sequence: e.Sequence,
			TraceId:  e.TraceId,
			From:     d.From,
			To:       d.To,
			TokenId:  d.Id,
		})
	}
}

func (p *Projector) OwnerOf(ctx context.Context, id uint256.Int) (uuid.UUID, error) {
	return p.reader.OwnerOf(ctx, id)
}
