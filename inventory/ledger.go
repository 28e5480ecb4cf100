package inventory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/gofrs/uuid"
)

const indexBitsStorePropertyKey = "INVENTORY:CODEC:INDEX-BITS"

// Ledger is the hybrid inventory. Mutating requests are serialized and
// each runs inside a single store transaction that either commits as a
// whole or is discarded.
type Ledger struct {
	sync.Mutex
	store     Store
	codec     Codec
	clock     *Clock
	uris      URIResolver
	creator   uuid.UUID
	listeners []Listener

	contractsLock sync.RWMutex
	contracts     map[uuid.UUID]any
	callouts      atomic.Int32
}

func BuildLedger(ctx context.Context, store Store, conf *Configuration, uris URIResolver) (*Ledger, error) {
	err := conf.Validate()
	if err != nil {
		return nil, err
	}
	codec, err := NewCodec(conf.Inventory.IndexBits)
	if err != nil {
		return nil, err
	}
	err = checkIndexBits(store, codec.IndexBits())
	if err != nil {
		return nil, err
	}
	clock, err := NewClock(store)
	if err != nil {
		return nil, err
	}
	return &Ledger{
		store:     store,
		codec:     codec,
		clock:     clock,
		uris:      uris,
		creator:   conf.CreatorId(),
		contracts: make(map[uuid.UUID]any),
	}, nil
}

func checkIndexBits(store Store, bits uint) error {
	key := []byte(indexBitsStorePropertyKey)
	val, err := store.ReadProperty(key)
	if err != nil {
		return err
	}
	if len(val) == 0 {
		return store.WriteProperty(key, []byte(strconv.FormatUint(uint64(bits), 10)))
	}
	old, err := strconv.ParseUint(string(val), 10, 64)
	if err != nil {
		return err
	}
	if uint(old) != bits {
		return fmt.Errorf("index bits fixed at %d, configured %d", old, bits)
	}
	return nil
}

func (l *Ledger) Codec() Codec {
	return l.codec
}

func (l *Ledger) AddListener(lsn Listener) {
	l.Lock()
	defer l.Unlock()
	l.listeners = append(l.listeners, lsn)
}

// RegisterContract marks addr as a contract account. The code may
// implement Receiver and BatchReceiver to accept incoming transfers.
func (l *Ledger) RegisterContract(addr uuid.UUID, code any) error {
	if addr == uuid.Nil {
		return ledgerError(ErrorInvalidOwner, "contract at the null address")
	}
	l.contractsLock.Lock()
	defer l.contractsLock.Unlock()
	if _, ok := l.contracts[addr]; ok {
		return ledgerError(ErrorAlreadyExists, "contract %s already registered", addr)
	}
	l.contracts[addr] = code
	return nil
}

func (l *Ledger) contractOf(addr uuid.UUID) (any, bool) {
	l.contractsLock.RLock()
	defer l.contractsLock.RUnlock()
	code, ok := l.contracts[addr]
	return code, ok
}

type sessionKey struct{}

// session is the in-flight request. Reentrant calls made with its context
// join it instead of starting a new request.
type session struct {
	ledger *Ledger
	txn    StoreTxn
	events []*Event
}

func (l *Ledger) sessionFrom(ctx context.Context) *session {
	s, _ := ctx.Value(sessionKey{}).(*session)
	if s == nil || s.ledger != l {
		return nil
	}
	return s
}

func (l *Ledger) view(ctx context.Context, fn func(txn StoreTxn) error) error {
	if s := l.sessionFrom(ctx); s != nil {
		return fn(s.txn)
	}
	txn := l.store.BeginTransaction(false)
	defer txn.Discard()
	return fn(txn)
}

func (l *Ledger) execute(ctx context.Context, name string, fn func(ctx context.Context, s *session) error) error {
	if s := l.sessionFrom(ctx); s != nil {
		return s.nest(ctx, fn)
	}
	if l.callouts.Load() > 0 {
		return ledgerError(ErrorReentrantCall, "%s outside the pending request", name)
	}

	events, listeners, err := l.commit(ctx, fn)
	if err != nil {
		logger.Verbosef("Ledger.%s() => %v\n", name, err)
		return err
	}
	for _, e := range events {
		logger.Verbosef("Ledger.%s() => %s\n", name, e)
		for _, lsn := range listeners {
			lsn.ProcessEvent(ctx, e)
		}
	}
	return nil
}

func (l *Ledger) commit(ctx context.Context, fn func(ctx context.Context, s *session) error) ([]*Event, []Listener, error) {
	l.Lock()
	defer l.Unlock()

	txn := l.store.BeginTransaction(true)
	defer txn.Discard()

	s := &session{ledger: l, txn: txn}
	err := fn(context.WithValue(ctx, sessionKey{}, s), s)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range s.events {
		seq, err := txn.NextEventSequence()
		if err != nil {
			return nil, nil, err
		}
		ts, err := l.clock.Now()
		if err != nil {
			return nil, nil, err
		}
		e.seal(seq, ts)
		err = txn.WriteEvent(e)
		if err != nil {
			return nil, nil, err
		}
	}
	err = txn.Commit()
	if err != nil {
		return nil, nil, err
	}
	return s.events, append([]Listener{}, l.listeners...), nil
}

func (s *session) nest(ctx context.Context, fn func(ctx context.Context, s *session) error) error {
	sp, n := s.txn.Savepoint(), len(s.events)
	err := fn(ctx, s)
	if err == nil {
		return nil
	}
	s.events = s.events[:n]
	if rerr := s.txn.RollbackTo(sp); rerr != nil {
		panic(rerr)
	}
	return err
}

func (s *session) emit(e *Event) {
	s.events = append(s.events, e)
}
