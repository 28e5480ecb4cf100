package inventory

import (
	"encoding/binary"
	"sync"
	"time"
)

const clockStorePropertyKey = "INVENTORY:CLOCK:MONOTONIC"

// Clock hands out strictly increasing timestamps that survive restarts.
type Clock struct {
	sync.Mutex
	store Store
	now   time.Time
}

func NewClock(store Store) (*Clock, error) {
	bs, err := store.ReadProperty([]byte(clockStorePropertyKey))
	if err != nil {
		return nil, err
	}
	var ts time.Time
	if len(bs) == 8 {
		ts = time.Unix(0, int64(binary.BigEndian.Uint64(bs)))
	}
	if now := time.Now(); ts.Before(now) {
		ts = now
	}
	clock := new(Clock)
	clock.store = store
	clock.now = ts
	return clock, nil
}

func (c *Clock) Now() (time.Time, error) {
	c.Lock()
	defer c.Unlock()

	now := time.Now()
	if !now.After(c.now) {
		now = c.now.Add(time.Nanosecond)
	}
	val := binary.BigEndian.AppendUint64(nil, uint64(now.UnixNano()))
	err := c.store.WriteProperty([]byte(clockStorePropertyKey), val)
	if err != nil {
		return c.now, err
	}
	c.now = now
	return c.now, nil
}
