package rest

import (
	"strconv"
	"sync/atomic"
	"time"
)

// nonceCounter issues strictly increasing nonces. Seeding from the
// wall clock in microseconds keeps nonces increasing across process
// restarts for the same key pair.
type nonceCounter struct {
	last atomic.Int64
}

func newNonceCounter() *nonceCounter {
	n := &nonceCounter{}
	n.last.Store(time.Now().UnixMicro())
	return n
}

func (n *nonceCounter) Next() string {
	return strconv.FormatInt(n.last.Add(1), 10)
}
