package sequence

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// MemoryGenerator is a process-local Generator for tests and deployments
// without Redis. Codes are unique within a single process only.
type MemoryGenerator struct {
	order  atomic.Int64
	payout atomic.Int64
	ticket atomic.Int64
}

func NewMemoryGenerator() *MemoryGenerator {
	return &MemoryGenerator{}
}

func (g *MemoryGenerator) NextOrderCode(ctx context.Context) (string, error) {
	return localCode("ORD", g.order.Add(1)), nil
}

func (g *MemoryGenerator) NextPayoutCode(ctx context.Context) (string, error) {
	return localCode("PAY", g.payout.Add(1)), nil
}

func (g *MemoryGenerator) NextTicketCode(ctx context.Context) (string, error) {
	return localCode("TCK", g.ticket.Add(1)), nil
}

func localCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%s-%06d", prefix, time.Now().UTC().Format("060102"), seq)
}
