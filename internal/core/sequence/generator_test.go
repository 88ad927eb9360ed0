package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/id"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV-000001", Format(PrefixInvoice, 1))
	assert.Equal(t, "PAY-000042", Format(PrefixPayment, 42))
	assert.Equal(t, "INV-1000000", Format(PrefixInvoice, 1000000), "wide counters do not truncate")
}

func TestMock_IndependentCounters(t *testing.T) {
	m := NewMock()
	ctx := context.Background()
	a := id.New()
	b := id.New()

	n1, err := m.Next(ctx, a, PrefixInvoice)
	require.NoError(t, err)
	n2, err := m.Next(ctx, a, PrefixInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", n1)
	assert.Equal(t, "INV-000002", n2)

	// Other agency and other prefix both start from one.
	n3, _ := m.Next(ctx, b, PrefixInvoice)
	n4, _ := m.Next(ctx, a, PrefixPayment)
	assert.Equal(t, "INV-000001", n3)
	assert.Equal(t, "PAY-000001", n4)
}

func TestMock_Concurrent(t *testing.T) {
	m := NewMock()
	agencyID := id.New()
	const n = 50

	var wg sync.WaitGroup
	seen := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := m.Next(context.Background(), agencyID, PrefixInvoice)
			if err == nil {
				seen <- num
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]bool)
	for num := range seen {
		unique[num] = true
	}
	assert.Len(t, unique, n, "no duplicate numbers under concurrency")
}
