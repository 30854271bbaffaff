package poller_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/auctionward/auctiond/pkg/poller"
	"github.com/stretchr/testify/require"
)

type mockTarget struct {
	mutex     sync.Mutex
	pending   []string
	performed []string
	checkErr  error
}

func (m *mockTarget) Check(_ context.Context) ([]string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.checkErr != nil {
		return nil, m.checkErr
	}
	ids := m.pending
	m.pending = nil
	return ids, nil
}

func (m *mockTarget) Perform(_ context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.performed = append(m.performed, id)
	return nil
}

func (m *mockTarget) performedIds() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]string{}, m.performed...)
}

func TestPollerPerformsPendingWork(t *testing.T) {
	target := &mockTarget{pending: []string{"asset1", "asset2"}}
	svc := poller.NewService(poller.Opts{
		Target:                 target,
		IntervalInMilliseconds: 10,
		ErrorHandler:           func(err error) {},
	})

	go svc.Start()
	time.Sleep(100 * time.Millisecond)
	svc.Stop()

	require.ElementsMatch(t, []string{"asset1", "asset2"}, target.performedIds())
}

func TestPollerReportsScanErrors(t *testing.T) {
	target := &mockTarget{checkErr: errors.New("scan failed")}

	var mutex sync.Mutex
	var seen []error
	svc := poller.NewService(poller.Opts{
		Target:                 target,
		IntervalInMilliseconds: 10,
		ErrorHandler: func(err error) {
			mutex.Lock()
			defer mutex.Unlock()
			seen = append(seen, err)
		},
	})

	go svc.Start()
	time.Sleep(100 * time.Millisecond)
	svc.Stop()
	time.Sleep(20 * time.Millisecond)

	mutex.Lock()
	defer mutex.Unlock()
	require.NotEmpty(t, seen)
}
