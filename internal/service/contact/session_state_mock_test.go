package contact

import (
	"sync"
)

var _ sessionState = &sessionStateMock{}

type sessionStateMock struct {
	EpochFunc func() uint64
	OwnerFunc func() string

	calls struct {
		Epoch []struct{}
		Owner []struct{}
	}
	lockEpoch sync.RWMutex
	lockOwner sync.RWMutex
}

func (mock *sessionStateMock) Epoch() uint64 {
	if mock.EpochFunc == nil {
		panic("sessionStateMock.EpochFunc: method is nil but sessionState.Epoch was just called")
	}
	mock.lockEpoch.Lock()
	mock.calls.Epoch = append(mock.calls.Epoch, struct{}{})
	mock.lockEpoch.Unlock()
	return mock.EpochFunc()
}

func (mock *sessionStateMock) EpochCalls() []struct{} {
	mock.lockEpoch.RLock()
	calls := mock.calls.Epoch
	mock.lockEpoch.RUnlock()
	return calls
}

func (mock *sessionStateMock) Owner() string {
	if mock.OwnerFunc == nil {
		panic("sessionStateMock.OwnerFunc: method is nil but sessionState.Owner was just called")
	}
	mock.lockOwner.Lock()
	mock.calls.Owner = append(mock.calls.Owner, struct{}{})
	mock.lockOwner.Unlock()
	return mock.OwnerFunc()
}

func (mock *sessionStateMock) OwnerCalls() []struct{} {
	mock.lockOwner.RLock()
	calls := mock.calls.Owner
	mock.lockOwner.RUnlock()
	return calls
}
