package contact

import (
	"context"
	"sync"

	"github.com/heartmarshall/contactbook/internal/domain"
)

var _ snapshotStore = &snapshotStoreMock{}

type snapshotStoreMock struct {
	LoadActivitiesFunc func(ctx context.Context, owner string) ([]domain.UserActivity, error)
	LoadContactsFunc   func(ctx context.Context, owner string) ([]domain.Contact, error)
	SaveActivitiesFunc func(ctx context.Context, owner string, activities []domain.UserActivity) error
	SaveContactsFunc   func(ctx context.Context, owner string, contacts []domain.Contact) error

	calls struct {
		LoadActivities []struct {
			Ctx   context.Context
			Owner string
		}
		LoadContacts []struct {
			Ctx   context.Context
			Owner string
		}
		SaveActivities []struct {
			Ctx        context.Context
			Owner      string
			Activities []domain.UserActivity
		}
		SaveContacts []struct {
			Ctx      context.Context
			Owner    string
			Contacts []domain.Contact
		}
	}
	lockLoadActivities sync.RWMutex
	lockLoadContacts   sync.RWMutex
	lockSaveActivities sync.RWMutex
	lockSaveContacts   sync.RWMutex
}

func (mock *snapshotStoreMock) LoadActivities(ctx context.Context, owner string) ([]domain.UserActivity, error) {
	if mock.LoadActivitiesFunc == nil {
		panic("snapshotStoreMock.LoadActivitiesFunc: method is nil but snapshotStore.LoadActivities was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner string
	}{Ctx: ctx, Owner: owner}
	mock.lockLoadActivities.Lock()
	mock.calls.LoadActivities = append(mock.calls.LoadActivities, callInfo)
	mock.lockLoadActivities.Unlock()
	return mock.LoadActivitiesFunc(ctx, owner)
}

func (mock *snapshotStoreMock) LoadActivitiesCalls() []struct {
	Ctx   context.Context
	Owner string
} {
	mock.lockLoadActivities.RLock()
	calls := mock.calls.LoadActivities
	mock.lockLoadActivities.RUnlock()
	return calls
}

func (mock *snapshotStoreMock) LoadContacts(ctx context.Context, owner string) ([]domain.Contact, error) {
	if mock.LoadContactsFunc == nil {
		panic("snapshotStoreMock.LoadContactsFunc: method is nil but snapshotStore.LoadContacts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner string
	}{Ctx: ctx, Owner: owner}
	mock.lockLoadContacts.Lock()
	mock.calls.LoadContacts = append(mock.calls.LoadContacts, callInfo)
	mock.lockLoadContacts.Unlock()
	return mock.LoadContactsFunc(ctx, owner)
}

func (mock *snapshotStoreMock) LoadContactsCalls() []struct {
	Ctx   context.Context
	Owner string
} {
	mock.lockLoadContacts.RLock()
	calls := mock.calls.LoadContacts
	mock.lockLoadContacts.RUnlock()
	return calls
}

func (mock *snapshotStoreMock) SaveActivities(ctx context.Context, owner string, activities []domain.UserActivity) error {
	if mock.SaveActivitiesFunc == nil {
		panic("snapshotStoreMock.SaveActivitiesFunc: method is nil but snapshotStore.SaveActivities was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Owner      string
		Activities []domain.UserActivity
	}{Ctx: ctx, Owner: owner, Activities: activities}
	mock.lockSaveActivities.Lock()
	mock.calls.SaveActivities = append(mock.calls.SaveActivities, callInfo)
	mock.lockSaveActivities.Unlock()
	return mock.SaveActivitiesFunc(ctx, owner, activities)
}

func (mock *snapshotStoreMock) SaveActivitiesCalls() []struct {
	Ctx        context.Context
	Owner      string
	Activities []domain.UserActivity
} {
	mock.lockSaveActivities.RLock()
	calls := mock.calls.SaveActivities
	mock.lockSaveActivities.RUnlock()
	return calls
}

func (mock *snapshotStoreMock) SaveContacts(ctx context.Context, owner string, contacts []domain.Contact) error {
	if mock.SaveContactsFunc == nil {
		panic("snapshotStoreMock.SaveContactsFunc: method is nil but snapshotStore.SaveContacts was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Owner    string
		Contacts []domain.Contact
	}{Ctx: ctx, Owner: owner, Contacts: contacts}
	mock.lockSaveContacts.Lock()
	mock.calls.SaveContacts = append(mock.calls.SaveContacts, callInfo)
	mock.lockSaveContacts.Unlock()
	return mock.SaveContactsFunc(ctx, owner, contacts)
}

func (mock *snapshotStoreMock) SaveContactsCalls() []struct {
	Ctx      context.Context
	Owner    string
	Contacts []domain.Contact
} {
	mock.lockSaveContacts.RLock()
	calls := mock.calls.SaveContacts
	mock.lockSaveContacts.RUnlock()
	return calls
}
