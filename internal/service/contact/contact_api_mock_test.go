package contact

import (
	"context"
	"sync"

	"github.com/heartmarshall/contactbook/internal/domain"
)

var _ contactAPI = &contactAPIMock{}

type contactAPIMock struct {
	CreateContactFunc  func(ctx context.Context, fields domain.ContactFields) (domain.Contact, error)
	DeleteContactFunc  func(ctx context.Context, id string) error
	GetContactFunc     func(ctx context.Context, id string) (domain.Contact, error)
	ListActivitiesFunc func(ctx context.Context) ([]domain.UserActivity, error)
	ListContactsFunc   func(ctx context.Context) ([]domain.Contact, error)
	SetStatusFunc      func(ctx context.Context, id string, status domain.ContactStatus) error
	ToggleFavoriteFunc func(ctx context.Context, id string) error
	UpdateContactFunc  func(ctx context.Context, id string, fields domain.ContactFields) (*domain.Contact, error)

	calls struct {
		CreateContact []struct {
			Ctx    context.Context
			Fields domain.ContactFields
		}
		DeleteContact []struct {
			Ctx context.Context
			Id  string
		}
		GetContact []struct {
			Ctx context.Context
			Id  string
		}
		ListActivities []struct {
			Ctx context.Context
		}
		ListContacts []struct {
			Ctx context.Context
		}
		SetStatus []struct {
			Ctx    context.Context
			Id     string
			Status domain.ContactStatus
		}
		ToggleFavorite []struct {
			Ctx context.Context
			Id  string
		}
		UpdateContact []struct {
			Ctx    context.Context
			Id     string
			Fields domain.ContactFields
		}
	}
	lockCreateContact  sync.RWMutex
	lockDeleteContact  sync.RWMutex
	lockGetContact     sync.RWMutex
	lockListActivities sync.RWMutex
	lockListContacts   sync.RWMutex
	lockSetStatus      sync.RWMutex
	lockToggleFavorite sync.RWMutex
	lockUpdateContact  sync.RWMutex
}

func (mock *contactAPIMock) CreateContact(ctx context.Context, fields domain.ContactFields) (domain.Contact, error) {
	if mock.CreateContactFunc == nil {
		panic("contactAPIMock.CreateContactFunc: method is nil but contactAPI.CreateContact was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Fields domain.ContactFields
	}{Ctx: ctx, Fields: fields}
	mock.lockCreateContact.Lock()
	mock.calls.CreateContact = append(mock.calls.CreateContact, callInfo)
	mock.lockCreateContact.Unlock()
	return mock.CreateContactFunc(ctx, fields)
}

func (mock *contactAPIMock) CreateContactCalls() []struct {
	Ctx    context.Context
	Fields domain.ContactFields
} {
	mock.lockCreateContact.RLock()
	calls := mock.calls.CreateContact
	mock.lockCreateContact.RUnlock()
	return calls
}

func (mock *contactAPIMock) DeleteContact(ctx context.Context, id string) error {
	if mock.DeleteContactFunc == nil {
		panic("contactAPIMock.DeleteContactFunc: method is nil but contactAPI.DeleteContact was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockDeleteContact.Lock()
	mock.calls.DeleteContact = append(mock.calls.DeleteContact, callInfo)
	mock.lockDeleteContact.Unlock()
	return mock.DeleteContactFunc(ctx, id)
}

func (mock *contactAPIMock) DeleteContactCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDeleteContact.RLock()
	calls := mock.calls.DeleteContact
	mock.lockDeleteContact.RUnlock()
	return calls
}

func (mock *contactAPIMock) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	if mock.GetContactFunc == nil {
		panic("contactAPIMock.GetContactFunc: method is nil but contactAPI.GetContact was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetContact.Lock()
	mock.calls.GetContact = append(mock.calls.GetContact, callInfo)
	mock.lockGetContact.Unlock()
	return mock.GetContactFunc(ctx, id)
}

func (mock *contactAPIMock) GetContactCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGetContact.RLock()
	calls := mock.calls.GetContact
	mock.lockGetContact.RUnlock()
	return calls
}

func (mock *contactAPIMock) ListActivities(ctx context.Context) ([]domain.UserActivity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("contactAPIMock.ListActivitiesFunc: method is nil but contactAPI.ListActivities was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx)
}

func (mock *contactAPIMock) ListActivitiesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *contactAPIMock) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	if mock.ListContactsFunc == nil {
		panic("contactAPIMock.ListContactsFunc: method is nil but contactAPI.ListContacts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListContacts.Lock()
	mock.calls.ListContacts = append(mock.calls.ListContacts, callInfo)
	mock.lockListContacts.Unlock()
	return mock.ListContactsFunc(ctx)
}

func (mock *contactAPIMock) ListContactsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListContacts.RLock()
	calls := mock.calls.ListContacts
	mock.lockListContacts.RUnlock()
	return calls
}

func (mock *contactAPIMock) SetStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	if mock.SetStatusFunc == nil {
		panic("contactAPIMock.SetStatusFunc: method is nil but contactAPI.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     string
		Status domain.ContactStatus
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *contactAPIMock) SetStatusCalls() []struct {
	Ctx    context.Context
	Id     string
	Status domain.ContactStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *contactAPIMock) ToggleFavorite(ctx context.Context, id string) error {
	if mock.ToggleFavoriteFunc == nil {
		panic("contactAPIMock.ToggleFavoriteFunc: method is nil but contactAPI.ToggleFavorite was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockToggleFavorite.Lock()
	mock.calls.ToggleFavorite = append(mock.calls.ToggleFavorite, callInfo)
	mock.lockToggleFavorite.Unlock()
	return mock.ToggleFavoriteFunc(ctx, id)
}

func (mock *contactAPIMock) ToggleFavoriteCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockToggleFavorite.RLock()
	calls := mock.calls.ToggleFavorite
	mock.lockToggleFavorite.RUnlock()
	return calls
}

func (mock *contactAPIMock) UpdateContact(ctx context.Context, id string, fields domain.ContactFields) (*domain.Contact, error) {
	if mock.UpdateContactFunc == nil {
		panic("contactAPIMock.UpdateContactFunc: method is nil but contactAPI.UpdateContact was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     string
		Fields domain.ContactFields
	}{Ctx: ctx, Id: id, Fields: fields}
	mock.lockUpdateContact.Lock()
	mock.calls.UpdateContact = append(mock.calls.UpdateContact, callInfo)
	mock.lockUpdateContact.Unlock()
	return mock.UpdateContactFunc(ctx, id, fields)
}

func (mock *contactAPIMock) UpdateContactCalls() []struct {
	Ctx    context.Context
	Id     string
	Fields domain.ContactFields
} {
	mock.lockUpdateContact.RLock()
	calls := mock.calls.UpdateContact
	mock.lockUpdateContact.RUnlock()
	return calls
}
