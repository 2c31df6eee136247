package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/contactbook/internal/domain"
)

var _ accountAPI = &accountAPIMock{}

type accountAPIMock struct {
	LoginFunc    func(ctx context.Context, email string, password string) (domain.Credentials, error)
	LogoutFunc   func(ctx context.Context) error
	RegisterFunc func(ctx context.Context, name string, email string, password string) error

	calls struct {
		Login []struct {
			Ctx      context.Context
			Email    string
			Password string
		}
		Logout []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx      context.Context
			Name     string
			Email    string
			Password string
		}
	}
	lockLogin    sync.RWMutex
	lockLogout   sync.RWMutex
	lockRegister sync.RWMutex
}

func (mock *accountAPIMock) Login(ctx context.Context, email string, password string) (domain.Credentials, error) {
	if mock.LoginFunc == nil {
		panic("accountAPIMock.LoginFunc: method is nil but accountAPI.Login was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
	}{Ctx: ctx, Email: email, Password: password}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, email, password)
}

func (mock *accountAPIMock) LoginCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *accountAPIMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("accountAPIMock.LogoutFunc: method is nil but accountAPI.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *accountAPIMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *accountAPIMock) Register(ctx context.Context, name string, email string, password string) error {
	if mock.RegisterFunc == nil {
		panic("accountAPIMock.RegisterFunc: method is nil but accountAPI.Register was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Name     string
		Email    string
		Password string
	}{Ctx: ctx, Name: name, Email: email, Password: password}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, name, email, password)
}

func (mock *accountAPIMock) RegisterCalls() []struct {
	Ctx      context.Context
	Name     string
	Email    string
	Password string
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
