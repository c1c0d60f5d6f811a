package auth

import (
	"sync"
	"time"

	"github.com/sensorfactory/nexus/internal/domain"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(s domain.Session) (string, error)
	ValidateAccessTokenFunc func(token string) (domain.Session, error)
	RevokeFunc              func(tokenID string, expiry time.Time)

	calls struct {
		GenerateAccessToken []struct {
			S domain.Session
		}
		ValidateAccessToken []struct {
			Token string
		}
		Revoke []struct {
			TokenID string
			Expiry  time.Time
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
	lockRevoke              sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(s domain.Session) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		S domain.Session
	}{S: s}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(s)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	S domain.Session
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (domain.Session, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) Revoke(tokenID string, expiry time.Time) {
	if mock.RevokeFunc == nil {
		panic("jwtManagerMock.RevokeFunc: method is nil but jwtManager.Revoke was just called")
	}
	callInfo := struct {
		TokenID string
		Expiry  time.Time
	}{TokenID: tokenID, Expiry: expiry}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	mock.RevokeFunc(tokenID, expiry)
}

func (mock *jwtManagerMock) RevokeCalls() []struct {
	TokenID string
	Expiry  time.Time
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}
