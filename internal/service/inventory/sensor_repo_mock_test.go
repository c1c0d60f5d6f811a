package inventory

import (
	"context"
	"sync"

	"github.com/sensorfactory/nexus/internal/domain"
)

var _ sensorRepo = &sensorRepoMock{}

type sensorRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Sensor, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Sensor, error)
	CreateFunc  func(ctx context.Context, s domain.Sensor) (*domain.Sensor, error)
	UpdateFunc  func(ctx context.Context, id string, params domain.SensorUpdateParams) (*domain.Sensor, error)
	DeleteFunc  func(ctx context.Context, id string) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx context.Context
			S   domain.Sensor
		}
		Update []struct {
			Ctx    context.Context
			ID     string
			Params domain.SensorUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *sensorRepoMock) List(ctx context.Context) ([]domain.Sensor, error) {
	if mock.ListFunc == nil {
		panic("sensorRepoMock.ListFunc: method is nil but sensorRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *sensorRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sensorRepoMock) GetByID(ctx context.Context, id string) (*domain.Sensor, error) {
	if mock.GetByIDFunc == nil {
		panic("sensorRepoMock.GetByIDFunc: method is nil but sensorRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sensorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sensorRepoMock) Create(ctx context.Context, s domain.Sensor) (*domain.Sensor, error) {
	if mock.CreateFunc == nil {
		panic("sensorRepoMock.CreateFunc: method is nil but sensorRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Sensor
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sensorRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Sensor
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sensorRepoMock) Update(ctx context.Context, id string, params domain.SensorUpdateParams) (*domain.Sensor, error) {
	if mock.UpdateFunc == nil {
		panic("sensorRepoMock.UpdateFunc: method is nil but sensorRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Params domain.SensorUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *sensorRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     string
	Params domain.SensorUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *sensorRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("sensorRepoMock.DeleteFunc: method is nil but sensorRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sensorRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
