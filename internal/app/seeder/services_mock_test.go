package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/care"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
)

var _ PlantCreator = &PlantCreatorMock{}

type PlantCreatorMock struct {
	CreateFunc func(ctx context.Context, input plant.PlantInput) (*domain.Plant, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input plant.PlantInput
		}
	}
	lockCreate sync.RWMutex
}

func (mock *PlantCreatorMock) Create(ctx context.Context, input plant.PlantInput) (*domain.Plant, error) {
	if mock.CreateFunc == nil {
		panic("PlantCreatorMock.CreateFunc: method is nil but PlantCreator.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plant.PlantInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *PlantCreatorMock) CreateCalls() []struct {
	Ctx   context.Context
	Input plant.PlantInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ CareWriter = &CareWriterMock{}

type CareWriterMock struct {
	CreateLogFunc     func(ctx context.Context, input care.CreateLogInput) (*domain.CareLog, error)
	UpsertProfileFunc func(ctx context.Context, input care.UpsertProfileInput) (*domain.CareProfile, error)

	calls struct {
		CreateLog []struct {
			Ctx   context.Context
			Input care.CreateLogInput
		}
		UpsertProfile []struct {
			Ctx   context.Context
			Input care.UpsertProfileInput
		}
	}
	lockCreateLog     sync.RWMutex
	lockUpsertProfile sync.RWMutex
}

func (mock *CareWriterMock) CreateLog(ctx context.Context, input care.CreateLogInput) (*domain.CareLog, error) {
	if mock.CreateLogFunc == nil {
		panic("CareWriterMock.CreateLogFunc: method is nil but CareWriter.CreateLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input care.CreateLogInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateLog.Lock()
	mock.calls.CreateLog = append(mock.calls.CreateLog, callInfo)
	mock.lockCreateLog.Unlock()
	return mock.CreateLogFunc(ctx, input)
}

func (mock *CareWriterMock) CreateLogCalls() []struct {
	Ctx   context.Context
	Input care.CreateLogInput
} {
	mock.lockCreateLog.RLock()
	calls := mock.calls.CreateLog
	mock.lockCreateLog.RUnlock()
	return calls
}

func (mock *CareWriterMock) UpsertProfile(ctx context.Context, input care.UpsertProfileInput) (*domain.CareProfile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("CareWriterMock.UpsertProfileFunc: method is nil but CareWriter.UpsertProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input care.UpsertProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpsertProfile.Lock()
	mock.calls.UpsertProfile = append(mock.calls.UpsertProfile, callInfo)
	mock.lockUpsertProfile.Unlock()
	return mock.UpsertProfileFunc(ctx, input)
}

func (mock *CareWriterMock) UpsertProfileCalls() []struct {
	Ctx   context.Context
	Input care.UpsertProfileInput
} {
	mock.lockUpsertProfile.RLock()
	calls := mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}

