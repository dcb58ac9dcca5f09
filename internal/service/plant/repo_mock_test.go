package plant

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

var _ plantRepo = &plantRepoMock{}

type plantRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) (*domain.Plant, error)
	CreateFunc     func(ctx context.Context, plant *domain.Plant) (*domain.Plant, error)
	UpdateFunc     func(ctx context.Context, userID uuid.UUID, plantID uuid.UUID, params domain.PlantUpdateParams) (*domain.Plant, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) error

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			PlantID uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Plant *domain.Plant
		}
		Update []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			PlantID uuid.UUID
			Params  domain.PlantUpdateParams
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			PlantID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
	lockGetByID    sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *plantRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error) {
	if mock.ListByUserFunc == nil {
		panic("plantRepoMock.ListByUserFunc: method is nil but plantRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *plantRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *plantRepoMock) GetByID(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) (*domain.Plant, error) {
	if mock.GetByIDFunc == nil {
		panic("plantRepoMock.GetByIDFunc: method is nil but plantRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		PlantID uuid.UUID
	}{Ctx: ctx, UserID: userID, PlantID: plantID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, plantID)
}

func (mock *plantRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	PlantID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *plantRepoMock) Create(ctx context.Context, plant *domain.Plant) (*domain.Plant, error) {
	if mock.CreateFunc == nil {
		panic("plantRepoMock.CreateFunc: method is nil but plantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Plant *domain.Plant
	}{Ctx: ctx, Plant: plant}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, plant)
}

func (mock *plantRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Plant *domain.Plant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *plantRepoMock) Update(ctx context.Context, userID uuid.UUID, plantID uuid.UUID, params domain.PlantUpdateParams) (*domain.Plant, error) {
	if mock.UpdateFunc == nil {
		panic("plantRepoMock.UpdateFunc: method is nil but plantRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		PlantID uuid.UUID
		Params  domain.PlantUpdateParams
	}{Ctx: ctx, UserID: userID, PlantID: plantID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, plantID, params)
}

func (mock *plantRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	PlantID uuid.UUID
	Params  domain.PlantUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *plantRepoMock) Delete(ctx context.Context, userID uuid.UUID, plantID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("plantRepoMock.DeleteFunc: method is nil but plantRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		PlantID uuid.UUID
	}{Ctx: ctx, UserID: userID, PlantID: plantID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, plantID)
}

func (mock *plantRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	PlantID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	UpsertFunc func(ctx context.Context, plantID uuid.UUID, params domain.CareProfileUpsertParams) (*domain.CareProfile, error)

	calls struct {
		Upsert []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			Params  domain.CareProfileUpsertParams
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *profileRepoMock) Upsert(ctx context.Context, plantID uuid.UUID, params domain.CareProfileUpsertParams) (*domain.CareProfile, error) {
	if mock.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but profileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
		Params  domain.CareProfileUpsertParams
	}{Ctx: ctx, PlantID: plantID, Params: params}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, plantID, params)
}

func (mock *profileRepoMock) UpsertCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	Params  domain.CareProfileUpsertParams
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ photoRepo = &photoRepoMock{}

type photoRepoMock struct {
	ListByPlantFunc func(ctx context.Context, plantID uuid.UUID) ([]domain.PlantPhoto, error)
	GetByIDFunc     func(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) (*domain.PlantPhoto, error)
	CreateFunc      func(ctx context.Context, photo *domain.PlantPhoto) (*domain.PlantPhoto, error)
	SetCoverFunc    func(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error
	DeleteFunc      func(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error

	calls struct {
		ListByPlant []struct {
			Ctx     context.Context
			PlantID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			PhotoID uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Photo *domain.PlantPhoto
		}
		SetCover []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			PhotoID uuid.UUID
		}
		Delete []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			PhotoID uuid.UUID
		}
	}
	lockListByPlant sync.RWMutex
	lockGetByID     sync.RWMutex
	lockCreate      sync.RWMutex
	lockSetCover    sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *photoRepoMock) ListByPlant(ctx context.Context, plantID uuid.UUID) ([]domain.PlantPhoto, error) {
	if mock.ListByPlantFunc == nil {
		panic("photoRepoMock.ListByPlantFunc: method is nil but photoRepo.ListByPlant was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
	}{Ctx: ctx, PlantID: plantID}
	mock.lockListByPlant.Lock()
	mock.calls.ListByPlant = append(mock.calls.ListByPlant, callInfo)
	mock.lockListByPlant.Unlock()
	return mock.ListByPlantFunc(ctx, plantID)
}

func (mock *photoRepoMock) ListByPlantCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
} {
	mock.lockListByPlant.RLock()
	calls := mock.calls.ListByPlant
	mock.lockListByPlant.RUnlock()
	return calls
}

func (mock *photoRepoMock) GetByID(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) (*domain.PlantPhoto, error) {
	if mock.GetByIDFunc == nil {
		panic("photoRepoMock.GetByIDFunc: method is nil but photoRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
		PhotoID uuid.UUID
	}{Ctx: ctx, PlantID: plantID, PhotoID: photoID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, plantID, photoID)
}

func (mock *photoRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *photoRepoMock) Create(ctx context.Context, photo *domain.PlantPhoto) (*domain.PlantPhoto, error) {
	if mock.CreateFunc == nil {
		panic("photoRepoMock.CreateFunc: method is nil but photoRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Photo *domain.PlantPhoto
	}{Ctx: ctx, Photo: photo}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, photo)
}

func (mock *photoRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Photo *domain.PlantPhoto
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *photoRepoMock) SetCover(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error {
	if mock.SetCoverFunc == nil {
		panic("photoRepoMock.SetCoverFunc: method is nil but photoRepo.SetCover was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
		PhotoID uuid.UUID
	}{Ctx: ctx, PlantID: plantID, PhotoID: photoID}
	mock.lockSetCover.Lock()
	mock.calls.SetCover = append(mock.calls.SetCover, callInfo)
	mock.lockSetCover.Unlock()
	return mock.SetCoverFunc(ctx, plantID, photoID)
}

func (mock *photoRepoMock) SetCoverCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockSetCover.RLock()
	calls := mock.calls.SetCover
	mock.lockSetCover.RUnlock()
	return calls
}

func (mock *photoRepoMock) Delete(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("photoRepoMock.DeleteFunc: method is nil but photoRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
		PhotoID uuid.UUID
	}{Ctx: ctx, PlantID: plantID, PhotoID: photoID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, plantID, photoID)
}

func (mock *photoRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc    func(ctx context.Context, key string, r io.Reader) error
	DeleteFunc func(ctx context.Context, key string) error
	URLFunc    func(key string) string

	calls struct {
		Put []struct {
			Ctx context.Context
			Key string
			R   io.Reader
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
		URL []struct {
			Key string
		}
	}
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
	lockURL    sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, r io.Reader) error {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		R   io.Reader
	}{Ctx: ctx, Key: key, R: r}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, r)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx context.Context
	Key string
	R   io.Reader
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *blobStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *blobStoreMock) URL(key string) string {
	if mock.URLFunc == nil {
		panic("blobStoreMock.URLFunc: method is nil but blobStore.URL was just called")
	}
	callInfo := struct {
		Key string
	}{Key: key}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(key)
}

func (mock *blobStoreMock) URLCalls() []struct {
	Key string
} {
	mock.lockURL.RLock()
	calls := mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

