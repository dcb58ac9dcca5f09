package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/care"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/internal/service/schedule"
)

var _ plantService = &plantServiceMock{}

type plantServiceMock struct {
	ListFunc        func(ctx context.Context) ([]domain.Plant, error)
	GetFunc         func(ctx context.Context, plantID uuid.UUID) (*domain.Plant, error)
	CreateFunc      func(ctx context.Context, input plant.PlantInput) (*domain.Plant, error)
	UpdateFunc      func(ctx context.Context, plantID uuid.UUID, input plant.PlantInput) (*domain.Plant, error)
	DeleteFunc      func(ctx context.Context, plantID uuid.UUID) error
	ListPhotosFunc  func(ctx context.Context, plantID uuid.UUID) ([]plant.Photo, error)
	UploadPhotoFunc func(ctx context.Context, input plant.UploadPhotoInput) (*plant.Photo, error)
	SetCoverFunc    func(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error
	DeletePhotoFunc func(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx     context.Context
			PlantID uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input plant.PlantInput
		}
		Update []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			Input   plant.PlantInput
		}
		Delete []struct {
			Ctx     context.Context
			PlantID uuid.UUID
		}
		ListPhotos []struct {
			Ctx     context.Context
			PlantID uuid.UUID
		}
		UploadPhoto []struct {
			Ctx   context.Context
			Input plant.UploadPhotoInput
		}
		SetCover []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			PhotoID uuid.UUID
		}
		DeletePhoto []struct {
			Ctx     context.Context
			PlantID uuid.UUID
			PhotoID uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockGet         sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockListPhotos  sync.RWMutex
	lockUploadPhoto sync.RWMutex
	lockSetCover    sync.RWMutex
	lockDeletePhoto sync.RWMutex
}

func (mock *plantServiceMock) List(ctx context.Context) ([]domain.Plant, error) {
	if mock.ListFunc == nil {
		panic("plantServiceMock.ListFunc: method is nil but plantService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *plantServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *plantServiceMock) Get(ctx context.Context, plantID uuid.UUID) (*domain.Plant, error) {
	if mock.GetFunc == nil {
		panic("plantServiceMock.GetFunc: method is nil but plantService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
	}{Ctx: ctx, PlantID: plantID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, plantID)
}

func (mock *plantServiceMock) GetCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *plantServiceMock) Create(ctx context.Context, input plant.PlantInput) (*domain.Plant, error) {
	if mock.CreateFunc == nil {
		panic("plantServiceMock.CreateFunc: method is nil but plantService.Create was just called")
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

func (mock *plantServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input plant.PlantInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *plantServiceMock) Update(ctx context.Context, plantID uuid.UUID, input plant.PlantInput) (*domain.Plant, error) {
	if mock.UpdateFunc == nil {
		panic("plantServiceMock.UpdateFunc: method is nil but plantService.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
		Input   plant.PlantInput
	}{Ctx: ctx, PlantID: plantID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, plantID, input)
}

func (mock *plantServiceMock) UpdateCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	Input   plant.PlantInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *plantServiceMock) Delete(ctx context.Context, plantID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("plantServiceMock.DeleteFunc: method is nil but plantService.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
	}{Ctx: ctx, PlantID: plantID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, plantID)
}

func (mock *plantServiceMock) DeleteCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *plantServiceMock) ListPhotos(ctx context.Context, plantID uuid.UUID) ([]plant.Photo, error) {
	if mock.ListPhotosFunc == nil {
		panic("plantServiceMock.ListPhotosFunc: method is nil but plantService.ListPhotos was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
	}{Ctx: ctx, PlantID: plantID}
	mock.lockListPhotos.Lock()
	mock.calls.ListPhotos = append(mock.calls.ListPhotos, callInfo)
	mock.lockListPhotos.Unlock()
	return mock.ListPhotosFunc(ctx, plantID)
}

func (mock *plantServiceMock) ListPhotosCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
} {
	mock.lockListPhotos.RLock()
	calls := mock.calls.ListPhotos
	mock.lockListPhotos.RUnlock()
	return calls
}

func (mock *plantServiceMock) UploadPhoto(ctx context.Context, input plant.UploadPhotoInput) (*plant.Photo, error) {
	if mock.UploadPhotoFunc == nil {
		panic("plantServiceMock.UploadPhotoFunc: method is nil but plantService.UploadPhoto was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plant.UploadPhotoInput
	}{Ctx: ctx, Input: input}
	mock.lockUploadPhoto.Lock()
	mock.calls.UploadPhoto = append(mock.calls.UploadPhoto, callInfo)
	mock.lockUploadPhoto.Unlock()
	return mock.UploadPhotoFunc(ctx, input)
}

func (mock *plantServiceMock) UploadPhotoCalls() []struct {
	Ctx   context.Context
	Input plant.UploadPhotoInput
} {
	mock.lockUploadPhoto.RLock()
	calls := mock.calls.UploadPhoto
	mock.lockUploadPhoto.RUnlock()
	return calls
}

func (mock *plantServiceMock) SetCover(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error {
	if mock.SetCoverFunc == nil {
		panic("plantServiceMock.SetCoverFunc: method is nil but plantService.SetCover was just called")
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

func (mock *plantServiceMock) SetCoverCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockSetCover.RLock()
	calls := mock.calls.SetCover
	mock.lockSetCover.RUnlock()
	return calls
}

func (mock *plantServiceMock) DeletePhoto(ctx context.Context, plantID uuid.UUID, photoID uuid.UUID) error {
	if mock.DeletePhotoFunc == nil {
		panic("plantServiceMock.DeletePhotoFunc: method is nil but plantService.DeletePhoto was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
		PhotoID uuid.UUID
	}{Ctx: ctx, PlantID: plantID, PhotoID: photoID}
	mock.lockDeletePhoto.Lock()
	mock.calls.DeletePhoto = append(mock.calls.DeletePhoto, callInfo)
	mock.lockDeletePhoto.Unlock()
	return mock.DeletePhotoFunc(ctx, plantID, photoID)
}

func (mock *plantServiceMock) DeletePhotoCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockDeletePhoto.RLock()
	calls := mock.calls.DeletePhoto
	mock.lockDeletePhoto.RUnlock()
	return calls
}

var _ careService = &careServiceMock{}

type careServiceMock struct {
	CreateLogFunc       func(ctx context.Context, input care.CreateLogInput) (*domain.CareLog, error)
	ListLogsFunc        func(ctx context.Context, plantID uuid.UUID) ([]domain.CareLog, error)
	GetProfileFunc      func(ctx context.Context, plantID uuid.UUID) (*domain.CareProfile, error)
	UpsertProfileFunc   func(ctx context.Context, input care.UpsertProfileInput) (*domain.CareProfile, error)
	LatestSummariesFunc func(ctx context.Context) ([]domain.PlantLatestCareSummary, error)

	calls struct {
		CreateLog []struct {
			Ctx   context.Context
			Input care.CreateLogInput
		}
		ListLogs []struct {
			Ctx     context.Context
			PlantID uuid.UUID
		}
		GetProfile []struct {
			Ctx     context.Context
			PlantID uuid.UUID
		}
		UpsertProfile []struct {
			Ctx   context.Context
			Input care.UpsertProfileInput
		}
		LatestSummaries []struct {
			Ctx context.Context
		}
	}
	lockCreateLog       sync.RWMutex
	lockListLogs        sync.RWMutex
	lockGetProfile      sync.RWMutex
	lockUpsertProfile   sync.RWMutex
	lockLatestSummaries sync.RWMutex
}

func (mock *careServiceMock) CreateLog(ctx context.Context, input care.CreateLogInput) (*domain.CareLog, error) {
	if mock.CreateLogFunc == nil {
		panic("careServiceMock.CreateLogFunc: method is nil but careService.CreateLog was just called")
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

func (mock *careServiceMock) CreateLogCalls() []struct {
	Ctx   context.Context
	Input care.CreateLogInput
} {
	mock.lockCreateLog.RLock()
	calls := mock.calls.CreateLog
	mock.lockCreateLog.RUnlock()
	return calls
}

func (mock *careServiceMock) ListLogs(ctx context.Context, plantID uuid.UUID) ([]domain.CareLog, error) {
	if mock.ListLogsFunc == nil {
		panic("careServiceMock.ListLogsFunc: method is nil but careService.ListLogs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
	}{Ctx: ctx, PlantID: plantID}
	mock.lockListLogs.Lock()
	mock.calls.ListLogs = append(mock.calls.ListLogs, callInfo)
	mock.lockListLogs.Unlock()
	return mock.ListLogsFunc(ctx, plantID)
}

func (mock *careServiceMock) ListLogsCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
} {
	mock.lockListLogs.RLock()
	calls := mock.calls.ListLogs
	mock.lockListLogs.RUnlock()
	return calls
}

func (mock *careServiceMock) GetProfile(ctx context.Context, plantID uuid.UUID) (*domain.CareProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("careServiceMock.GetProfileFunc: method is nil but careService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID uuid.UUID
	}{Ctx: ctx, PlantID: plantID}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, plantID)
}

func (mock *careServiceMock) GetProfileCalls() []struct {
	Ctx     context.Context
	PlantID uuid.UUID
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *careServiceMock) UpsertProfile(ctx context.Context, input care.UpsertProfileInput) (*domain.CareProfile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("careServiceMock.UpsertProfileFunc: method is nil but careService.UpsertProfile was just called")
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

func (mock *careServiceMock) UpsertProfileCalls() []struct {
	Ctx   context.Context
	Input care.UpsertProfileInput
} {
	mock.lockUpsertProfile.RLock()
	calls := mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}

func (mock *careServiceMock) LatestSummaries(ctx context.Context) ([]domain.PlantLatestCareSummary, error) {
	if mock.LatestSummariesFunc == nil {
		panic("careServiceMock.LatestSummariesFunc: method is nil but careService.LatestSummaries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLatestSummaries.Lock()
	mock.calls.LatestSummaries = append(mock.calls.LatestSummaries, callInfo)
	mock.lockLatestSummaries.Unlock()
	return mock.LatestSummariesFunc(ctx)
}

func (mock *careServiceMock) LatestSummariesCalls() []struct {
	Ctx context.Context
} {
	mock.lockLatestSummaries.RLock()
	calls := mock.calls.LatestSummaries
	mock.lockLatestSummaries.RUnlock()
	return calls
}

var _ scheduleService = &scheduleServiceMock{}

type scheduleServiceMock struct {
	ListSchedulesFunc  func(ctx context.Context) ([]domain.CareSchedule, error)
	ListCareEventsFunc func(ctx context.Context, input schedule.RangeInput) ([]domain.CareScheduleEvent, error)
	CalendarFeedFunc   func(ctx context.Context, input schedule.RangeInput) ([]byte, error)

	calls struct {
		ListSchedules []struct {
			Ctx context.Context
		}
		ListCareEvents []struct {
			Ctx   context.Context
			Input schedule.RangeInput
		}
		CalendarFeed []struct {
			Ctx   context.Context
			Input schedule.RangeInput
		}
	}
	lockListSchedules  sync.RWMutex
	lockListCareEvents sync.RWMutex
	lockCalendarFeed   sync.RWMutex
}

func (mock *scheduleServiceMock) ListSchedules(ctx context.Context) ([]domain.CareSchedule, error) {
	if mock.ListSchedulesFunc == nil {
		panic("scheduleServiceMock.ListSchedulesFunc: method is nil but scheduleService.ListSchedules was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSchedules.Lock()
	mock.calls.ListSchedules = append(mock.calls.ListSchedules, callInfo)
	mock.lockListSchedules.Unlock()
	return mock.ListSchedulesFunc(ctx)
}

func (mock *scheduleServiceMock) ListSchedulesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSchedules.RLock()
	calls := mock.calls.ListSchedules
	mock.lockListSchedules.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) ListCareEvents(ctx context.Context, input schedule.RangeInput) ([]domain.CareScheduleEvent, error) {
	if mock.ListCareEventsFunc == nil {
		panic("scheduleServiceMock.ListCareEventsFunc: method is nil but scheduleService.ListCareEvents was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input schedule.RangeInput
	}{Ctx: ctx, Input: input}
	mock.lockListCareEvents.Lock()
	mock.calls.ListCareEvents = append(mock.calls.ListCareEvents, callInfo)
	mock.lockListCareEvents.Unlock()
	return mock.ListCareEventsFunc(ctx, input)
}

func (mock *scheduleServiceMock) ListCareEventsCalls() []struct {
	Ctx   context.Context
	Input schedule.RangeInput
} {
	mock.lockListCareEvents.RLock()
	calls := mock.calls.ListCareEvents
	mock.lockListCareEvents.RUnlock()
	return calls
}

func (mock *scheduleServiceMock) CalendarFeed(ctx context.Context, input schedule.RangeInput) ([]byte, error) {
	if mock.CalendarFeedFunc == nil {
		panic("scheduleServiceMock.CalendarFeedFunc: method is nil but scheduleService.CalendarFeed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input schedule.RangeInput
	}{Ctx: ctx, Input: input}
	mock.lockCalendarFeed.Lock()
	mock.calls.CalendarFeed = append(mock.calls.CalendarFeed, callInfo)
	mock.lockCalendarFeed.Unlock()
	return mock.CalendarFeedFunc(ctx, input)
}

func (mock *scheduleServiceMock) CalendarFeedCalls() []struct {
	Ctx   context.Context
	Input schedule.RangeInput
} {
	mock.lockCalendarFeed.RLock()
	calls := mock.calls.CalendarFeed
	mock.lockCalendarFeed.RUnlock()
	return calls
}

