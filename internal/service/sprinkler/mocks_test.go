package sprinkler

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

var _ sprinklerRepo = &sprinklerRepoMock{}

type sprinklerRepoMock struct {
	CreateFunc             func(ctx context.Context, s *domain.Sprinkler) (*domain.Sprinkler, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	ListFunc               func(ctx context.Context) ([]domain.Sprinkler, error)
	GetActiveFunc          func(ctx context.Context) (*domain.Sprinkler, error)
	GetActiveForUpdateFunc func(ctx context.Context) (*domain.Sprinkler, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, params domain.SprinklerUpdateParams) (*domain.Sprinkler, error)

	calls struct {
		Create []struct {
			S *domain.Sprinkler
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List               []struct{}
		GetActive          []struct{}
		GetActiveForUpdate []struct{}
		Update             []struct {
			ID     uuid.UUID
			Params domain.SprinklerUpdateParams
		}
	}
	lock sync.RWMutex
}

func (mock *sprinklerRepoMock) Create(ctx context.Context, s *domain.Sprinkler) (*domain.Sprinkler, error) {
	if mock.CreateFunc == nil {
		panic("sprinklerRepoMock.CreateFunc: method is nil but sprinklerRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		S *domain.Sprinkler
	}{S: s})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sprinklerRepoMock) CreateCalls() []struct {
	S *domain.Sprinkler
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *sprinklerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error) {
	if mock.GetByIDFunc == nil {
		panic("sprinklerRepoMock.GetByIDFunc: method is nil but sprinklerRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sprinklerRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *sprinklerRepoMock) List(ctx context.Context) ([]domain.Sprinkler, error) {
	if mock.ListFunc == nil {
		panic("sprinklerRepoMock.ListFunc: method is nil but sprinklerRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *sprinklerRepoMock) ListCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *sprinklerRepoMock) GetActive(ctx context.Context) (*domain.Sprinkler, error) {
	if mock.GetActiveFunc == nil {
		panic("sprinklerRepoMock.GetActiveFunc: method is nil but sprinklerRepo.GetActive was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, struct{}{})
	mock.lock.Unlock()
	return mock.GetActiveFunc(ctx)
}

func (mock *sprinklerRepoMock) GetActiveCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetActive
}

func (mock *sprinklerRepoMock) GetActiveForUpdate(ctx context.Context) (*domain.Sprinkler, error) {
	if mock.GetActiveForUpdateFunc == nil {
		panic("sprinklerRepoMock.GetActiveForUpdateFunc: method is nil but sprinklerRepo.GetActiveForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActiveForUpdate = append(mock.calls.GetActiveForUpdate, struct{}{})
	mock.lock.Unlock()
	return mock.GetActiveForUpdateFunc(ctx)
}

func (mock *sprinklerRepoMock) GetActiveForUpdateCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetActiveForUpdate
}

func (mock *sprinklerRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.SprinklerUpdateParams) (*domain.Sprinkler, error) {
	if mock.UpdateFunc == nil {
		panic("sprinklerRepoMock.UpdateFunc: method is nil but sprinklerRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.SprinklerUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *sprinklerRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.SprinklerUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

var _ historyLogger = &historyLoggerMock{}

type historyLoggerMock struct {
	LogFunc func(ctx context.Context, sprinklerName string, action domain.HistoryAction) error

	calls struct {
		Log []struct {
			SprinklerName string
			Action        domain.HistoryAction
		}
	}
	lock sync.RWMutex
}

func (mock *historyLoggerMock) Log(ctx context.Context, sprinklerName string, action domain.HistoryAction) error {
	if mock.LogFunc == nil {
		panic("historyLoggerMock.LogFunc: method is nil but historyLogger.Log was just called")
	}
	mock.lock.Lock()
	mock.calls.Log = append(mock.calls.Log, struct {
		SprinklerName string
		Action        domain.HistoryAction
	}{SprinklerName: sprinklerName, Action: action})
	mock.lock.Unlock()
	return mock.LogFunc(ctx, sprinklerName, action)
}

func (mock *historyLoggerMock) LogCalls() []struct {
	SprinklerName string
	Action        domain.HistoryAction
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Log
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback in-place unless RunInTxFunc overrides it.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
