package record

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

// recordRepoMock is a hand-rolled mock of recordRepo in the moq style:
// set the Func fields you expect to be hit; unset methods panic.
type recordRepoMock struct {
	CreateFunc      func(ctx context.Context, rec *domain.VinylRecord) (*domain.VinylRecord, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.VinylRecord, error)
	ListFunc        func(ctx context.Context, pq domain.PageQuery) ([]*domain.VinylRecord, int64, error)
	ListByGenreFunc func(ctx context.Context, g domain.Genre) ([]*domain.VinylRecord, error)
	SearchFunc      func(ctx context.Context, query string) ([]*domain.VinylRecord, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.RecordUpdateParams) (*domain.VinylRecord, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create      int
		GetByID     int
		List        int
		ListByGenre int
		Search      int
		Update      int
		Delete      int
	}
}

func (m *recordRepoMock) count(field *int) {
	m.mu.Lock()
	*field++
	m.mu.Unlock()
}

func (m *recordRepoMock) counted(field *int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *field
}

// CreateCalls reports how many times Create was called.
func (m *recordRepoMock) CreateCalls() int { return m.counted(&m.calls.Create) }

// GetByIDCalls reports how many times GetByID was called.
func (m *recordRepoMock) GetByIDCalls() int { return m.counted(&m.calls.GetByID) }

// ListCalls reports how many times List was called.
func (m *recordRepoMock) ListCalls() int { return m.counted(&m.calls.List) }

// ListByGenreCalls reports how many times ListByGenre was called.
func (m *recordRepoMock) ListByGenreCalls() int { return m.counted(&m.calls.ListByGenre) }

// SearchCalls reports how many times Search was called.
func (m *recordRepoMock) SearchCalls() int { return m.counted(&m.calls.Search) }

// UpdateCalls reports how many times Update was called.
func (m *recordRepoMock) UpdateCalls() int { return m.counted(&m.calls.Update) }

// DeleteCalls reports how many times Delete was called.
func (m *recordRepoMock) DeleteCalls() int { return m.counted(&m.calls.Delete) }

func (m *recordRepoMock) Create(ctx context.Context, rec *domain.VinylRecord) (*domain.VinylRecord, error) {
	if m.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.count(&m.calls.Create)
	return m.CreateFunc(ctx, rec)
}

func (m *recordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.VinylRecord, error) {
	if m.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	m.count(&m.calls.GetByID)
	return m.GetByIDFunc(ctx, id)
}

func (m *recordRepoMock) List(ctx context.Context, pq domain.PageQuery) ([]*domain.VinylRecord, int64, error) {
	if m.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but List was just called")
	}
	m.count(&m.calls.List)
	return m.ListFunc(ctx, pq)
}

func (m *recordRepoMock) ListByGenre(ctx context.Context, g domain.Genre) ([]*domain.VinylRecord, error) {
	if m.ListByGenreFunc == nil {
		panic("recordRepoMock.ListByGenreFunc: method is nil but ListByGenre was just called")
	}
	m.count(&m.calls.ListByGenre)
	return m.ListByGenreFunc(ctx, g)
}

func (m *recordRepoMock) Search(ctx context.Context, query string) ([]*domain.VinylRecord, error) {
	if m.SearchFunc == nil {
		panic("recordRepoMock.SearchFunc: method is nil but Search was just called")
	}
	m.count(&m.calls.Search)
	return m.SearchFunc(ctx, query)
}

func (m *recordRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.RecordUpdateParams) (*domain.VinylRecord, error) {
	if m.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	m.count(&m.calls.Update)
	return m.UpdateFunc(ctx, id, params)
}

func (m *recordRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	m.count(&m.calls.Delete)
	return m.DeleteFunc(ctx, id)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with
// the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
