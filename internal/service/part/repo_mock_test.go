package part

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

var _ partRepo = &partRepoMock{}

// partRepoMock is a hand-rolled mock of partRepo in the moq style:
// set the Func fields you expect to be hit; unset methods panic.
type partRepoMock struct {
	CreateFunc     func(ctx context.Context, p *domain.Part) (*domain.Part, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Part, error)
	ListFunc       func(ctx context.Context, pq domain.PageQuery) ([]*domain.Part, int64, error)
	ListByTypeFunc func(ctx context.Context, t domain.PartType) ([]*domain.Part, error)
	SearchFunc     func(ctx context.Context, query string) ([]*domain.Part, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.PartUpdateParams) (*domain.Part, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create     int
		GetByID    int
		List       int
		ListByType int
		Search     int
		Update     int
		Delete     int
	}
}

func (m *partRepoMock) count(field *int) {
	m.mu.Lock()
	*field++
	m.mu.Unlock()
}

func (m *partRepoMock) counted(field *int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *field
}

// CreateCalls reports how many times Create was called.
func (m *partRepoMock) CreateCalls() int { return m.counted(&m.calls.Create) }

// GetByIDCalls reports how many times GetByID was called.
func (m *partRepoMock) GetByIDCalls() int { return m.counted(&m.calls.GetByID) }

// ListCalls reports how many times List was called.
func (m *partRepoMock) ListCalls() int { return m.counted(&m.calls.List) }

// ListByTypeCalls reports how many times ListByType was called.
func (m *partRepoMock) ListByTypeCalls() int { return m.counted(&m.calls.ListByType) }

// SearchCalls reports how many times Search was called.
func (m *partRepoMock) SearchCalls() int { return m.counted(&m.calls.Search) }

// UpdateCalls reports how many times Update was called.
func (m *partRepoMock) UpdateCalls() int { return m.counted(&m.calls.Update) }

// DeleteCalls reports how many times Delete was called.
func (m *partRepoMock) DeleteCalls() int { return m.counted(&m.calls.Delete) }

func (m *partRepoMock) Create(ctx context.Context, p *domain.Part) (*domain.Part, error) {
	if m.CreateFunc == nil {
		panic("partRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.count(&m.calls.Create)
	return m.CreateFunc(ctx, p)
}

func (m *partRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	if m.GetByIDFunc == nil {
		panic("partRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	m.count(&m.calls.GetByID)
	return m.GetByIDFunc(ctx, id)
}

func (m *partRepoMock) List(ctx context.Context, pq domain.PageQuery) ([]*domain.Part, int64, error) {
	if m.ListFunc == nil {
		panic("partRepoMock.ListFunc: method is nil but List was just called")
	}
	m.count(&m.calls.List)
	return m.ListFunc(ctx, pq)
}

func (m *partRepoMock) ListByType(ctx context.Context, t domain.PartType) ([]*domain.Part, error) {
	if m.ListByTypeFunc == nil {
		panic("partRepoMock.ListByTypeFunc: method is nil but ListByType was just called")
	}
	m.count(&m.calls.ListByType)
	return m.ListByTypeFunc(ctx, t)
}

func (m *partRepoMock) Search(ctx context.Context, query string) ([]*domain.Part, error) {
	if m.SearchFunc == nil {
		panic("partRepoMock.SearchFunc: method is nil but Search was just called")
	}
	m.count(&m.calls.Search)
	return m.SearchFunc(ctx, query)
}

func (m *partRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.PartUpdateParams) (*domain.Part, error) {
	if m.UpdateFunc == nil {
		panic("partRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	m.count(&m.calls.Update)
	return m.UpdateFunc(ctx, id, params)
}

func (m *partRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("partRepoMock.DeleteFunc: method is nil but Delete was just called")
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
