// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/catering-service/internal/domain/model"
)

type MockMenuRepositoryInterface struct {
	mock.Mock
}

func (m *MockMenuRepositoryInterface) List(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepositoryInterface) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepositoryInterface) Upsert(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepositoryInterface) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatiosRepositoryInterface struct {
	mock.Mock
}

func (m *MockRatiosRepositoryInterface) GetActive(ctx context.Context) (*model.RatioTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RatioTable), args.Error(1)
}

func (m *MockRatiosRepositoryInterface) Save(ctx context.Context, table *model.RatioTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSettingsRepositoryInterface) GetActive(ctx context.Context) (*model.OrderSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) Save(ctx context.Context, settings *model.OrderSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockCartRepositoryInterface struct {
	mock.Mock
}

func (m *MockCartRepositoryInterface) FindBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepositoryInterface) Save(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockOrderRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrderRepositoryInterface) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepositoryInterface) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepositoryInterface) ListRecent(ctx context.Context, limit, skip int) ([]model.Order, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepositoryInterface) ListBySession(ctx context.Context, sessionID string) ([]model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

type MockAdminRepositoryInterface struct {
	mock.Mock
}

func (m *MockAdminRepositoryInterface) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminRepositoryInterface) Create(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
