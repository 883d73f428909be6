// Package usecase provides testify mocks for the usecase interfaces,
// in the shape mockery would generate.
package usecase

import (
	"context"

	"emporia/internal/domain/entity"
	"emporia/internal/domain/query"
	"emporia/internal/domain/repository"
	"emporia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t testingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockAuthUsecase) EXPECT() *MockAuthUsecaseExpecter {
	return &MockAuthUsecaseExpecter{mock: &m.Mock}
}

// MockAuthUsecaseExpecter registers expectations by method name.
type MockAuthUsecaseExpecter struct {
	mock *mock.Mock
}

func (e *MockAuthUsecaseExpecter) Login(ctx, input any) *mock.Call {
	return e.mock.On("Login", ctx, input)
}

func (e *MockAuthUsecaseExpecter) Refresh(ctx, rawRefreshToken any) *mock.Call {
	return e.mock.On("Refresh", ctx, rawRefreshToken)
}

func (e *MockAuthUsecaseExpecter) Logout(ctx, rawRefreshToken any) *mock.Call {
	return e.mock.On("Logout", ctx, rawRefreshToken)
}

func (e *MockAuthUsecaseExpecter) LogoutAll(ctx, userID any) *mock.Call {
	return e.mock.On("LogoutAll", ctx, userID)
}

func (e *MockAuthUsecaseExpecter) Me(ctx, userID any) *mock.Call {
	return e.mock.On("Me", ctx, userID)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)

	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, rawRefreshToken string) (*usecase.RefreshOutput, error) {
	args := m.Called(ctx, rawRefreshToken)

	output, _ := args.Get(0).(*usecase.RefreshOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, rawRefreshToken string) error {
	return m.Called(ctx, rawRefreshToken).Error(0)
}

func (m *MockAuthUsecase) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entity.UserSummary, error) {
	args := m.Called(ctx, userID)

	summary, _ := args.Get(0).(*entity.UserSummary)

	return summary, args.Error(1)
}

// MockCatalogUsecase is a mock implementation of usecase.CatalogUsecase.
type MockCatalogUsecase[E any] struct {
	mock.Mock
}

// NewMockCatalogUsecase creates a mock bound to the test's lifecycle.
func NewMockCatalogUsecase[E any](t testingT) *MockCatalogUsecase[E] {
	m := &MockCatalogUsecase[E]{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockCatalogUsecase[E]) EXPECT() *MockCatalogUsecaseExpecter {
	return &MockCatalogUsecaseExpecter{mock: &m.Mock}
}

// MockCatalogUsecaseExpecter registers expectations by method name.
type MockCatalogUsecaseExpecter struct {
	mock *mock.Mock
}

func (e *MockCatalogUsecaseExpecter) Get(ctx, id any) *mock.Call {
	return e.mock.On("Get", ctx, id)
}

func (e *MockCatalogUsecaseExpecter) List(ctx, filter, raw any) *mock.Call {
	return e.mock.On("List", ctx, filter, raw)
}

func (e *MockCatalogUsecaseExpecter) Create(ctx, record any) *mock.Call {
	return e.mock.On("Create", ctx, record)
}

func (e *MockCatalogUsecaseExpecter) Update(ctx, id, record any) *mock.Call {
	return e.mock.On("Update", ctx, id, record)
}

func (e *MockCatalogUsecaseExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (m *MockCatalogUsecase[E]) Get(ctx context.Context, id uuid.UUID) (*E, error) {
	args := m.Called(ctx, id)

	item, _ := args.Get(0).(*E)

	return item, args.Error(1)
}

func (m *MockCatalogUsecase[E]) List(ctx context.Context, filter repository.Filter, raw query.ListQuery) (*repository.Page[E], error) {
	args := m.Called(ctx, filter, raw)

	page, _ := args.Get(0).(*repository.Page[E])

	return page, args.Error(1)
}

func (m *MockCatalogUsecase[E]) Create(ctx context.Context, e *E) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCatalogUsecase[E]) Update(ctx context.Context, id uuid.UUID, e *E) error {
	return m.Called(ctx, id, e).Error(0)
}

func (m *MockCatalogUsecase[E]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
