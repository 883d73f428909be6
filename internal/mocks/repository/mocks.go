// Package repository provides testify mocks for the domain repository
// interfaces, in the shape mockery would generate.
package repository

import (
	"context"

	"emporia/internal/domain/entity"
	"emporia/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock bound to the test's lifecycle.
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &m.Mock}
}

// MockUserRepositoryExpecter registers expectations by method name.
type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockUserRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockUserRepositoryExpecter) FindByUsername(ctx, username any) *mock.Call {
	return e.mock.On("FindByUsername", ctx, username)
}

func (e *MockUserRepositoryExpecter) Create(ctx, user any) *mock.Call {
	return e.mock.On("Create", ctx, user)
}

func (e *MockUserRepositoryExpecter) Update(ctx, user any) *mock.Call {
	return e.mock.On("Update", ctx, user)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockRefreshSessionRepository is a mock implementation of
// repository.RefreshSessionRepository.
type MockRefreshSessionRepository struct {
	mock.Mock
}

// NewMockRefreshSessionRepository creates a mock bound to the test's lifecycle.
func NewMockRefreshSessionRepository(t testingT) *MockRefreshSessionRepository {
	m := &MockRefreshSessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockRefreshSessionRepository) EXPECT() *MockRefreshSessionRepositoryExpecter {
	return &MockRefreshSessionRepositoryExpecter{mock: &m.Mock}
}

// MockRefreshSessionRepositoryExpecter registers expectations by method name.
type MockRefreshSessionRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockRefreshSessionRepositoryExpecter) Create(ctx, session any) *mock.Call {
	return e.mock.On("Create", ctx, session)
}

func (e *MockRefreshSessionRepositoryExpecter) FindByTokenHash(ctx, tokenHash any) *mock.Call {
	return e.mock.On("FindByTokenHash", ctx, tokenHash)
}

func (e *MockRefreshSessionRepositoryExpecter) DeleteByTokenHash(ctx, tokenHash any) *mock.Call {
	return e.mock.On("DeleteByTokenHash", ctx, tokenHash)
}

func (e *MockRefreshSessionRepositoryExpecter) DeleteByUserID(ctx, userID any) *mock.Call {
	return e.mock.On("DeleteByUserID", ctx, userID)
}

func (e *MockRefreshSessionRepositoryExpecter) DeleteExpired(ctx any) *mock.Call {
	return e.mock.On("DeleteExpired", ctx)
}

func (m *MockRefreshSessionRepository) Create(ctx context.Context, session *entity.RefreshSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockRefreshSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error) {
	args := m.Called(ctx, tokenHash)

	session, _ := args.Get(0).(*entity.RefreshSession)

	return session, args.Error(1)
}

func (m *MockRefreshSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockRefreshSessionRepository) DeleteExpired(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockRoleRepository is a mock implementation of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

// NewMockRoleRepository creates a mock bound to the test's lifecycle.
func NewMockRoleRepository(t testingT) *MockRoleRepository {
	m := &MockRoleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockRoleRepository) EXPECT() *MockRoleRepositoryExpecter {
	return &MockRoleRepositoryExpecter{mock: &m.Mock}
}

// MockRoleRepositoryExpecter registers expectations by method name.
type MockRoleRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockRoleRepositoryExpecter) FindBySlug(ctx, slug any) *mock.Call {
	return e.mock.On("FindBySlug", ctx, slug)
}

func (e *MockRoleRepositoryExpecter) Create(ctx, role any) *mock.Call {
	return e.mock.On("Create", ctx, role)
}

func (m *MockRoleRepository) FindBySlug(ctx context.Context, slug entity.RoleSlug) (*entity.Role, error) {
	args := m.Called(ctx, slug)

	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	return m.Called(ctx, role).Error(0)
}

// MockRepositoryFactory is a mock implementation of
// repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock bound to the test's lifecycle.
func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactoryExpecter {
	return &MockRepositoryFactoryExpecter{mock: &m.Mock}
}

// MockRepositoryFactoryExpecter registers expectations by method name.
type MockRepositoryFactoryExpecter struct {
	mock *mock.Mock
}

func (e *MockRepositoryFactoryExpecter) UserRepo() *mock.Call {
	return e.mock.On("UserRepo")
}

func (e *MockRepositoryFactoryExpecter) SessionRepo() *mock.Call {
	return e.mock.On("SessionRepo")
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	repo, _ := args.Get(0).(repository.UserRepository)

	return repo
}

func (m *MockRepositoryFactory) SessionRepo() repository.RefreshSessionRepository {
	args := m.Called()

	repo, _ := args.Get(0).(repository.RefreshSessionRepository)

	return repo
}

// MockTransactionManager is a mock implementation of
// repository.TransactionManager. PassthroughTransactionManager is usually
// more convenient; this one exists for failure-path expectations.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock bound to the test's lifecycle.
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockTransactionManager) EXPECT() *MockTransactionManagerExpecter {
	return &MockTransactionManagerExpecter{mock: &m.Mock}
}

// MockTransactionManagerExpecter registers expectations by method name.
type MockTransactionManagerExpecter struct {
	mock *mock.Mock
}

func (e *MockTransactionManagerExpecter) Execute(ctx, fn any) *mock.Call {
	return e.mock.On("Execute", ctx, fn)
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// PassthroughTransactionManager runs the unit of work directly against a
// fixed factory, with no transactional behavior. It keeps usecase tests
// focused on the business flow.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (tm *PassthroughTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}

// StaticRepositoryFactory hands out the fixed repositories it was built with.
type StaticRepositoryFactory struct {
	Users    repository.UserRepository
	Sessions repository.RefreshSessionRepository
}

func (f *StaticRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *StaticRepositoryFactory) SessionRepo() repository.RefreshSessionRepository {
	return f.Sessions
}
