// Package service provides testify mocks for the domain service interfaces,
// in the shape mockery would generate.
package service

import (
	"time"

	"emporia/internal/domain/entity"
	"emporia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock bound to the test's lifecycle.
func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &m.Mock}
}

// MockPasswordHasherExpecter registers expectations by method name.
type MockPasswordHasherExpecter struct {
	mock *mock.Mock
}

func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (e *MockPasswordHasherExpecter) Verify(password, salt, hash any) *mock.Call {
	return e.mock.On("Verify", password, salt, hash)
}

func (m *MockPasswordHasher) Hash(password string) (string, string, error) {
	args := m.Called(password)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockPasswordHasher) Verify(password, salt, hash string) bool {
	return m.Called(password, salt, hash).Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock bound to the test's lifecycle.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns an expectation builder for this mock.
func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

// MockTokenServiceExpecter registers expectations by method name.
type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

func (e *MockTokenServiceExpecter) IssuePair(userID, role any) *mock.Call {
	return e.mock.On("IssuePair", userID, role)
}

func (e *MockTokenServiceExpecter) IssueAccess(userID, role any) *mock.Call {
	return e.mock.On("IssueAccess", userID, role)
}

func (e *MockTokenServiceExpecter) VerifyAccess(token any) *mock.Call {
	return e.mock.On("VerifyAccess", token)
}

func (e *MockTokenServiceExpecter) VerifyRefresh(token any) *mock.Call {
	return e.mock.On("VerifyRefresh", token)
}

func (e *MockTokenServiceExpecter) HashToken(token any) *mock.Call {
	return e.mock.On("HashToken", token)
}

func (e *MockTokenServiceExpecter) AccessTTL() *mock.Call {
	return e.mock.On("AccessTTL")
}

func (e *MockTokenServiceExpecter) RefreshTTL() *mock.Call {
	return e.mock.On("RefreshTTL")
}

func (m *MockTokenService) IssuePair(userID uuid.UUID, role entity.RoleSlug) (*service.TokenPair, uuid.UUID, error) {
	args := m.Called(userID, role)

	pair, _ := args.Get(0).(*service.TokenPair)
	sessionID, _ := args.Get(1).(uuid.UUID)

	return pair, sessionID, args.Error(2)
}

func (m *MockTokenService) IssueAccess(userID uuid.UUID, role entity.RoleSlug) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyAccess(token string) (*service.TokenClaims, error) {
	args := m.Called(token)

	claims, _ := args.Get(0).(*service.TokenClaims)

	return claims, args.Error(1)
}

func (m *MockTokenService) VerifyRefresh(token string) (*service.TokenClaims, error) {
	args := m.Called(token)

	claims, _ := args.Get(0).(*service.TokenClaims)

	return claims, args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *MockTokenService) AccessTTL() time.Duration {
	args := m.Called()

	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}

func (m *MockTokenService) RefreshTTL() time.Duration {
	args := m.Called()

	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}
