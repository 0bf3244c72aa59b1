//	mockgen -source=internal/usecase/services.go -destination=internal/usecase/mocks/mock_services.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/iho/txledger/internal/domain"
	usecase "github.com/iho/txledger/internal/usecase"
	gomock "go.uber.org/mock/gomock"
)

// MockAccountService is a mock of AccountService interface.
type MockAccountService struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceMockRecorder
	isgomock struct{}
}

// MockAccountServiceMockRecorder is the mock recorder for MockAccountService.
type MockAccountServiceMockRecorder struct {
	mock *MockAccountService
}

// NewMockAccountService creates a new mock instance.
func NewMockAccountService(ctrl *gomock.Controller) *MockAccountService {
	mock := &MockAccountService{ctrl: ctrl}
	mock.recorder = &MockAccountServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountService) EXPECT() *MockAccountServiceMockRecorder {
	return m.recorder
}

// Check mocks base method.
func (m *MockAccountService) Check(ctx context.Context, accountID int64, counterpartyID string) (*usecase.AccountCheckResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check", ctx, accountID, counterpartyID)
	ret0, _ := ret[0].(*usecase.AccountCheckResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAccountServiceMockRecorder) Check(ctx, accountID, counterpartyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAccountService)(nil).Check), ctx, accountID, counterpartyID)
}

// UpdateBalance mocks base method.
func (m *MockAccountService) UpdateBalance(ctx context.Context, input usecase.UpdateBalanceInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBalance", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBalance indicates an expected call of UpdateBalance.
func (mr *MockAccountServiceMockRecorder) UpdateBalance(ctx, input any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBalance", reflect.TypeOf((*MockAccountService)(nil).UpdateBalance), ctx, input)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// Notify mocks base method.
func (m *MockNotifier) Notify(ctx context.Context, n usecase.Notification) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Notify", ctx, n)
	ret0, _ := ret[0].(error)
	return ret0
}

// Notify indicates an expected call of Notify.
func (mr *MockNotifierMockRecorder) Notify(ctx, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notify", reflect.TypeOf((*MockNotifier)(nil).Notify), ctx, n)
}

// MockDriftPublisher is a mock of DriftPublisher interface.
type MockDriftPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockDriftPublisherMockRecorder
	isgomock struct{}
}

// MockDriftPublisherMockRecorder is the mock recorder for MockDriftPublisher.
type MockDriftPublisherMockRecorder struct {
	mock *MockDriftPublisher
}

// NewMockDriftPublisher creates a new mock instance.
func NewMockDriftPublisher(ctrl *gomock.Controller) *MockDriftPublisher {
	mock := &MockDriftPublisher{ctrl: ctrl}
	mock.recorder = &MockDriftPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDriftPublisher) EXPECT() *MockDriftPublisherMockRecorder {
	return m.recorder
}

// PublishDrift mocks base method.
func (m *MockDriftPublisher) PublishDrift(ctx context.Context, event domain.SettlementDriftEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishDrift", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishDrift indicates an expected call of PublishDrift.
func (mr *MockDriftPublisherMockRecorder) PublishDrift(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishDrift", reflect.TypeOf((*MockDriftPublisher)(nil).PublishDrift), ctx, event)
}
