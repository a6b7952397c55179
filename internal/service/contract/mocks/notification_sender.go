// Package mocks contract 인터페이스의 테스트 대역을 제공합니다.
package mocks

import (
	"sync"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockNotificationSender contract.NotificationSender와 NotificationHealthChecker의 mock 구현입니다.
//
// 기대값이 설정되지 않은 호출은 mock 검증 없이 기록만 합니다.
type MockNotificationSender struct {
	mock.Mock

	mu       sync.Mutex
	messages []string
	errors   []string
}

var (
	_ contract.NotificationSender        = (*MockNotificationSender)(nil)
	_ contract.NotificationHealthChecker = (*MockNotificationSender)(nil)
)

func (m *MockNotificationSender) NotifyDefault(message string) error {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	m.mu.Unlock()

	if m.hasExpectation("NotifyDefault") {
		return m.Called(message).Error(0)
	}
	return nil
}

func (m *MockNotificationSender) NotifyDefaultWithError(message string) error {
	m.mu.Lock()
	m.errors = append(m.errors, message)
	m.mu.Unlock()

	if m.hasExpectation("NotifyDefaultWithError") {
		return m.Called(message).Error(0)
	}
	return nil
}

func (m *MockNotificationSender) Health() error {
	if m.hasExpectation("Health") {
		return m.Called().Error(0)
	}
	return nil
}

// Messages NotifyDefault로 전달된 메시지의 사본을 반환합니다.
func (m *MockNotificationSender) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

// ErrorMessages NotifyDefaultWithError로 전달된 메시지의 사본을 반환합니다.
func (m *MockNotificationSender) ErrorMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.errors...)
}

func (m *MockNotificationSender) hasExpectation(method string) bool {
	for _, c := range m.ExpectedCalls {
		if c.Method == method {
			return true
		}
	}
	return false
}
