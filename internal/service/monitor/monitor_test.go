package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/contract/mocks"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/tenant"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sequenceChecker 준비된 판정을 순서대로 반환하고, 소진되면 마지막 판정을 반복합니다.
type sequenceChecker struct {
	mu       sync.Mutex
	verdicts []tenant.LicenseVerdict
	calls    int
}

func (s *sequenceChecker) Verify(context.Context) tenant.LicenseVerdict {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.calls
	if i >= len(s.verdicts) {
		i = len(s.verdicts) - 1
	}
	s.calls++
	return s.verdicts[i]
}

func (s *sequenceChecker) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var (
	valid   = tenant.LicenseVerdict{Valid: true, TenantID: "site-42"}
	invalid = tenant.LicenseVerdict{Valid: false, Reason: "license expired"}
)

func TestNewService_RequiredDependencies(t *testing.T) {
	checker := &sequenceChecker{verdicts: []tenant.LicenseVerdict{valid}}

	assert.Panics(t, func() { NewService(config.MonitorConfig{}, nil, &mocks.MockNotificationSender{}) })
	assert.Panics(t, func() { NewService(config.MonitorConfig{}, checker, nil) })

	m := NewService(config.MonitorConfig{}, checker, &mocks.MockNotificationSender{})
	assert.Equal(t, config.DefaultMonitorTimeSpec, m.timeSpec)
}

func TestMonitor_Check(t *testing.T) {
	tests := []struct {
		name           string
		verdicts       []tenant.LicenseVerdict
		expectedAlerts int
		expectedInfos  int
		expectedGauge  float64
	}{
		{
			name:          "계속 유효하면 알림 없음",
			verdicts:      []tenant.LicenseVerdict{valid, valid, valid},
			expectedGauge: 1,
		},
		{
			name:           "첫 관측이 무효면 경고",
			verdicts:       []tenant.LicenseVerdict{invalid, invalid},
			expectedAlerts: 1,
			expectedGauge:  0,
		},
		{
			name:           "유효에서 무효로 전환",
			verdicts:       []tenant.LicenseVerdict{valid, invalid},
			expectedAlerts: 1,
			expectedGauge:  0,
		},
		{
			name:           "무효에서 유효로 복구",
			verdicts:       []tenant.LicenseVerdict{invalid, valid, valid},
			expectedAlerts: 1,
			expectedInfos:  1,
			expectedGauge:  1,
		},
		{
			name:           "반복 전환마다 알림",
			verdicts:       []tenant.LicenseVerdict{valid, invalid, valid, invalid},
			expectedAlerts: 2,
			expectedInfos:  1,
			expectedGauge:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &sequenceChecker{verdicts: tt.verdicts}
			sender := &mocks.MockNotificationSender{}
			m := NewService(config.MonitorConfig{}, checker, sender)

			for range tt.verdicts {
				m.check()
			}

			assert.Len(t, sender.ErrorMessages(), tt.expectedAlerts)
			assert.Len(t, sender.Messages(), tt.expectedInfos)
			assert.Equal(t, tt.expectedGauge, testutil.ToFloat64(tenant.LicenseValid))
		})
	}
}

func TestMonitor_AlertMessages(t *testing.T) {
	checker := &sequenceChecker{verdicts: []tenant.LicenseVerdict{invalid, valid}}
	sender := &mocks.MockNotificationSender{}
	m := NewService(config.MonitorConfig{}, checker, sender)

	m.check()
	m.check()

	require.Len(t, sender.ErrorMessages(), 1)
	assert.Contains(t, sender.ErrorMessages()[0], "license expired")
	assert.Contains(t, sender.ErrorMessages()[0], "🚨")

	require.Len(t, sender.Messages(), 1)
	assert.Contains(t, sender.Messages()[0], "site-42")
	assert.Contains(t, sender.Messages()[0], "✅")
}

func TestMonitor_NotifyFailureDoesNotBreakTransition(t *testing.T) {
	checker := &sequenceChecker{verdicts: []tenant.LicenseVerdict{invalid, invalid}}
	sender := &mocks.MockNotificationSender{}
	sender.On("NotifyDefaultWithError", mock.Anything).Return(assert.AnError)
	m := NewService(config.MonitorConfig{}, checker, sender)

	m.check()
	m.check()

	// 상태는 기록되었으므로 같은 상태가 이어지면 다시 알리지 않는다.
	assert.Len(t, sender.ErrorMessages(), 1)
}

func TestMonitor_StartRunsInitialCheckAndStops(t *testing.T) {
	checker := &sequenceChecker{verdicts: []tenant.LicenseVerdict{invalid}}
	sender := &mocks.MockNotificationSender{}
	m := NewService(config.MonitorConfig{TimeSpec: "@every 1h"}, checker, sender)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, m.Start(ctx, wg))

	require.Eventually(t, func() bool { return checker.callCount() >= 1 }, time.Second, 10*time.Millisecond)

	// 중복 시작은 무시된다.
	wg.Add(1)
	require.NoError(t, m.Start(ctx, wg))

	cancel()
	wg.Wait()

	assert.False(t, m.running)
	assert.Len(t, sender.ErrorMessages(), 1)
}

func TestMonitor_InvalidTimeSpec(t *testing.T) {
	checker := &sequenceChecker{verdicts: []tenant.LicenseVerdict{valid}}
	m := NewService(config.MonitorConfig{TimeSpec: "not a cron"}, checker, &mocks.MockNotificationSender{})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := m.Start(context.Background(), wg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cron")
	wg.Wait()
	assert.Zero(t, checker.callCount())
}
