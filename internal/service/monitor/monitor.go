// Package monitor 주기적으로 라이선스를 검증하여 상태 변화를 운영자에게 알리는 서비스입니다.
//
// 요청 처리는 이 서비스가 관측한 상태를 읽지 않습니다. 요청마다 라이선스를 다시 검증하는 것은 변함이 없고,
// 모니터는 만료나 복구를 요청이 없을 때도 알아차리기 위한 보조 수단입니다.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/mark"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/contract"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/tenant"
	"github.com/darkkaiser/crafter-tenant-server/pkg/cronx"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component 라이선스 모니터의 로깅용 컴포넌트 이름
const component = "monitor.service"

// checkTimeout 한 번의 검증에 허용하는 최대 시간
const checkTimeout = 30 * time.Second

// LicenseChecker 설정된 라이선스 키를 검증합니다.
type LicenseChecker interface {
	Verify(ctx context.Context) tenant.LicenseVerdict
}

// Monitor Cron 스케줄에 따라 라이선스를 검증합니다.
type Monitor struct {
	timeSpec string

	checker LicenseChecker

	notificationSender contract.NotificationSender

	cron *cron.Cron

	// checksWG 시작 직후 수행하는 첫 검증 고루틴
	checksWG sync.WaitGroup

	// lastValid 마지막으로 관측한 라이선스 상태. 첫 검증 전에는 nil입니다.
	lastValid *bool
	stateMu   sync.Mutex

	running   bool
	runningMu sync.Mutex
}

var _ contract.Service = (*Monitor)(nil)

// NewService 새로운 Monitor를 생성합니다.
func NewService(cfg config.MonitorConfig, checker LicenseChecker, notificationSender contract.NotificationSender) *Monitor {
	if checker == nil {
		panic("monitor: LicenseChecker는 필수입니다")
	}
	if notificationSender == nil {
		panic("monitor: NotificationSender는 필수입니다")
	}

	timeSpec := cfg.TimeSpec
	if timeSpec == "" {
		timeSpec = config.DefaultMonitorTimeSpec
	}

	return &Monitor{
		timeSpec:           timeSpec,
		checker:            checker,
		notificationSender: notificationSender,
	}
}

// Start 스케줄러를 시작하고 즉시 한 번 검증합니다.
func (m *Monitor) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: 라이선스 모니터 초기화 프로세스를 시작합니다")

	if m.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("라이선스 모니터가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// - StandardParser: 초 단위 필드를 포함하는 6필드 표현식
	// - Recover: 검증 중 panic이 발생해도 스케줄러는 유지
	// - SkipIfStillRunning: 이전 검증이 끝나지 않았으면 이번 회차는 건너뜀
	cronLogger := cron.VerbosePrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cronLogger),
		cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		),
	)

	if _, err := c.AddFunc(m.timeSpec, m.check); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(m.timeSpec, err)
	}

	m.cron = c
	m.cron.Start()
	m.running = true

	m.checksWG.Add(1)
	go func() {
		defer m.checksWG.Done()
		m.check()
	}()

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": m.timeSpec,
	}).Info("서비스 시작 완료: 라이선스 모니터가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		m.Stop()
	}()

	return nil
}

// Stop 스케줄러를 중지하고 진행 중인 검증이 끝날 때까지 기다립니다.
func (m *Monitor) Stop() {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	if !m.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: 라이선스 모니터 중지 시그널을 수신했습니다")

	<-m.cron.Stop().Done()
	m.checksWG.Wait()

	m.cron = nil
	m.running = false

	applog.WithComponent(component).Info("라이선스 모니터 종료 완료")
}

// check 라이선스를 한 번 검증하고 상태가 바뀌었으면 알립니다.
//
// 서비스 종료 시 cron.Stop이 진행 중인 검증을 기다리므로 서비스 context와 무관한 context를 사용합니다.
func (m *Monitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	verdict := m.checker.Verify(ctx)

	if verdict.Valid {
		tenant.LicenseValid.Set(1)
	} else {
		tenant.LicenseValid.Set(0)
	}

	fields := applog.Fields{
		"valid":     verdict.Valid,
		"tenant_id": verdict.TenantID,
	}
	if verdict.Reason != "" {
		fields["reason"] = verdict.Reason
	}
	applog.WithComponentAndFields(component, fields).Debug("라이선스 정기 검증 완료")

	if !m.transition(verdict.Valid) {
		return
	}

	if verdict.Valid {
		message := fmt.Sprintf("라이선스가 정상으로 복구되었습니다 (테넌트: %s)%s", verdict.TenantID, mark.Recovered.WithSpace())
		applog.WithComponentAndFields(component, fields).Info(message)
		if err := m.notificationSender.NotifyDefault(message); err != nil {
			m.logNotifyFailure(err)
		}
		return
	}

	message := fmt.Sprintf("라이선스가 유효하지 않아 대체 웹사이트로 서비스 중입니다 (사유: %s)%s", reasonOrUnknown(verdict.Reason), mark.Alert.WithSpace())
	applog.WithComponentAndFields(component, fields).Warn(message)
	if err := m.notificationSender.NotifyDefaultWithError(message); err != nil {
		m.logNotifyFailure(err)
	}
}

// transition 관측값을 기록하고 알림이 필요한 상태 변화인지 반환합니다.
// 첫 관측은 무효일 때만 알립니다.
func (m *Monitor) transition(valid bool) bool {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	prev := m.lastValid
	m.lastValid = &valid

	if prev == nil {
		return !valid
	}
	return *prev != valid
}

func (m *Monitor) logNotifyFailure(err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"error": err,
	}).Warn("라이선스 상태 변화 알림 전송에 실패했습니다")
}

func reasonOrUnknown(reason string) string {
	if reason == "" {
		return "알 수 없음"
	}
	return reason
}
