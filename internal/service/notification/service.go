// Package notification 운영자 알림 서비스를 제공합니다.
//
// 텔레그램이 설정되어 있으면 텔레그램 Notifier를, 그렇지 않으면 로그로만 남기는 Notifier를 사용합니다.
package notification

import (
	"context"
	"strings"
	"sync"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/contract"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/notifier"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/notifier/telegram"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
)

// NotifierFactory 설정으로부터 Notifier를 생성합니다.
type NotifierFactory func(appConfig *config.AppConfig) (notifier.Notifier, error)

// NewNotifier 설정에 맞는 기본 Notifier를 생성합니다.
func NewNotifier(appConfig *config.AppConfig) (notifier.Notifier, error) {
	if !appConfig.Notifier.Telegram.Enabled {
		return notifier.NewNoop(), nil
	}
	return telegram.New(appConfig.Notifier.Telegram, appConfig.Debug)
}

// Service 운영자 알림 서비스입니다.
type Service struct {
	appConfig *config.AppConfig

	notifierFactory NotifierFactory

	defaultNotifier notifier.Notifier

	// notifierStopWG Notifier 워커의 종료를 대기하는 WaitGroup
	notifierStopWG sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

var (
	_ contract.Service                   = (*Service)(nil)
	_ contract.NotificationSender        = (*Service)(nil)
	_ contract.NotificationHealthChecker = (*Service)(nil)
)

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig) *Service {
	return &Service{
		appConfig:       appConfig,
		notifierFactory: NewNotifier,
	}
}

// SetNotifierFactory Notifier 생성 방식을 교체합니다. Start 이전에 호출해야 합니다.
func (s *Service) SetNotifierFactory(factory NotifierFactory) {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	s.notifierFactory = factory
}

// Start 기본 Notifier를 생성하고 워커를 실행합니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	n, err := s.notifierFactory(s.appConfig)
	if err != nil {
		defer serviceStopWG.Done()
		return apperrors.Wrap(err, apperrors.Internal, "Notifier 초기화 중 에러가 발생했습니다")
	}

	s.defaultNotifier = n
	s.running = true

	s.notifierStopWG.Add(1)
	go func() {
		defer s.notifierStopWG.Done()
		n.Run(serviceStopCtx)
	}()

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"notifier_id": n.ID(),
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	// Notifier는 남은 메시지를 모두 보낸 뒤 종료된다.
	s.notifierStopWG.Wait()

	s.runningMu.Lock()
	s.running = false
	s.defaultNotifier = nil
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// NotifyDefault 기본 알림 채널로 메시지를 보냅니다.
// 반환값은 대기열 등록 여부이며 실제 전송 성공 여부는 아닙니다.
func (s *Service) NotifyDefault(message string) error {
	return s.notify(message, false)
}

// NotifyDefaultWithError 기본 알림 채널로 "에러" 메시지를 보냅니다.
// 서버 장애나 라이선스 만료처럼 운영자의 주의가 필요한 상황에 사용합니다.
func (s *Service) NotifyDefaultWithError(message string) error {
	return s.notify(message, true)
}

func (s *Service) notify(message string, errorOccurred bool) error {
	if strings.TrimSpace(message) == "" {
		return contract.ErrMessageRequired
	}

	s.runningMu.Lock()
	n := s.defaultNotifier
	s.runningMu.Unlock()

	if n == nil {
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceNotRunning)
		return ErrServiceNotRunning
	}

	// 대기열이 가득 찬 경우 최대 enqueueTimeout 동안 블로킹되므로 락 밖에서 호출한다.
	if !n.Notify(message, errorOccurred) {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"notifier_id":    n.ID(),
			"error_occurred": errorOccurred,
		}).Warn(constants.LogMsgNotifyRejected)
		return ErrNotifyRejected
	}

	return nil
}

// Health 알림 서비스가 메시지를 받을 수 있는 상태인지 확인합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	n := s.defaultNotifier
	s.runningMu.Unlock()

	if n == nil {
		return ErrServiceNotRunning
	}

	select {
	case <-n.Done():
		return ErrNotifierStopped
	default:
		return nil
	}
}
