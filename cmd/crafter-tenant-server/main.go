package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/version"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/contract"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/monitor"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/tenant"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Crafter Tenant Server API
// @version 1.0.0
// @description 라이선스 검증을 통해 현재 테넌트의 웹사이트를 결정하고, 그로부터 파생된 애플리케이션 설정과 PWA 매니페스트를 제공하는 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 현재 웹사이트 조회 (/website)
// @description - 애플리케이션 설정 (/app-config)
// @description - PWA 매니페스트 (/manifest)
// @description
// @description ## 대체 웹사이트
// @description 라이선스가 없거나 유효하지 않으면 설정된 대체 웹사이트를 반환하며 isExpired=true로 표시합니다.
// @description /app-config와 /manifest는 어떤 실패에도 기본 설정으로 200을 반환합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const banner = `
   ____            __ _              _____                      _
  / ___|_ __ __ _ / _| |_ ___ _ __  |_   _|__ _ __   __ _ _ __ | |_
 | |   | '__/ _' | |_| __/ _ \ '__|   | |/ _ \ '_ \ / _' | '_ \| __|
 | |___| | | (_| |  _| ||  __/ |      | |  __/ | | | (_| | | | | |_
  \____|_|  \__,_|_|  \__\___|_|      |_|\___|_| |_|\__,_|_| |_|\__|
                                                              %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	configFile := config.DefaultFilename
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 3. 테넌트 해석 파이프라인
	userAgent := version.UserAgent(config.AppName)

	verifier := tenant.NewLicenseVerifier(appConfig.License, fetcher.New(fetcher.Options{
		Timeout:   appConfig.License.Timeout,
		MaxBytes:  appConfig.License.MaxResponseBytes,
		UserAgent: userAgent,
	}))
	resolver := tenant.NewWebsiteResolver(appConfig.Backend, fetcher.New(fetcher.Options{
		Timeout:   appConfig.Backend.Timeout,
		MaxBytes:  appConfig.Backend.MaxResponseBytes,
		UserAgent: userAgent,
	}))
	pipeline := tenant.NewPipeline(verifier, resolver, appConfig.License.Key, appConfig.Website.FallbackID)

	// 4. 서비스 생성 (notification -> monitor -> api)
	notificationService := notification.NewService(appConfig)

	services := []contract.Service{notificationService}

	if appConfig.Monitor.Enabled {
		services = append(services, monitor.NewService(appConfig.Monitor, pipeline, notificationService))
	}

	// 헬스체크는 응답 여부만 보므로 상태 코드 검사가 없는 체인을 사용한다.
	healthFetcher := fetcher.NewLoggingFetcher(fetcher.NewHTTPFetcher(appConfig.Backend.Timeout, userAgent))
	checkers := api.NewDependencyCheckers(appConfig, healthFetcher, notificationService)

	services = append(services, api.NewService(appConfig, pipeline, notificationService, buildInfo, checkers...))

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 5. 서비스 시작
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신했습니다. 서비스를 정리합니다")
	cancel()
	serviceStopWG.Wait()

	applog.WithComponent("main").Info("서버가 정상적으로 종료되었습니다")
}
