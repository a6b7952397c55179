package middleware

import (
	"io"

	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/gommon/log"
)

const componentEcho = "api.echo"

// echoToAppLevel Echo 로그 레벨과 애플리케이션 로그 레벨의 대응표입니다. OFF는 대응 레벨이 없다.
var echoToAppLevel = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

// Logger Echo 내부 로그(gommon log.Logger 인터페이스)를 애플리케이션 로거로 보내는 어댑터입니다.
// 모든 엔트리에는 component=api.echo 필드가 붙습니다.
type Logger struct {
	*applog.Logger
}

// NewLogger 주어진 애플리케이션 로거를 감싸는 Echo 로거를 생성합니다.
func NewLogger(l *applog.Logger) Logger {
	return Logger{Logger: l}
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", componentEcho)
}

func (l Logger) entryJ(j log.JSON) *applog.Entry {
	return l.entry().WithFields(applog.Fields(j))
}

func (l Logger) Output() io.Writer     { return l.Logger.Out }
func (l Logger) SetOutput(w io.Writer) { l.Logger.SetOutput(w) }

// Prefix와 Header는 로그 포맷을 애플리케이션 로거가 결정하므로 사용하지 않는다.
func (l Logger) Prefix() string   { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level 현재 로그 레벨을 Echo 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF입니다.
func (l Logger) Level() log.Lvl {
	current := l.Logger.GetLevel()
	for lvl, appLvl := range echoToAppLevel {
		if appLvl == current {
			return lvl
		}
	}
	return log.OFF
}

func (l Logger) SetLevel(lvl log.Lvl) {
	if appLvl, ok := echoToAppLevel[lvl]; ok {
		l.Logger.SetLevel(appLvl)
	}
}

func (l Logger) Print(i ...any)                    { l.entry().Print(i...) }
func (l Logger) Printf(format string, args ...any) { l.entry().Printf(format, args...) }
func (l Logger) Printj(j log.JSON)                 { l.entryJ(j).Print() }

func (l Logger) Debug(i ...any)                    { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, args ...any) { l.entry().Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON)                 { l.entryJ(j).Debug() }

func (l Logger) Info(i ...any)                    { l.entry().Info(i...) }
func (l Logger) Infof(format string, args ...any) { l.entry().Infof(format, args...) }
func (l Logger) Infoj(j log.JSON)                 { l.entryJ(j).Info() }

func (l Logger) Warn(i ...any)                    { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, args ...any) { l.entry().Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON)                 { l.entryJ(j).Warn() }

func (l Logger) Error(i ...any)                    { l.entry().Error(i...) }
func (l Logger) Errorf(format string, args ...any) { l.entry().Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON)                 { l.entryJ(j).Error() }

func (l Logger) Fatal(i ...any)                    { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, args ...any) { l.entry().Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON)                 { l.entryJ(j).Fatal() }

func (l Logger) Panic(i ...any)                    { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, args ...any) { l.entry().Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON)                 { l.entryJ(j).Panic() }
