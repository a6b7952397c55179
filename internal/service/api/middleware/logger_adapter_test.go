package middleware

import (
	"bytes"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	return NewLogger(l), buf
}

func TestLogger_LevelMapping(t *testing.T) {
	tests := []struct {
		echoLevel log.Lvl
		appLevel  logrus.Level
	}{
		{log.DEBUG, logrus.DebugLevel},
		{log.INFO, logrus.InfoLevel},
		{log.WARN, logrus.WarnLevel},
		{log.ERROR, logrus.ErrorLevel},
	}

	for _, tt := range tests {
		logger, _ := newBufferedLogger()

		logger.SetLevel(tt.echoLevel)
		assert.Equal(t, tt.appLevel, logger.Logger.GetLevel())
		assert.Equal(t, tt.echoLevel, logger.Level())
	}
}

func TestLogger_UnmappedLevels(t *testing.T) {
	logger, _ := newBufferedLogger()
	logger.Logger.SetLevel(logrus.TraceLevel)
	assert.Equal(t, log.OFF, logger.Level())

	// OFF는 무시되어 기존 레벨이 유지된다.
	logger.SetLevel(log.OFF)
	assert.Equal(t, logrus.TraceLevel, logger.Logger.GetLevel())
}

func TestLogger_Methods(t *testing.T) {
	tests := []struct {
		name   string
		action func(Logger)
		expect []string
	}{
		{"Info", func(l Logger) { l.Info("started") }, []string{"started", `"level":"info"`}},
		{"Warnf", func(l Logger) { l.Warnf("retry %d", 3) }, []string{"retry 3", `"level":"warning"`}},
		{"Errorj", func(l Logger) { l.Errorj(log.JSON{"port": 8080}) }, []string{`"port":8080`, `"level":"error"`}},
		{"Debugf", func(l Logger) { l.Debugf("x=%s", "y") }, []string{"x=y", `"level":"debug"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedLogger()
			logger.SetLevel(log.DEBUG)

			tt.action(logger)

			out := buf.String()
			assert.Contains(t, out, `"component":"api.echo"`)
			for _, s := range tt.expect {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestLogger_OutputAndPrefix(t *testing.T) {
	logger, _ := newBufferedLogger()

	var other bytes.Buffer
	logger.SetOutput(&other)
	assert.Equal(t, &other, logger.Output())

	logger.SetPrefix("ignored")
	logger.SetHeader("ignored")
	assert.Equal(t, "", logger.Prefix())
}
