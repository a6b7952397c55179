package log

import "github.com/sirupsen/logrus"

// silentFormatter 아무것도 출력하지 않는 포맷터입니다. 실제 포맷팅은 hook에서 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
