package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/httputil"
)

// ErrRateLimitExceeded IP별 허용 요청 빈도를 초과했을 때 반환하는 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// NewErrPanicRecovered 복구된 패닉 값을 Internal 에러로 감쌉니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
