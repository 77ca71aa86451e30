package api

import (
	"gagyebu/config"
)

// SafeErrorMessage release 모드에서는 내부 오류 상세를 클라이언트에 노출하지 않는다
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
