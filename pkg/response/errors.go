package response

import "net/http"

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 资源不存在
	NotFound ResponseCode = 3
	// 唯一约束冲突（重复分享、分类重名等）
	Conflict ResponseCode = 4
	// 未认证
	Unauthorized ResponseCode = 5
	// 权限不足
	Forbidden ResponseCode = 6
	// 服务内部错误
	Internal ResponseCode = 7
)

// HTTPStatus 业务错误码到 HTTP 状态码的映射
// 未知错误码一律按 500 处理
func HTTPStatus(code ResponseCode) int {
	switch code {
	case Success:
		return http.StatusOK
	case ParseError, InvalidParameter, Fail:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

// Error 实现 error 接口，便于在服务层透传
func (be *BusinessError) Error() string {
	if be.Err != nil {
		return be.Msg + ": " + be.Err.Error()
	}
	return be.Msg
}

func (be *BusinessError) Unwrap() error {
	return be.Err
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
