package ecode

// 业务错误码，0表示成功
const (
	Success = 0

	Unknown     = 10001 // 未知错误
	ValidateErr = 10002 // 参数校验失败
	NotFoundErr = 10003 // 资源不存在

	RequireAuthErr = 10401 // 鉴权失败

	UpstreamErr = 20001 // 上游行情接口调用失败
	StoreErr    = 20002 // 本地存储读写失败
)

var messages = map[int]string{
	Success:        "ok",
	Unknown:        "internal error",
	ValidateErr:    "invalid parameter",
	NotFoundErr:    "resource not found",
	RequireAuthErr: "authorization required",
	UpstreamErr:    "upstream request failed",
	StoreErr:       "local store failed",
}

// Text 返回错误码的默认文案
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Unknown]
}
