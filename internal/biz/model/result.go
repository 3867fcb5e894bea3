package model

const (
	StatusSuccess = 200
	StatusFailure = 401
)

// Result 软失败结果: 存储层保存失败时不返回 error, 而是 Status=StatusFailure
type Result struct {
	Status  int
	Message string
}

func Succeeded(msg string) Result {
	return Result{Status: StatusSuccess, Message: msg}
}

func Failed(msg string) Result {
	return Result{Status: StatusFailure, Message: msg}
}

func (r Result) OK() bool {
	return r.Status == StatusSuccess
}
