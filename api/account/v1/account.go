// Package v1 holds the request and response messages of account.v1.AccountService.
//
// Messages are plain structs carried as JSON; field names follow the
// camelCase wire names of the account API.
package v1

// ResultReply 软失败结果, status 200 成功, 401 失败
type ResultReply struct {
	Status  int32  `json:"status"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	NickName string `json:"nickName"`
	Email    string `json:"email"`
	Captcha  string `json:"captcha"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginReply struct {
	Id          int64    `json:"id"`
	Username    string   `json:"username"`
	NickName    string   `json:"nickName"`
	Avatar      string   `json:"avatar"`
	Email       string   `json:"email"`
	IsAdmin     bool     `json:"isAdmin"`
	Phone       string   `json:"phone"`
	IsFrozen    bool     `json:"isFrozen"`
	CreateTime  int64    `json:"createTime"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

type InfoRequest struct{}

type InfoReply struct {
	Id          int64    `json:"id"`
	Username    string   `json:"username"`
	NickName    string   `json:"nickName"`
	Avatar      string   `json:"avatar"`
	IsAdmin     bool     `json:"isAdmin"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

type DetailRequest struct{}

type AdminDetailRequest struct {
	Id int64 `json:"id"`
}

// DetailReply 账户全部字段, 不含密码摘要
type DetailReply struct {
	Id         int64  `json:"id"`
	Username   string `json:"username"`
	NickName   string `json:"nickName"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Phone      string `json:"phone"`
	IsAdmin    bool   `json:"isAdmin"`
	IsFrozen   bool   `json:"isFrozen"`
	CreateTime int64  `json:"createTime"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
	Email    string `json:"email"`
	Captcha  string `json:"captcha"`
}

type UpdateProfileRequest struct {
	NickName string `json:"nickName"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Captcha  string `json:"captcha"`
}
