package models

import (
	"time"
)

type Permission struct {
	ID          int64
	Code        string
	Description string
}

type Role struct {
	ID   int64
	Name string
}

type User struct {
	ID         int64
	Username   string
	Password   string
	NickName   string
	Email      string
	Avatar     string
	Phone      string
	IsAdmin    bool
	IsFrozen   bool
	CreateTime time.Time
	UpdateTime time.Time
}
