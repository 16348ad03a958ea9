package model

import (
	"time"
)

type User struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`                   //创建时间
	Username  string    `json:"username" xorm:"varchar(150) unique notnull"` //用户名
	Password  string    `json:"-" xorm:"varchar(128) notnull"`               //bcrypt哈希
	IsAdmin   bool      `json:"is_admin"`                                    //管理员可以管理题目
}
