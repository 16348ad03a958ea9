package model

import (
	"time"
)

type Problem struct {
	ID          int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt   time.Time `json:"created_at" xorm:"created"`
	Title       string    `json:"title" xorm:"varchar(200) notnull"`
	Description string    `json:"description" xorm:"text"`
	Answer      string    `json:"answer" xorm:"varchar(100) notnull"` //精确匹配, 区分大小写, 不去空格
}
