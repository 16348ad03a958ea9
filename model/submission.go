package model

import "time"

//提交记录只追加, 不修改
type Submission struct {
	ID              int64     `json:"id" xorm:"pk autoincr"`
	SubmittedAt     time.Time `json:"submitted_at" xorm:"created"`
	UserName        string    `json:"user_name" xorm:"varchar(100) notnull index"` //提交时的用户名快照, 不是外键
	ProblemID       int64     `json:"problem_id" xorm:"notnull index"`
	SubmittedAnswer string    `json:"submitted_answer" xorm:"varchar(100)"`
	IsCorrect       bool      `json:"is_correct" xorm:"index"` //创建时判定, 之后不再重判
}
