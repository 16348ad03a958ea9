package dao

import (
	"QuizContest/model"
	"fmt"
	"log"
)

type (
	Submission = model.Submission
)

//逐字节比较, 不做大小写和空白处理
func Judge(answer string, p *Problem) bool {
	return answer == p.Answer
}

//记录一次提交, 判定结果在这里固定下来
//题目以事务里读到的数据库行为准, p会被刷新; 题目已被删除时返回ErrNotFound
func NewSubmission(userName string, p *Problem, answer string) (*Submission, error) {
	s := &Submission{
		UserName:        userName,
		ProblemID:       p.ID,
		SubmittedAnswer: answer,
	}
	session := engine.NewSession()
	defer session.Close()
	if err := session.Begin(); err != nil {
		return nil, err
	}
	fresh := new(Problem)
	has, err := session.ID(p.ID).Get(fresh)
	if err != nil {
		session.Rollback()
		return nil, fmt.Errorf("get problem %d: %w", p.ID, err)
	}
	if !has {
		session.Rollback()
		if err := DeleteFromRedis(&ProblemDao{ID: p.ID}); err != nil {
			log.Printf("drop stale problem cache %d: %v", p.ID, err)
		}
		return nil, ErrNotFound
	}
	s.IsCorrect = Judge(answer, fresh)
	if _, err := session.InsertOne(s); err != nil {
		session.Rollback()
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	if err := session.Commit(); err != nil {
		return nil, err
	}
	//缓存和数据库不一致时清掉缓存
	if fresh.Title != p.Title || fresh.Description != p.Description || fresh.Answer != p.Answer {
		if err := DeleteFromRedis(&ProblemDao{ID: p.ID}); err != nil {
			log.Printf("drop stale problem cache %d: %v", p.ID, err)
		}
	}
	*p = *fresh
	if s.IsCorrect {
		if err := invalidateLeaderboard(); err != nil {
			log.Printf("leaderboard invalidate %q: %v", userName, err)
		}
	}
	return s, nil
}

//l, r 为从1开始的闭区间, 按id倒序
func SearchSubmissions(l, r int64, rules []string, values []interface{}) ([]Submission, error) {
	ss := make([]Submission, 0)
	if l < 1 {
		l = 1
	}
	if r < l {
		return ss, nil
	}
	session := engine.Desc("id").Limit(int(r-l+1), int(l-1))
	if len(rules) > 0 {
		session = session.Where(ToSqlConditions(rules), values...)
	}
	if err := session.Find(&ss); err != nil {
		return nil, err
	}
	return ss, nil
}

//提交总数
func CountSubmissions() (int64, error) {
	return engine.Count(new(Submission))
}
