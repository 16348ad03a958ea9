package dao

import (
	"QuizContest/common"
	"QuizContest/model"
	"fmt"
	"strconv"
	"time"
)

const (
	PROBLEM_REDIS_EXPIRE = 10 * time.Minute //过期后从数据库重新读取
	PROBLEM_KEY_PREFIX   = "problem_"
)

type (
	Problem = model.Problem
)

type ProblemDao struct {
	ID      int64
	Problem *Problem
}

//启动时把所有题目放进redis, 先清掉旧的题目缓存
func problemInitRedis() error {
	if !cacheOn() {
		return nil
	}
	var cursor uint64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, PROBLEM_KEY_PREFIX+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	problems, err := GetProblems()
	if err != nil {
		return err
	}
	for i := range problems {
		if err := PutToRedis(&ProblemDao{Problem: &problems[i]}); err != nil {
			return err
		}
	}
	return nil
}

func (pd *ProblemDao) GetTableName() string {
	return "problem"
}
func (pd *ProblemDao) GetRedisExpire() time.Duration {
	return PROBLEM_REDIS_EXPIRE
}
func (pd *ProblemDao) GetSelf() interface{} {
	if pd.Problem == nil {
		pd.Problem = &Problem{}
	}
	return pd.Problem
}
func (pd *ProblemDao) GetID() int64 {
	if pd.ID == 0 && pd.Problem != nil {
		pd.ID = pd.Problem.ID
	}
	return pd.ID
}
func (pd *ProblemDao) GetRedisKey() string {
	return PROBLEM_KEY_PREFIX + strconv.FormatInt(pd.GetID(), 10)
}

func (pd *ProblemDao) Create() error {
	return Create(pd)
}

//只允许修改 title, description, answer; 已有提交的判定结果不变
func (pd *ProblemDao) Update(mp common.H) error {
	cols := make(common.H)
	for _, k := range []string{"title", "description", "answer"} {
		if v, ok := mp[k]; ok {
			cols[k] = v
		}
	}
	return UpdateCols(pd, cols)
}

//删除题目以及它的所有提交
func (pd *ProblemDao) Delete() error {
	id := pd.GetID()
	session := engine.NewSession()
	defer session.Close()
	if err := session.Begin(); err != nil {
		return err
	}
	if _, err := session.Where("problem_id = ?", id).Delete(new(model.Submission)); err != nil {
		session.Rollback()
		return fmt.Errorf("delete submissions of problem %d: %w", id, err)
	}
	num, err := session.ID(id).Delete(new(Problem))
	if err != nil {
		session.Rollback()
		return fmt.Errorf("delete problem %d: %w", id, err)
	}
	if num == 0 {
		session.Rollback()
		return ErrNotFound
	}
	if err := session.Commit(); err != nil {
		return err
	}
	if err := DeleteFromRedis(pd); err != nil {
		return err
	}
	//删除的提交里可能有正确的
	return invalidateLeaderboard()
}

//按id查找题目, 不存在时返回ErrNotFound
func GetProblem(id int64) (*Problem, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	pd := &ProblemDao{ID: id}
	if err := GetSelfAll(pd); err != nil {
		return nil, err
	}
	return pd.Problem, nil
}

//按创建顺序获取所有题目
func GetProblems() ([]Problem, error) {
	problems := make([]Problem, 0)
	if err := engine.Asc("id").Find(&problems); err != nil {
		return nil, err
	}
	return problems, nil
}

func NewProblem(title, description, answer string) (*Problem, error) {
	pd := &ProblemDao{Problem: &Problem{
		Title:       title,
		Description: description,
		Answer:      answer,
	}}
	if err := pd.Create(); err != nil {
		return nil, err
	}
	return pd.Problem, nil
}
