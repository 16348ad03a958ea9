package dao

import (
	"QuizContest/common"
	"log"
	"sort"

	"github.com/go-redis/redis/v8"
)

const (
	LEADERBOARD_ZSET_KEY    = "leaderboard_zset(user_name)" //user_name按正确提交数
	LEADERBOARD_VERSION_KEY = "leaderboard_version"         //每次正确提交加一, 重建时WATCH
)

//测试时在读完数据库和写入缓存之间插入操作
var afterRankingsRead func()

type Ranking struct {
	UserName     string `json:"user_name"`
	CorrectCount int64  `json:"correct_count"`
}

//正确数降序, 相同时按用户名升序
func sortRankings(rs []Ranking) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].CorrectCount != rs[j].CorrectCount {
			return rs[i].CorrectCount > rs[j].CorrectCount
		}
		return rs[i].UserName < rs[j].UserName
	})
}

func rankingsFromDB() ([]Ranking, error) {
	rows, err := engine.QueryString("select user_name, count(id) as correct_count from submission where is_correct = ? group by user_name", true)
	if err != nil {
		return nil, err
	}
	rs := make([]Ranking, len(rows))
	for i, row := range rows {
		rs[i] = Ranking{UserName: row["user_name"], CorrectCount: common.StrToInt64(row["correct_count"])}
	}
	sortRankings(rs)
	return rs, nil
}

//从数据库统计并写入redis; 期间有新的正确提交时放弃写入, 只返回统计结果
func leaderboardInitRedis() ([]Ranking, error) {
	var rs []Ranking
	err := rdb.Watch(ctx, func(tx *redis.Tx) error {
		var err error
		if rs, err = rankingsFromDB(); err != nil {
			return err
		}
		if afterRankingsRead != nil {
			afterRankingsRead()
		}
		zs := make([]*redis.Z, len(rs))
		for i, r := range rs {
			zs[i] = &redis.Z{Score: float64(r.CorrectCount), Member: r.UserName}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, LEADERBOARD_ZSET_KEY)
			if len(zs) > 0 {
				pipe.ZAdd(ctx, LEADERBOARD_ZSET_KEY, zs...)
			}
			return nil
		})
		return err
	}, LEADERBOARD_VERSION_KEY)
	if err == redis.TxFailedErr {
		return rs, nil
	}
	return rs, err
}

//排行榜有变化, 清掉缓存等下次读取时重建
func invalidateLeaderboard() error {
	if !cacheOn() {
		return nil
	}
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, LEADERBOARD_VERSION_KEY)
		pipe.Del(ctx, LEADERBOARD_ZSET_KEY)
		return nil
	})
	return err
}

//排行榜, 有redis时读sorted set, 否则直接聚合submission表
func GetRankings() ([]Ranking, error) {
	if !cacheOn() {
		return rankingsFromDB()
	}
	zs, err := rdb.ZRevRangeWithScores(ctx, LEADERBOARD_ZSET_KEY, 0, -1).Result()
	if err != nil {
		log.Printf("read leaderboard cache: %v", err)
		return rankingsFromDB()
	}
	if len(zs) > 0 {
		rs := make([]Ranking, len(zs))
		for i, z := range zs {
			name, _ := z.Member.(string)
			rs[i] = Ranking{UserName: name, CorrectCount: int64(z.Score)}
		}
		sortRankings(rs)
		return rs, nil
	}
	rs, err := leaderboardInitRedis()
	if err != nil {
		log.Printf("rebuild leaderboard cache: %v", err)
		if rs == nil {
			return rankingsFromDB()
		}
	}
	return rs, nil
}
