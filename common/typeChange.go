package common

import (
	"strconv"
	"time"
)

const (
	TIME_FORMAT = "2006-01-02 15:04:05"
)

//下面转换不进行错误处理

//字符串转64位整型
func StrToInt64(s string) int64 {
	ret, _ := strconv.ParseInt(s, 10, 64)
	return ret
}

func StrToBool(s string) bool {
	ret, _ := strconv.ParseBool(s)
	return ret
}

//解析数据库id, 只接受正整数
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func TimeToStr(t time.Time) string {
	return t.Local().Format(TIME_FORMAT)
}
