package dao

import "strings"

//原生sql条件构造, cols 只能来自代码里的白名单
func ToSqlConditions(cols []string) string {
	conds := make([]string, len(cols))
	for i, col := range cols {
		conds[i] = col + " = ?"
	}
	return strings.Join(conds, " and ")
}
