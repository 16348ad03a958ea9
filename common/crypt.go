package common

import (
	"golang.org/x/crypto/bcrypt"
)

//bcrypt自带随机盐, 测试里可以调低
var PasswordCost = bcrypt.DefaultCost

//用户密码加盐哈希, 超过72字节的密码会返回错误
func HashPassword(pwd string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pwd), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash string, pwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd)) == nil
}
