package app

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	USERNAME_KEY = "who"
	ID_KEY       = "which"
	IDENTITY_KEY = "identity" //请求上下文里的当前用户
)

//当前登录的用户, 由loadIdentity从session中取出放进请求上下文
type Identity struct {
	ID       int64
	Username string
}

func getUserID(c *gin.Context) int64 {
	session := sessions.Default(c)
	id, _ := session.Get(ID_KEY).(int64)
	return id
}

//根据session获取用户名
func getUserName(c *gin.Context) string {
	session := sessions.Default(c)
	username, _ := session.Get(USERNAME_KEY).(string)
	return username
}

//设置session
func setSession(c *gin.Context, val string, id int64) error {
	session := sessions.Default(c)
	session.Set(USERNAME_KEY, val)
	session.Set(ID_KEY, id)
	return session.Save()
}

//删除session, 没有登录时也可以调用
func deleteSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(USERNAME_KEY)
	session.Delete(ID_KEY)
	return session.Save()
}

//根据请求上下文判断是否登陆
func currentUser(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(IDENTITY_KEY)
	if !ok {
		return nil, false
	}
	who, ok := v.(*Identity)
	return who, ok && who != nil
}
