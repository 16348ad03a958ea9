package app

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CSRF_KEY    = "csrf"         //session和请求上下文里的token
	CSRF_FIELD  = "csrf_token"   //表单字段
	CSRF_HEADER = "X-CSRF-Token" //json接口用请求头
)

//每个session一个token, 非GET请求必须带上
func csrfProtect(c *gin.Context) {
	session := sessions.Default(c)
	token, _ := session.Get(CSRF_KEY).(string)
	if token == "" {
		token = uuid.NewString()
		session.Set(CSRF_KEY, token)
		if err := session.Save(); err != nil {
			log.Printf("save csrf token: %v", err)
		}
	}
	c.Set(CSRF_KEY, token)
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		c.Next()
		return
	}
	got := c.GetHeader(CSRF_HEADER)
	if got == "" {
		got = c.PostForm(CSRF_FIELD)
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
		if strings.HasPrefix(c.Request.URL.Path, "/admin/") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errno": http.StatusForbidden, "errmsg": "invalid csrf token"})
			return
		}
		renderError(c, http.StatusForbidden, "invalid csrf token")
		c.Abort()
		return
	}
	c.Next()
}

//给脚本和接口调用者取token
func csrfToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{CSRF_FIELD: c.GetString(CSRF_KEY)})
}
