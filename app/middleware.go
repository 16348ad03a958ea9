package app

import (
	"QuizContest/dao"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//中间件

const (
	REQUEST_ID_HEADER = "X-Request-ID"
	REQUEST_ID_KEY    = "request_id"
)

//请求id和耗时日志
func requestLogger(c *gin.Context) {
	id := c.GetHeader(REQUEST_ID_HEADER)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(REQUEST_ID_HEADER, id)
	c.Set(REQUEST_ID_KEY, id)
	start := time.Now()
	c.Next()
	log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}

//把session里的用户放进请求上下文
func loadIdentity(c *gin.Context) {
	if id := getUserID(c); id != 0 {
		c.Set(IDENTITY_KEY, &Identity{ID: id, Username: getUserName(c)})
	}
	c.Next()
}

//验证是否登陆, 未登录或用户已被删除时跳转到登录页
func AuthLogin(c *gin.Context) {
	who, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	exists, err := dao.UserExists(who.ID)
	if err != nil {
		log.Printf("check user %d: %v", who.ID, err)
		renderError(c, http.StatusInternalServerError, "internal error")
		c.Abort()
		return
	}
	if !exists {
		if err := deleteSession(c); err != nil {
			log.Printf("clear session: %v", err)
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

//管理员验证
func AuthAdmin(c *gin.Context) {
	who, ok := currentUser(c)
	if !ok {
		setError(c, http.StatusUnauthorized, "not logged in")
		c.Abort()
		return
	}
	isAdmin, err := dao.IsAdmin(who.ID)
	if err != nil {
		log.Printf("check admin %d: %v", who.ID, err)
		setError(c, http.StatusInternalServerError, "internal error")
		c.Abort()
		return
	}
	if !isAdmin {
		setError(c, http.StatusForbidden, "permission denied")
		c.Abort()
	}
}

//handler只往c里Set, 这里统一打包成json返回; errno同时作为状态码
func jsonResponse(c *gin.Context) {
	c.Next()
	if c.Writer.Written() {
		return
	}
	status := http.StatusOK
	if errno, ok := c.Get("errno"); ok {
		status = errno.(int)
	}
	body := make(gin.H, len(c.Keys))
	for k, v := range c.Keys {
		switch k {
		case sessions.DefaultKey, IDENTITY_KEY, REQUEST_ID_KEY, CSRF_KEY:
			continue
		}
		body[k] = v
	}
	c.JSON(status, body)
}
