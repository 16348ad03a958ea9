package app

import (
	"github.com/gin-gonic/gin"
)

func setError(c *gin.Context, errno int, errmsg string) {
	c.Set("errno", errno)
	c.Set("errmsg", errmsg)
}

func setMap(c *gin.Context, mp map[string]interface{}) {
	for k, v := range mp {
		c.Set(k, v)
	}
}

//页面出错时渲染统一的错误页
func renderError(c *gin.Context, code int, msg string) {
	renderPage(c, code, "error.html", gin.H{
		"status":  code,
		"message": msg,
	})
}

//页面公用的数据: 当前用户和csrf token
func renderPage(c *gin.Context, code int, name string, data gin.H) {
	if _, ok := data["user"]; !ok {
		data["user"] = identityOrNil(c)
	}
	data["csrf"] = c.GetString(CSRF_KEY)
	c.HTML(code, name, data)
}

func identityOrNil(c *gin.Context) *Identity {
	who, _ := currentUser(c)
	return who
}
