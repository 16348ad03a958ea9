package app

import (
	"QuizContest/common"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

//路由
func NewRouter(cfg *common.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger)
	r.SetHTMLTemplate(loadTemplates())

	maxAge := cfg.Session.MaxAge
	if maxAge == 0 {
		maxAge = common.DEFAULT_SESSION_EXPIRE
	}
	store := cookie.NewStore([]byte(cfg.Session.Secret)) //启用cookie和session
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("contestSession", store))
	r.Use(csrfProtect)
	r.Use(loadIdentity)

	initContestRouters(r)
	initAdminRouters(r)
	r.NoRoute(func(c *gin.Context) {
		renderError(c, http.StatusNotFound, "page not found")
	})
	return r
}

func Run(cfg *common.Config) error {
	r := NewRouter(cfg)
	log.Printf("listening on :%s", cfg.Port)
	return r.Run(":" + cfg.Port)
}

//页面路由, 不需要登录也能访问; 提交答案由AuthLogin重定向到登录页
func initContestRouters(r *gin.Engine) {
	r.GET("/", index)
	r.Any("/submit", AuthLogin, submitAnswer)

	r.GET("/login", loginPage)
	r.POST("/login", login)
	r.GET("/register", registerPage)
	r.POST("/register", register)
	r.GET("/logout", logout)
	r.POST("/logout", logout)
	r.GET("/csrf", csrfToken)
}

//管理员的json接口
func initAdminRouters(R *gin.Engine) {
	g := R.Group("/admin", jsonResponse, AuthAdmin)
	{
		g.GET("problems", getProblems)
		g.POST("problems", newProblem)
		g.POST("problems/:id", updateProblem)
		g.DELETE("problems/:id", delProblem)
		g.GET("submissions", searchSubmissions)
		g.GET("users", getUsers)
		g.POST("users/:id/admin", toggleAdmin)
		g.DELETE("users/:id", delUser)
	}
}
