package app

import (
	"QuizContest/dao"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ERR_LOGIN_FAILED      = "username or password is incorrect"
	ERR_PASSWORD_MISMATCH = "passwords do not match"
	ERR_USERNAME_USED     = "username already in use"
	ERR_PASSWORD_TOO_LONG = "password is too long"

	MAX_PASSWORD_BYTES = 72 //bcrypt的上限
)

func loginPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "login.html", gin.H{})
}

//登陆请求, 失败时不说明是哪一项错误
func login(c *gin.Context) {
	form := new(loginValidtor)
	if err := c.ShouldBind(form); err != nil {
		renderLoginError(c, form, ERR_LOGIN_FAILED)
		return
	}
	u, ok, err := dao.Authenticate(form.Username, form.Password)
	if err != nil {
		log.Printf("login %q: %v", form.Username, err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		renderLoginError(c, form, ERR_LOGIN_FAILED)
		return
	}
	if err := setSession(c, u.Username, u.ID); err != nil {
		log.Printf("save session: %v", err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func renderLoginError(c *gin.Context, form *loginValidtor, msg string) {
	renderPage(c, http.StatusOK, "login.html", gin.H{
		"error":    msg,
		"username": form.Username,
	})
}

func logout(c *gin.Context) {
	if err := deleteSession(c); err != nil {
		log.Printf("clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

func registerPage(c *gin.Context) {
	renderPage(c, http.StatusOK, "register.html", gin.H{})
}

//注册请求: 两次密码不一致 > 用户名已存在 > 用户名格式, 成功后直接登录
func register(c *gin.Context) {
	form := new(registerValidtor)
	if err := c.ShouldBind(form); err != nil {
		renderRegisterError(c, form, err.Error())
		return
	}
	if form.Password != form.PasswordConfirm {
		renderRegisterError(c, form, ERR_PASSWORD_MISMATCH)
		return
	}
	exists, err := dao.UsernameExists(form.Username)
	if err != nil {
		log.Printf("register %q: %v", form.Username, err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if exists {
		renderRegisterError(c, form, ERR_USERNAME_USED)
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		renderRegisterError(c, form, errInfo)
		return
	}
	if len(form.Password) > MAX_PASSWORD_BYTES {
		renderRegisterError(c, form, ERR_PASSWORD_TOO_LONG)
		return
	}
	u, err := dao.CreateUser(form.Username, form.Password, false)
	if err != nil {
		//并发注册同名时唯一索引会拒绝插入
		if exists, _ := dao.UsernameExists(form.Username); exists {
			renderRegisterError(c, form, ERR_USERNAME_USED)
			return
		}
		log.Printf("create user %q: %v", form.Username, err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if err := setSession(c, u.Username, u.ID); err != nil {
		log.Printf("save session: %v", err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func renderRegisterError(c *gin.Context, form *registerValidtor, msg string) {
	renderPage(c, http.StatusOK, "register.html", gin.H{
		"error":    msg,
		"username": form.Username,
	})
}
