package app

import (
	"QuizContest/common"
	"QuizContest/dao"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

//题目列表和排行榜
func index(c *gin.Context) {
	problems, err := dao.GetProblems()
	if err != nil {
		log.Printf("list problems: %v", err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	rankings, err := dao.GetRankings()
	if err != nil {
		log.Printf("rankings: %v", err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	renderPage(c, http.StatusOK, "index.html", gin.H{
		"problems": problems,
		"rankings": rankings,
	})
}

//提交答案, 只接受POST; 题目不存在时返回404
func submitAnswer(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	who, _ := currentUser(c)
	form := new(submitValidtor)
	if err := c.ShouldBind(form); err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		renderError(c, http.StatusBadRequest, errInfo)
		return
	}
	id, ok := common.ParseID(form.ProblemID)
	if !ok {
		renderError(c, http.StatusNotFound, "problem not found")
		return
	}
	problem, err := dao.GetProblem(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			renderError(c, http.StatusNotFound, "problem not found")
			return
		}
		log.Printf("get problem %d: %v", id, err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if _, err := dao.NewSubmission(who.Username, problem, form.Answer); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			renderError(c, http.StatusNotFound, "problem not found")
			return
		}
		log.Printf("submit %q to problem %d: %v", who.Username, id, err)
		renderError(c, http.StatusInternalServerError, "internal error")
		return
	}
	renderPage(c, http.StatusOK, "submit_success.html", gin.H{
		"problem": problem,
		"user":    who,
	})
}
