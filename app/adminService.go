package app

import (
	"QuizContest/common"
	"QuizContest/dao"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

//管理员查看所有题目, 包括答案
func getProblems(c *gin.Context) {
	problems, err := dao.GetProblems()
	if err != nil {
		log.Printf("list problems: %v", err)
		setError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Set("data", problems)
	c.Set("total", len(problems))
}

func newProblem(c *gin.Context) {
	form := new(problemValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, http.StatusBadRequest, errInfo)
		return
	}
	p, err := dao.NewProblem(form.Title, form.Description, form.Answer)
	if err != nil {
		log.Printf("create problem: %v", err)
		setError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Set("data", p)
}

func updateProblem(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		setError(c, http.StatusNotFound, "problem not found")
		return
	}
	form := new(updateProblemValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, http.StatusBadRequest, errInfo)
		return
	}
	pd := &dao.ProblemDao{ID: id}
	mp := form.toMap()
	var err error
	if len(mp) == 0 {
		err = dao.GetSelfAll(pd)
	} else {
		err = pd.Update(mp)
	}
	if err != nil {
		handleDaoError(c, err, "problem not found")
		return
	}
	c.Set("data", pd.Problem)
}

//删除题目以及它的提交
func delProblem(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		setError(c, http.StatusNotFound, "problem not found")
		return
	}
	pd := &dao.ProblemDao{ID: id}
	if err := pd.Delete(); err != nil {
		handleDaoError(c, err, "problem not found")
		return
	}
	c.Set("msg", "deleted")
}

//提交记录, 可以按题目和用户名筛选, l r 为从1开始的区间
func searchSubmissions(c *gin.Context) {
	l := common.StrToInt64(c.DefaultQuery("l", "1"))
	r := common.StrToInt64(c.DefaultQuery("r", "50"))
	rules := make([]string, 0)
	values := make([]interface{}, 0)
	if pid := c.Query("problem_id"); pid != "" {
		id, ok := common.ParseID(pid)
		if !ok {
			setError(c, http.StatusBadRequest, "invalid problem_id")
			return
		}
		rules = append(rules, "problem_id")
		values = append(values, id)
	}
	if name := c.Query("user_name"); name != "" {
		rules = append(rules, "user_name")
		values = append(values, name)
	}
	ss, err := dao.SearchSubmissions(l, r, rules, values)
	if err != nil {
		log.Printf("search submissions: %v", err)
		setError(c, http.StatusInternalServerError, "internal error")
		return
	}
	total, err := dao.CountSubmissions()
	if err != nil {
		log.Printf("count submissions: %v", err)
		setError(c, http.StatusInternalServerError, "internal error")
		return
	}
	data := make([]common.H, len(ss))
	for idx, item := range ss {
		data[idx] = common.H{
			"id":               item.ID,
			"user_name":        item.UserName,
			"problem_id":       item.ProblemID,
			"submitted_answer": item.SubmittedAnswer,
			"is_correct":       item.IsCorrect,
			"submitted_at":     common.TimeToStr(item.SubmittedAt),
		}
	}
	setMap(c, common.H{"data": data, "l": l, "r": r, "total": total})
}

//所有用户, 不含密码
func getUsers(c *gin.Context) {
	users, err := dao.GetUsers()
	if err != nil {
		log.Printf("list users: %v", err)
		setError(c, http.StatusInternalServerError, "internal error")
		return
	}
	total, err := dao.CountUsers()
	if err != nil {
		log.Printf("count users: %v", err)
		setError(c, http.StatusInternalServerError, "internal error")
		return
	}
	setMap(c, common.H{"data": users, "total": total})
}

//切换管理员权限, 不能修改自己
func toggleAdmin(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		setError(c, http.StatusNotFound, "user not found")
		return
	}
	if who, _ := currentUser(c); who.ID == id {
		setError(c, http.StatusForbidden, "cannot change your own admin flag")
		return
	}
	u, err := dao.ToggleAdmin(id)
	if err != nil {
		handleDaoError(c, err, "user not found")
		return
	}
	c.Set("data", u)
}

//删除用户, 不能删除自己; 提交记录保留
func delUser(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		setError(c, http.StatusNotFound, "user not found")
		return
	}
	if who, _ := currentUser(c); who.ID == id {
		setError(c, http.StatusForbidden, "cannot delete yourself")
		return
	}
	if err := dao.DeleteUser(id); err != nil {
		handleDaoError(c, err, "user not found")
		return
	}
	c.Set("msg", "deleted")
}

func handleDaoError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, dao.ErrNotFound) {
		setError(c, http.StatusNotFound, notFound)
		return
	}
	log.Printf("admin: %v", err)
	setError(c, http.StatusInternalServerError, "internal error")
}
