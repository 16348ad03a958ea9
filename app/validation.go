package app

//对请求的参数进行验证
import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

var (
	vd    *validator.Validate
	trans ut.Translator
)

func init() {
	en_us := en.New()
	uni := ut.New(en_us, en_us)
	trans, _ = uni.GetTranslator("en")
	vd = validator.New()
	if err := en_translations.RegisterDefaultTranslations(vd, trans); err != nil {
		panic(err)
	}
	//用户名不能包含空白字符
	if err := vd.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \n\t\r")
	}); err != nil {
		panic(err)
	}
	if err := vd.RegisterTranslation("nospace", trans, func(ut ut.Translator) error {
		return ut.Add("nospace", "{0} must not contain whitespace", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		msg, _ := ut.T("nospace", fe.Field())
		return msg
	}); err != nil {
		panic(err)
	}
}

//按validate标签验证, 失败时返回翻译后的信息, 每条一行
func validate(s interface{}) (bool, string) {
	errs := vd.Struct(s)
	if errs == nil {
		return true, ""
	}
	verrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return false, errs.Error()
	}
	msgs := make([]string, len(verrs))
	for i, err := range verrs {
		msgs[i] = err.Translate(trans)
	}
	return false, strings.Join(msgs, "\n")
}

//登陆参数, 不做格式验证, 错误统一提示
type loginValidtor struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

//注册参数, 不限制密码强度
type registerValidtor struct {
	Username        string `form:"username" validate:"required,lte=150,nospace"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
}

func (rv *registerValidtor) isOk() (bool, string) {
	return validate(rv)
}

type submitValidtor struct {
	ProblemID string `form:"problem_id"`
	Answer    string `form:"answer" validate:"lte=100"`
}

func (sv *submitValidtor) isOk() (bool, string) {
	return validate(sv)
}

//新建题目
type problemValidtor struct {
	Title       string `form:"title" json:"title" validate:"required,lte=200"`
	Description string `form:"description" json:"description"`
	Answer      string `form:"answer" json:"answer" validate:"required,lte=100"`
}

func (pv *problemValidtor) isOk() (bool, string) {
	return validate(pv)
}

//修改题目, 只修改传了的字段
type updateProblemValidtor struct {
	Title       *string `form:"title" json:"title" validate:"omitempty,required,lte=200"`
	Description *string `form:"description" json:"description"`
	Answer      *string `form:"answer" json:"answer" validate:"omitempty,required,lte=100"`
}

func (uv *updateProblemValidtor) isOk() (bool, string) {
	//omitempty会跳过空字符串, 这里单独检查
	if uv.Title != nil && *uv.Title == "" {
		return false, "Title is a required field"
	}
	if uv.Answer != nil && *uv.Answer == "" {
		return false, "Answer is a required field"
	}
	return validate(uv)
}

func (uv *updateProblemValidtor) toMap() map[string]interface{} {
	mp := make(map[string]interface{})
	if uv.Title != nil {
		mp["title"] = *uv.Title
	}
	if uv.Description != nil {
		mp["description"] = *uv.Description
	}
	if uv.Answer != nil {
		mp["answer"] = *uv.Answer
	}
	return mp
}
