package dao

import (
	"QuizContest/common"
	"QuizContest/model"
	"errors"
	"fmt"
)

type User = model.User

type UserDao struct {
	ID   int64
	User *User
}

//用户不存在时也做一次哈希比较, 让两种失败的耗时接近
var dummyHash, _ = common.HashPassword("dummy password")

func (ud *UserDao) GetTableName() string {
	return "user"
}
func (ud *UserDao) GetSelf() interface{} {
	if ud.User == nil {
		ud.User = &User{}
	}
	return ud.User
}
func (ud *UserDao) GetID() int64 {
	if ud.ID == 0 && ud.User != nil {
		ud.ID = ud.User.ID
	}
	return ud.ID
}

func (ud *UserDao) Create() error {
	return Create(ud)
}

func UsernameExists(name string) (bool, error) {
	return engine.Where("username = ?", name).Exist(new(User))
}

//创建用户, 密码加盐哈希后保存
func CreateUser(name, password string, isAdmin bool) (*User, error) {
	hash, err := common.HashPassword(password)
	if err != nil {
		return nil, err
	}
	ud := &UserDao{
		User: &User{
			Username: name,
			Password: hash,
			IsAdmin:  isAdmin,
		},
	}
	if err := ud.Create(); err != nil {
		return nil, err
	}
	return ud.User, nil
}

//校验用户名和密码, 不区分是哪一项错误
func Authenticate(name, password string) (*User, bool, error) {
	u := new(User)
	has, err := engine.Where("username = ?", name).Get(u)
	if err != nil {
		return nil, false, fmt.Errorf("get user %q: %w", name, err)
	}
	if !has {
		common.CheckPassword(dummyHash, password)
		return nil, false, nil
	}
	if !common.CheckPassword(u.Password, password) {
		return nil, false, nil
	}
	return u, true, nil
}

func IsAdmin(id int64) (bool, error) {
	ud := &UserDao{ID: id}
	if err := GetSelfAll(ud); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return ud.User.IsAdmin, nil
}

func CountUsers() (int64, error) {
	return engine.Count(new(User))
}

func UserExists(id int64) (bool, error) {
	return engine.Where("id = ?", id).Exist(new(User))
}

//按注册顺序获取所有用户
func GetUsers() ([]User, error) {
	users := make([]User, 0)
	if err := engine.Asc("id").Find(&users); err != nil {
		return nil, err
	}
	return users, nil
}

//切换管理员权限, 返回修改后的用户
func ToggleAdmin(id int64) (*User, error) {
	ud := &UserDao{ID: id}
	if err := GetSelfAll(ud); err != nil {
		return nil, err
	}
	if err := UpdateCols(ud, common.H{"is_admin": !ud.User.IsAdmin}); err != nil {
		return nil, err
	}
	return ud.User, nil
}

//删除用户; 提交记录里的用户名是快照, 不级联删除
func DeleteUser(id int64) error {
	num, err := engine.ID(id).Delete(new(User))
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if num == 0 {
		return ErrNotFound
	}
	return nil
}
