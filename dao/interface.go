package dao

import (
	"QuizContest/common"
	"errors"
	"fmt"
	"log"
	"reflect"
	"time"
)

var ErrNotFound = errors.New("not found")

//单个对象的增删改查
type SingleData interface {
	GetID() int64         //获取对象数据库id
	GetTableName() string //获取数据库表名
	GetSelf() interface{} //获取对应的model指针
}

//需要缓存到redis的对象
type CachedData interface {
	SingleData
	GetRedisKey() string //获取存到redis的key
	GetRedisExpire() time.Duration
}

//下面是泛型方法

func cacheOn() bool {
	return rdb != nil
}

//将自己上传到redis中
func PutToRedis(cd CachedData) error {
	if !cacheOn() {
		return nil
	}
	return putObjToRedis(cd.GetRedisKey(), cd.GetSelf(), cd.GetRedisExpire())
}

func IsInRedis(cd CachedData) bool {
	return cacheOn() && rdb.Exists(ctx, cd.GetRedisKey()).Val() > 0
}

func DeleteFromRedis(cd CachedData) error {
	if !cacheOn() {
		return nil
	}
	return rdb.Del(ctx, cd.GetRedisKey()).Err()
}

//创建
func Create(sd SingleData) error {
	num, err := engine.InsertOne(sd.GetSelf())
	if err != nil {
		return fmt.Errorf("insert %s: %w", sd.GetTableName(), err)
	}
	if num != 1 {
		return fmt.Errorf("insert %s: %d rows affected", sd.GetTableName(), num)
	}
	if cd, ok := sd.(CachedData); ok {
		if err := PutToRedis(cd); err != nil {
			log.Printf("cache %s: %v", cd.GetRedisKey(), err)
		}
	}
	return nil
}

//读取整行, 优先读redis, 不存在时返回ErrNotFound
func GetSelfAll(sd SingleData) error {
	self := sd.GetSelf()
	cd, cached := sd.(CachedData)
	if cached && IsInRedis(cd) {
		err := GetObjFromRedis(cd.GetRedisKey(), self)
		if err == nil {
			return nil
		}
		log.Printf("read cache %s: %v", cd.GetRedisKey(), err)
	}
	has, err := engine.ID(sd.GetID()).Get(self)
	if err != nil {
		return fmt.Errorf("get %s %d: %w", sd.GetTableName(), sd.GetID(), err)
	}
	if !has {
		return ErrNotFound
	}
	if cached {
		if err := PutToRedis(cd); err != nil {
			log.Printf("cache %s: %v", cd.GetRedisKey(), err)
		}
	}
	return nil
}

//map更新某些列, 之后重新从数据库读取并刷新缓存
func UpdateCols(sd SingleData, mp common.H) error {
	if len(mp) == 0 {
		return nil
	}
	num, err := engine.Table(sd.GetTableName()).ID(sd.GetID()).Update(mp)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", sd.GetTableName(), sd.GetID(), err)
	}
	if num == 0 {
		if exist, err := engine.Table(sd.GetTableName()).Where("id = ?", sd.GetID()).Exist(); err == nil && !exist {
			return ErrNotFound
		}
	}
	if cd, ok := sd.(CachedData); ok {
		if err := DeleteFromRedis(cd); err != nil {
			return err
		}
	}
	//Get会把非零字段当作条件, 先清空旧值
	self := reflect.ValueOf(sd.GetSelf()).Elem()
	self.Set(reflect.Zero(self.Type()))
	return GetSelfAll(sd)
}
