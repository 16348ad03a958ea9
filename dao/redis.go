package dao

import (
	"QuizContest/common"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

//redis里时间统一存 RFC3339Nano, 不丢时区
const REDIS_TIME_FORMAT = time.RFC3339Nano

var errCacheMiss = errors.New("cache miss")

func typeAnalyzed(x interface{}) interface{} {
	switch t := x.(type) {
	case time.Time:
		return t.UTC().Format(REDIS_TIME_FORMAT)
	case bool:
		return strconv.FormatBool(t)
	default:
		return x
	}
}

//将各个域存到redis中 obj必须是结构体指针,按照json标签存入redis,  expire为0时永久保存
func putObjToRedis(key string, obj interface{}, expire time.Duration) error {
	objVal, err := structValue(obj)
	if err != nil {
		return err
	}
	objType := objVal.Type()
	var args []interface{}
	for i := 0; i < objType.NumField(); i++ {
		tag := objType.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		args = append(args, tag, typeAnalyzed(objVal.Field(i).Interface()))
	}
	if err := rdb.HSet(ctx, key, args...).Err(); err != nil {
		return err
	}
	if expire != 0 {
		rdb.Expire(ctx, key, expire)
	}
	return nil
}

//从redis中获取结构体对象,obj必须是结构体指针,按照json标签读取结构体
func GetObjFromRedis(key string, obj interface{}) error {
	v, err := structValue(obj)
	if err != nil {
		return err
	}
	mp, err := rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return err
	}
	if len(mp) == 0 {
		return errCacheMiss
	}
	objType := v.Type()
	for i := 0; i < v.NumField(); i++ {
		tag := objType.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		rawValue, ok := mp[tag]
		if !ok {
			continue
		}
		switch v.Field(i).Interface().(type) {
		case string:
			v.Field(i).SetString(rawValue)
		case int64, int:
			v.Field(i).SetInt(common.StrToInt64(rawValue))
		case bool:
			v.Field(i).SetBool(common.StrToBool(rawValue))
		case time.Time:
			t, err := time.Parse(REDIS_TIME_FORMAT, rawValue)
			if err != nil {
				return err
			}
			v.Field(i).Set(reflect.ValueOf(t))
		default:
			return fmt.Errorf("unsupported field type %s for redis", objType.Field(i).Type)
		}
	}
	return nil
}

func structValue(obj interface{}) (reflect.Value, error) {
	objVal := reflect.ValueOf(obj)
	if objVal.Kind() != reflect.Ptr {
		return reflect.Value{}, errors.New("object is not a pointer to struct")
	}
	if objVal.IsNil() {
		return reflect.Value{}, errors.New("nil pointer")
	}
	objVal = objVal.Elem()
	if objVal.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("object is not a pointer to struct")
	}
	return objVal, nil
}
