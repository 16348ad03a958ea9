package dao

import (
	"QuizContest/common"
	"QuizContest/model"
	"context"
	"fmt"
	"log"

	_ "github.com/denisenkom/go-mssqldb"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"xorm.io/core"
)

var (
	engine *xorm.Engine    //数据库引擎
	rdb    *redis.Client   //redis, 未配置时为nil
	ctx    context.Context //默认值
)

//连接数据库和redis
func connect(cfg *common.Config) error {
	ds, err := common.ParseDatabaseURL(cfg.Database.URL)
	if err != nil {
		return err
	}
	engine, err = xorm.NewEngine(ds.Driver, ds.DSN)
	if err != nil {
		return err
	}
	if ds.Driver == "sqlite3" {
		//sqlite只用一个连接, 内存库也能在连接间共享
		engine.SetMaxOpenConns(1)
	}
	if err = engine.Ping(); err != nil {
		return err
	}
	engine.SetMapper(core.GonicMapper{})
	log.Printf("database connected (%s)", ds.Driver)

	ctx = context.TODO()
	if cfg.Redis.Addr == "" {
		log.Println("redis not configured, cache disabled")
		return nil
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		rdb = nil
		return fmt.Errorf("redis ping: %w", err)
	}
	log.Printf("redis connected (%s)", cfg.Redis.Addr)
	return nil
}

//表同步和redis初始化
func sync(cfg *common.Config) error {
	if err := engine.Sync2(new(model.User), new(model.Problem), new(model.Submission)); err != nil {
		return err
	}
	if err := problemInitRedis(); err != nil {
		return err
	}
	if err := invalidateLeaderboard(); err != nil {
		return err
	}
	//设置管理员
	if admin := cfg.Admin; admin.Name != "" && admin.Password != "" {
		exists, err := UsernameExists(admin.Name)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := CreateUser(admin.Name, admin.Password, true); err != nil {
				return err
			}
			log.Printf("admin %q created", admin.Name)
		}
	}
	return nil
}

func Init(cfg *common.Config) error {
	if err := connect(cfg); err != nil {
		return err
	}
	if err := sync(cfg); err != nil {
		return err
	}
	return nil
}

func Close() error {
	if rdb != nil {
		rdb.Close()
		rdb = nil
	}
	if engine != nil {
		err := engine.Close()
		engine = nil
		return err
	}
	return nil
}
