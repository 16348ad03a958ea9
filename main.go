package main

import (
	"QuizContest/app"
	"QuizContest/common"
	"QuizContest/dao"
	"log"
)

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		panic(err)
	}
	if err := dao.Init(cfg); err != nil {
		panic(err)
	} else {
		log.Println("数据库初始化完成")
	}
	defer dao.Close()
	if err := app.Run(cfg); err != nil {
		log.Println("路由初始化错误:", err)
	}
}
