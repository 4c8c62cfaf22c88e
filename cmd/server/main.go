package main

import (
	"fmt"
	"log"

	"ressources-relationnelles/api/config"
	"ressources-relationnelles/api/internal/database"
	"ressources-relationnelles/api/internal/route"
	"ressources-relationnelles/api/internal/seed"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 写入基础数据
	if config.Conf.Seed.Enabled {
		if err := seed.Run(database.GetDB()); err != nil {
			log.Fatalf("基础数据初始化失败: %v", err)
		}
	}

	// 4. 设置路由
	r := route.SetupRouter()

	// 5. 启动服务
	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
