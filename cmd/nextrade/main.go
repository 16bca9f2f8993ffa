package main

import (
	"flag"
	"log"

	"nextrade/conf"
	"nextrade/pkg/cache"
	"nextrade/pkg/logger"
)

func main() {
	configPath := flag.String("c", "conf/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置文件
	if err := conf.LoadConfig(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(&conf.AppConfig.Log, conf.AppConfig.AppName)
	defer logger.Sync()

	cache.InitRedis(conf.AppConfig.Redis)
	defer cache.CloseRedis()

	apiRouter, cleanup := InitRouter()

	srv := NewServer(&conf.AppConfig)
	srv.RegisterOnShutdown(cleanup)
	srv.Run(apiRouter)
}
