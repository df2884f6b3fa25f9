package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lomacy/vdbatch"
)

func runBuildRedisDB() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	populator := &vdbatch.RedisPopulator{
		Client:  client,
		Records: vdbatch.NewRecordStore(cfg.Data.Dir),
	}
	if err := populator.PopulateAll(context.Background()); err != nil {
		return fmt.Errorf("build redis db: %w", err)
	}

	fmt.Println("Redis database rebuilt.")
	return nil
}
