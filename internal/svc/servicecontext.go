package svc

import (
	"fmt"
	"strings"

	"github.com/copo888/freekassapay/internal/config"
	"github.com/copo888/freekassapay/internal/payutils"
	"github.com/go-redis/redis/v8"
	"github.com/neccoys/go-driver/mysqlx"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config      config.Config
	RedisClient *redis.Client
	MyDB        *gorm.DB
	FreeKassa   *payutils.FreeKassa
}

func NewServiceContext(c config.Config) *ServiceContext {
	// Redis
	redisCache := redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:    c.RedisCache.RedisMasterName,
		SentinelAddrs: strings.Split(c.RedisCache.RedisSentinelNode, ";"),
		DB:            c.RedisCache.RedisDB,
	})

	// DB
	db, err := mysqlx.New(c.Mysql.Host, fmt.Sprintf("%d", c.Mysql.Port), c.Mysql.UserName, c.Mysql.Password, c.Mysql.DBName).
		SetCharset("utf8mb4").
		SetLoc("UTC").
		Connect(mysqlx.Pool(50, 100, 180))

	if err != nil {
		panic(err)
	}

	// 渠道客戶端，密鑰由環境變數帶入設定檔
	client := &payutils.FreeKassa{
		MerchantId:  c.Freekassa.MerchantId,
		SecretWord1: c.Freekassa.SecretWord1,
		SecretWord2: c.Freekassa.SecretWord2,
		ApiKey:      c.Freekassa.ApiKey,
		SuccessUrl:  c.Freekassa.SuccessUrl,
		FailUrl:     c.Freekassa.FailUrl,
		NotifyUrl:   c.Freekassa.NotifyUrl,
		ApiUrl:      c.Freekassa.ApiUrl,
		UiUrl:       c.Freekassa.UiUrl,
		Nonce:       c.Freekassa.Nonce,
		TimeoutSec:  c.Freekassa.TimeoutSec,
	}

	return &ServiceContext{
		Config:      c,
		RedisClient: redisCache,
		MyDB:        db,
		FreeKassa:   client,
	}
}
