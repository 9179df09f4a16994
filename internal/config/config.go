package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Server      string
	ProjectName string
	Mysql       struct {
		Host       string
		Port       int
		DBName     string
		UserName   string
		Password   string
		DebugLevel string `json:",optional"`
	}
	RedisCache struct {
		RedisSentinelNode string
		RedisMasterName   string
		RedisDB           int
	}
	TelegramSend struct {
		Host   string `json:",optional"`
		Port   int    `json:",optional"`
		ChatId int64  `json:",optional"`
	}
	Freekassa struct {
		MerchantId  int64
		SecretWord1 string
		SecretWord2 string
		ApiKey      string `json:",optional"`
		ApiUrl      string `json:",default=https://api.fk.life/v1/"`
		UiUrl       string `json:",default=https://pay.fk.money/"`
		Nonce       int64  `json:",default=1"`
		TimeoutSec  int    `json:",default=10"`
		SuccessUrl  string `json:",optional"`
		FailUrl     string `json:",optional"`
		NotifyUrl   string `json:",optional"`
	}
}
