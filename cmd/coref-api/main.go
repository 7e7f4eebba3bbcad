package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system"
	http_engine "gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system/http-engine"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system/rule"
)

// config structure
type corefAPIConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Server   struct {
		HttpPort int `mapstructure:"http_port"`
	}
	Coref  coref.Config
	Engine struct {
		Type string // "rule" or "http"
		Url  string
	}
	Cache struct {
		Backend       string // "", "redis" or "elasticsearch"
		Redis         remote.RedisConfig
		Elasticsearch remote.ElasticsearchConfig
	}
}

var config corefAPIConfig

func initConfig() {
	err := lib.InitializeConfig("./config/coref-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port": 8080,
		},
		"coref": map[string]interface{}{
			"algorithm": coref.AlgorithmStatistical,
			"language":  "en",
		},
		"engine": map[string]interface{}{
			"type": "rule",
		},
	}, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()

	var engine system.System
	switch config.Engine.Type {
	case "http":
		engine = http_engine.New(config.Engine.Url)
	default:
		engine = rule.New(nil)
	}

	annotator, err := coref.New(config.Coref, engine)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid coreference configuration")
	}

	var remoteCache remote.Client
	switch config.Cache.Backend {
	case "redis":
		remoteCache = remote.NewRedisClient(config.Cache.Redis)
	case "elasticsearch":
		remoteCache, err = remote.NewElasticsearchClient(config.Cache.Elasticsearch)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create elasticsearch client")
		}
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery(), cors.Default())

	c := controller{
		annotator:   annotator,
		localCache:  local.New(),
		remoteCache: remoteCache,
	}
	s := server{controller: c}
	s.RegisterRoutes(r)

	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}
