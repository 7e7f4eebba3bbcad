package main

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system/rule"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/text"
)

// config structure
type annotateConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Coref    coref.Config
}

var config annotateConfig

func initConfig() {
	err := lib.InitializeConfig("./config/annotate.yml", map[string]interface{}{
		"log_level": "info",
		"coref": map[string]interface{}{
			"algorithm": coref.AlgorithmStatistical,
			"language":  "en",
		},
	}, &config)
	if err != nil {
		panic(err)
	}
}

// Reads plain text on stdin, annotates it with the in-process engine and
// writes the annotated document JSON to stdout.
func main() {
	initConfig()

	annotator, err := coref.New(config.Coref, rule.New(nil))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid coreference configuration")
	}

	b, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	d, err := text.BuildDocument(string(b))
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := annotator.Annotate(d); err != nil {
		log.Fatal().Err(err).Send()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lib.AnnotatedDocument{Document: d, Links: coref.Links(d.Chains)}); err != nil {
		log.Fatal().Err(err).Send()
	}
}
