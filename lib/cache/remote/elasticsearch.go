package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/elastic/go-elasticsearch/v7"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

func NewElasticsearchClient(conf ElasticsearchConfig) (Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}
	index := conf.Index
	if index == "" {
		index = "coref-annotations"
	}
	return &esClient{
		Client: c,
		index:  index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

type esGetResponse struct {
	Found  bool        `json:"found"`
	Source cache.Entry `json:"_source"`
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil || res.StatusCode != 200 {
		return false
	}
	return true
}

func (e *esClient) Get(key string) (*cache.Entry, error) {
	res, err := e.Client.Get(e.index, key)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, nil
	} else if res.IsError() {
		return nil, errors.New(res.String())
	}

	b, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var esResp esGetResponse
	if err := json.Unmarshal(b, &esResp); err != nil {
		return nil, err
	}
	if !esResp.Found {
		return nil, nil
	}
	entry := esResp.Source
	return &entry, nil
}

func (e *esClient) Set(key string, entry *cache.Entry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	res, err := e.Index(e.index, bytes.NewReader(b), e.Index.WithDocumentID(key))
	if err != nil {
		return err
	} else if res.IsError() {
		return errors.New(res.String())
	}
	return nil
}
