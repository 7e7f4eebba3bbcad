package http_engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// New returns a coreference engine backed by a remote service. The service
// receives the document as JSON and replies with its mention inventory and
// chains.
func New(url string) system.System {
	return &remote{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

type remote struct {
	url        string
	httpClient lib.HttpClient
}

type engineResponse struct {
	CorefMentions []*doc.CorefMention     `json:"coref_mentions"`
	Chains        map[int]*doc.CorefChain `json:"chains"`
}

func (r *remote) Annotate(d *doc.Document) error {
	body, err := json.Marshal(d)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := ioutil.ReadAll(resp.Body)
		return fmt.Errorf("coref engine returned %d: %s", resp.StatusCode, string(b))
	}

	var engineResp engineResponse
	if err := json.NewDecoder(resp.Body).Decode(&engineResp); err != nil {
		return err
	}

	d.SetCorefInventory(engineResp.CorefMentions, engineResp.Chains)
	return nil
}
