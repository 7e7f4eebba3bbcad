package main

import (
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/text"
)

type contentType int

const (
	contentTypePlain contentType = iota
	contentTypeHTML
	contentTypeJSON
)

var allowedContentTypeEnumMap = map[string]contentType{
	"text/plain":       contentTypePlain,
	"text/html":        contentTypeHTML,
	"application/json": contentTypeJSON,
}

type controller struct {
	annotator   *coref.Annotator
	localCache  local.Client
	remoteCache remote.Client
}

// Annotate reads a document from the request body, runs coreference
// annotation over it and returns the annotated document with its chain
// links. JSON bodies carry a pre-annotated document from upstream stages;
// plain text and HTML are tokenized here first.
func (c controller) Annotate(reader io.Reader, content contentType) (*lib.AnnotatedDocument, error) {
	d, err := c.readDocument(reader, content)
	if err != nil {
		return nil, err
	}

	key := cache.Key(d.Text)
	if entry := c.cachedEntry(key); entry != nil {
		// installing the inventory rewrites mention indices, so the
		// document must not share structs with the cached entry
		entry = entry.Copy()
		d.SetCorefInventory(entry.CorefMentions, entry.Chains)
		coref.Canonicalize(d)
	} else {
		if err := c.annotator.Annotate(d); err != nil {
			return nil, err
		}
		c.storeEntry(key, &cache.Entry{CorefMentions: d.CorefMentions, Chains: d.Chains})
	}

	return &lib.AnnotatedDocument{Document: d, Links: coref.Links(d.Chains)}, nil
}

// Links returns the flat chain links of an already annotated document.
func (c controller) Links(reader io.Reader) ([]coref.Link, error) {
	var d doc.Document
	if err := json.NewDecoder(reader).Decode(&d); err != nil {
		return nil, err
	}
	return coref.Links(d.Chains), nil
}

func (c controller) readDocument(reader io.Reader, content contentType) (*doc.Document, error) {
	switch content {
	case contentTypeJSON:
		var d doc.Document
		if err := json.NewDecoder(reader).Decode(&d); err != nil {
			return nil, err
		}
		if d.Chains == nil {
			d.Chains = map[int]*doc.CorefChain{}
		}
		return &d, nil
	case contentTypeHTML:
		raw, err := lib.HtmlToText(reader)
		if err != nil {
			return nil, err
		}
		return text.BuildDocument(raw)
	default:
		b, err := ioutil.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		return text.BuildDocument(string(b))
	}
}

// cachedEntry checks the local store first and falls back to the remote
// cache, refilling the local store on a remote hit. Documents without text
// (pre-tokenized JSON with no raw form) are never cached.
func (c controller) cachedEntry(key string) *cache.Entry {
	if key == cache.Key("") {
		return nil
	}
	if entry := c.localCache.Get(key); entry != nil {
		return entry
	}
	if c.remoteCache == nil {
		return nil
	}
	entry, err := c.remoteCache.Get(key)
	if err != nil {
		log.Warn().Err(err).Msg("remote cache get failed")
		return nil
	}
	if entry != nil {
		c.localCache.Set(key, entry)
	}
	return entry
}

func (c controller) storeEntry(key string, entry *cache.Entry) {
	if key == cache.Key("") {
		return
	}
	// detached from the live document, which stays mutable after the store
	c.localCache.Set(key, entry.Copy())
	if c.remoteCache != nil {
		if err := c.remoteCache.Set(key, entry); err != nil {
			log.Warn().Err(err).Msg("remote cache set failed")
		}
	}
}
