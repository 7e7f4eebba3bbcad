package lib

import (
	"net/http"

	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// HttpClient lets callers swap the real http client for a mock.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AnnotatedDocument is the API response shape: the annotated document plus
// the flattened chain links.
type AnnotatedDocument struct {
	Document *doc.Document `json:"document"`
	Links    []coref.Link  `json:"links"`
}
