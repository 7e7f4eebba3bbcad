// Package system defines the delegated coreference capability. An engine
// clusters the document's coreference mentions into chains, selects each
// chain's representative mention, and populates the cluster-id-to-chain map
// plus the per-token coreference-mention back-pointers. How it does so is
// opaque to the annotator.
package system

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

type System interface {
	// Annotate populates d.Chains and guarantees per-token coreference
	// mention back-pointers on return. Errors are never swallowed by the
	// caller.
	Annotate(d *doc.Document) error
}
