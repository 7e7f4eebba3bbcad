/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cache stores coreference engine output keyed by document hash, so
// that re-annotating an unchanged document skips the engine run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// Entry is the cached engine output for one document.
type Entry struct {
	CorefMentions []*doc.CorefMention     `json:"coref_mentions"`
	Chains        map[int]*doc.CorefChain `json:"chains"`
}

// Copy returns a deep copy of the entry. A cached inventory is shared
// between requests, but installing it on a document rewrites the mentions'
// back-pointer indices, so every consumer must work on its own copy.
func (e *Entry) Copy() *Entry {
	cp := &Entry{}
	if e.CorefMentions != nil {
		cp.CorefMentions = make([]*doc.CorefMention, len(e.CorefMentions))
		for i, m := range e.CorefMentions {
			mention := *m
			cp.CorefMentions[i] = &mention
		}
	}
	if e.Chains != nil {
		cp.Chains = make(map[int]*doc.CorefChain, len(e.Chains))
		for id, chain := range e.Chains {
			chainCopy := &doc.CorefChain{
				ClusterID:      chain.ClusterID,
				Mentions:       append([]doc.ChainMention(nil), chain.Mentions...),
				Representative: chain.Representative,
			}
			cp.Chains[id] = chainCopy
		}
	}
	return cp
}

// Key derives the cache key for a document's raw text.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
