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

// Package coref adds coreference information to a document: it runs the
// delegated coreference engine under the coarse-grained primary NER tags,
// then reconciles the engine's mention inventory with the NER-derived
// entity mentions, writing each entity mention's canonical index.
package coref

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/mention"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/pipeline"
)

const (
	AlgorithmStatistical = "statistical"
	AlgorithmNeural      = "neural"
	AlgorithmHybrid      = "hybrid"

	MentionDetectionDependency = "dependency"
)

type Config struct {
	Algorithm                 string `mapstructure:"algorithm"`
	Language                  string `mapstructure:"language"`
	MentionDetection          string `mapstructure:"mention_detection"`
	UseCustomMentionDetection bool   `mapstructure:"use_custom_mention_detection"`
	LexiconPath               string `mapstructure:"lexicon"`
}

// Annotator is the coreference annotation stage.
type Annotator struct {
	config          Config
	system          system.System
	mentionDetector *mention.Annotator
}

// New validates the configuration and builds the stage. An unsupported
// algorithm/language combination aborts pipeline assembly.
func New(conf Config, sys system.System) (*Annotator, error) {
	if sys == nil {
		return nil, errors.New("a coreference engine is required")
	}
	if strings.EqualFold(conf.Algorithm, AlgorithmHybrid) && isEnglish(conf.Language) {
		return nil, fmt.Errorf("algorithm %q is not supported for language %q", conf.Algorithm, conf.Language)
	}

	lex := lexicon.Default()
	if conf.LexiconPath != "" {
		var err error
		lex, err = lexicon.Load(conf.LexiconPath)
		if err != nil {
			return nil, err
		}
	}

	a := &Annotator{config: conf, system: sys}
	// unless custom mention detection is configured, run our own detector
	if !conf.UseCustomMentionDetection {
		a.mentionDetector = mention.New(lex)
	}
	return a, nil
}

// an unconfigured language means English
func isEnglish(language string) bool {
	l := strings.ToLower(language)
	return l == "" || l == "en" || l == "english"
}

// Annotate runs the delegated engine under the coarse-grained primary tags
// and canonicalizes the entity mentions against its chains. Engine errors
// propagate unchanged; missing sentence segmentation degrades to a no-op.
func (a *Annotator) Annotate(d *doc.Document) error {
	var skip bool
	err := WithPrimaryTag(d, GranularityCoarse, func() error {
		if a.mentionDetector != nil {
			if err := a.mentionDetector.Annotate(d); err != nil {
				return err
			}
		}
		if len(d.Sentences) == 0 {
			log.Error().Msg("coreference resolution requires sentence segmentation")
			skip = true
			return nil
		}
		if hasSpeakers(d) {
			d.MarkedDiscourse = true
		}
		return a.system.Annotate(d)
	})
	if err != nil || skip {
		return err
	}

	Canonicalize(d)
	return nil
}

func hasSpeakers(d *doc.Document) bool {
	for _, sentence := range d.Sentences {
		for _, tok := range sentence.Tokens {
			if tok.Speaker != "" {
				return true
			}
		}
	}
	return false
}

// Requires declares the document attributes that must be populated before
// this stage runs. The set is configuration-derived: non-dependency mention
// detection additionally needs the parse tree, and delegated mention
// detection needs the externally produced mention inventory.
func (a *Annotator) Requires() pipeline.AttrSet {
	requirements := pipeline.NewAttrSet(
		pipeline.AttrText,
		pipeline.AttrTokens,
		pipeline.AttrCharOffsetBeg,
		pipeline.AttrCharOffsetEnd,
		pipeline.AttrTokenIndex,
		pipeline.AttrTokenValue,
		pipeline.AttrSentences,
		pipeline.AttrSentenceIndex,
		pipeline.AttrPOS,
		pipeline.AttrLemma,
		pipeline.AttrNER,
		pipeline.AttrCoarseNER,
		pipeline.AttrFineNER,
		pipeline.AttrBasicDeps,
		pipeline.AttrEnhancedDeps,
	)
	if !strings.EqualFold(a.config.MentionDetection, MentionDetectionDependency) {
		requirements.Add(pipeline.AttrParseTree, pipeline.AttrCategory)
	}
	if a.mentionDetector == nil {
		requirements.Add(pipeline.AttrCorefMentions)
	}
	return requirements
}

// RequirementsSatisfied declares the single attribute this stage produces.
func (a *Annotator) RequirementsSatisfied() pipeline.AttrSet {
	return pipeline.NewAttrSet(pipeline.AttrCorefChains)
}
