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

package lexicon

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Lexicon holds the word lists mention detection consults: pronouns, which
// become single-token coreference mentions, and non-referential words such
// as bare temporal expressions, which never do.
type Lexicon struct {
	Pronouns       map[string]bool
	NonReferential map[string]bool
}

// IsPronoun returns true if word (case-insensitive) is a pronoun.
func (lex Lexicon) IsPronoun(word string) bool {
	return lex.Pronouns[strings.ToLower(word)]
}

// Referential returns false for words that never refer to an entity.
func (lex Lexicon) Referential(word string) bool {
	return !lex.NonReferential[strings.ToLower(word)]
}

// Load returns an unmarshalled lexicon from a YAML file at the given path.
func Load(path string) (*Lexicon, error) {

	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find lexicon at %v", path))
		return nil, err
	}

	type yamlLexicon struct {
		Pronouns       []string `yaml:"pronouns"`
		NonReferential []string `yaml:"non_referential"`
	}

	yamlLex := yamlLexicon{}
	if err := yaml.Unmarshal(bytes, &yamlLex); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load lexicon from %v", path))
		return nil, err
	}

	res := Lexicon{
		Pronouns:       map[string]bool{},
		NonReferential: map[string]bool{},
	}

	for _, v := range yamlLex.Pronouns {
		res.Pronouns[strings.ToLower(v)] = true
	}
	for _, v := range yamlLex.NonReferential {
		res.NonReferential[strings.ToLower(v)] = true
	}

	log.Info().Msg(fmt.Sprintf("lexicon set from %v", path))

	return &res, nil
}

// Default returns the built-in English lexicon used when no file is
// configured.
func Default() *Lexicon {
	res := Lexicon{
		Pronouns:       map[string]bool{},
		NonReferential: map[string]bool{},
	}
	for _, v := range []string{
		"he", "him", "his", "she", "her", "hers", "it", "its",
		"they", "them", "their", "theirs", "we", "us", "our", "ours",
		"i", "me", "my", "mine", "you", "your", "yours",
	} {
		res.Pronouns[v] = true
	}
	for _, v := range []string{
		"now", "today", "yesterday", "tomorrow", "currently", "recently",
	} {
		res.NonReferential[v] = true
	}
	return &res
}
