package lexicon

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	contents := []byte(`
pronouns:
  - She
  - they
non_referential:
  - Today
`)
	filename := filepath.Join(os.TempDir(), "lexicon_test.yml")
	assert.NoError(t, ioutil.WriteFile(filename, contents, 0644))
	defer os.Remove(filename)

	lex, err := Load(filename)
	assert.NoError(t, err)

	assert.True(t, lex.IsPronoun("she"))
	assert.True(t, lex.IsPronoun("SHE"))
	assert.True(t, lex.IsPronoun("they"))
	assert.False(t, lex.IsPronoun("obama"))

	assert.False(t, lex.Referential("today"))
	assert.False(t, lex.Referential("Today"))
	assert.True(t, lex.Referential("obama"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/lexicon.yml")
	assert.Error(t, err)
}

func TestLoadBadYaml(t *testing.T) {
	filename := filepath.Join(os.TempDir(), "lexicon_bad_test.yml")
	assert.NoError(t, ioutil.WriteFile(filename, []byte("pronouns: {not: a list}"), 0644))
	defer os.Remove(filename)

	_, err := Load(filename)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	lex := Default()
	assert.True(t, lex.IsPronoun("she"))
	assert.True(t, lex.IsPronoun("It"))
	assert.False(t, lex.Referential("yesterday"))
	assert.True(t, lex.Referential("Obama"))
}
