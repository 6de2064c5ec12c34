package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTree_Valid(t *testing.T) {
	root, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, ValidateTree(root))
}

func TestValidateTree_ReturnsEveryProblem(t *testing.T) {
	doc := `{
	  "id": "r", "name": "Root", "amount": 10, "type": "national",
	  "children": [
	    {"id": "a", "name": "", "amount": -5, "type": "state"},
	    {"id": "a", "name": "Dup", "amount": 3, "allocated": 0, "type": "clinic"}
	  ]
	}`
	root, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)

	errs := ValidateTree(root)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Len(t, errs, 5, msgs)
	assert.Contains(t, msgs, "root.children[0] (a): name is required")
	assert.Contains(t, msgs, "root.children[0] (a): amount must not be negative (got -5)")
	assert.Contains(t, msgs, `root.children[1] (a): type "clinic" must be one of [national state hospital department]`)
	assert.Contains(t, msgs, "root.children[1] (a): allocated is 0 but amount is 3")
	assert.Contains(t, msgs, `root.children[1] (a): duplicate id "a"`)
}

func TestLoadAndValidate(t *testing.T) {
	root, err := LoadAndValidate(writeFile(t, "ok.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "national", root.ID)

	_, err = LoadAndValidate(writeFile(t, "bad.json", `{"id":"","name":"X","amount":1,"type":"national"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (1 errors)")
	assert.Contains(t, err.Error(), "id is required")
}
