package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "id": "national",
  "name": "National Health Fund",
  "amount": 1000000000,
  "type": "national",
  "metadata": {"status": "healthy", "hospitals_count": 2},
  "children": [
    {"id": "state", "name": "Kerala Health Dept", "amount": 400000000, "allocated": 500000000, "type": "state",
     "children": [
       {"id": "h1", "name": "Hospital K", "amount": 90000000, "allocated": 80000000, "type": "hospital",
        "metadata": {"status": "danger"}}
     ]}
  ]
}`

const sampleYAML = `
id: national
name: National Health Fund
amount: 1000000000
type: national
metadata:
  status: healthy
  hospitals_count: 2
children:
  - id: state
    name: Kerala Health Dept
    amount: 400000000
    allocated: 500000000
    type: state
    children:
      - id: h1
        name: Hospital K
        amount: 90000000
        allocated: 80000000
        type: hospital
        metadata:
          status: danger
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTree_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadTree(writeFile(t, "tree.json", sampleJSON))
	require.NoError(t, err)
	fromYAML, err := LoadTree(writeFile(t, "tree.YML", sampleYAML))
	require.NoError(t, err)

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("JSON and YAML decode differently (-json +yaml):\n%s", diff)
	}

	require.Len(t, fromJSON.Children, 1)
	h1 := fromJSON.Children[0].Children[0]
	assert.Equal(t, domain.NodeHospital, h1.Type)
	assert.True(t, h1.IsOverspent())
	assert.Equal(t, domain.StatusDanger, h1.StatusOrDefault())
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/tree.yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("TREE.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("tree.csv")
	assert.ErrorContains(t, err, "unsupported import file")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"id":"r","name":"R","amount":1,"type":"national","alocated":5}`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("id: r\nname: R\namount: 1\ntype: national\nalocated: 5\n"), FormatYAML)
	assert.Error(t, err)
}

func TestParse_EmptyYAML(t *testing.T) {
	_, err := Parse([]byte(""), FormatYAML)
	assert.ErrorContains(t, err, "empty")
}

func TestParse_TrailingJSONDocument(t *testing.T) {
	_, err := Parse([]byte(`{"id":"a","name":"A","type":"national"} {"id":"b"}`), FormatJSON)
	assert.ErrorContains(t, err, "more than one")
}

func TestLoadTree_MissingFile(t *testing.T) {
	_, err := LoadTree(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
