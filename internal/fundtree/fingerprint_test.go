package fundtree

import (
	"testing"

	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint(testutil.SampleTree())
	b := Fingerprint(testutil.SampleTree())
	assert.Equal(t, a, b)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, a)

	changed := testutil.SampleTree()
	changed.Children[0].Children[0].Children[1].Amount++
	assert.NotEqual(t, a, Fingerprint(changed), "a change deep in the subtree alters the root hash")
	assert.Equal(t,
		Fingerprint(testutil.SampleTree().Children[1]),
		Fingerprint(changed.Children[1]),
		"untouched branches keep their hash")
}
