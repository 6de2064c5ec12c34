package fundtree

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/fundsflow/fundsflow/internal/domain"
)

// Fingerprint hashes a node together with its whole subtree, so any change
// to an amount, name or child shows up as a different value. It is "0x"
// followed by 64 hex digits.
func Fingerprint(n *domain.FundNode) string {
	// FundNode holds only strings, numbers and nested nodes, so marshalling
	// cannot fail.
	data, _ := json.Marshal(n)
	sum := sha256.Sum256(data)
	return "0x" + hex.EncodeToString(sum[:])
}
