package golp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-solvers/golp/solver"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)
	assert.NoError(Version.Validate())
	assert.NotEqual(uint64(0), Version.Major+Version.Minor+Version.Patch)
}

func TestSolvers(t *testing.T) {
	assert := require.New(t)
	ids := Solvers()
	assert.Len(ids, len(solver.Implemented()))
	for _, id := range ids {
		assert.NotEqual(solver.UNKNOWN, id)
		assert.NotEqual("unknown", id.String())
	}
}
