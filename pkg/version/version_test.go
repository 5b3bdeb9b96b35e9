package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())

	old := commit
	t.Cleanup(func() { commit = old })
	commit = "abc123"
	assert.Equal(t, "dev (abc123)", GetVersion())
}
