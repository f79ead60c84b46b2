package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	prev := version
	SetVersion("1.2.3")
	defer func() { version = prev }()

	out, err := execute("version")

	require.NoError(t, err)
	assert.Contains(t, out, "clir version 1.2.3")
}
