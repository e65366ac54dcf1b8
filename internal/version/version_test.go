package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevBuild(t *testing.T) {
	t.Parallel()

	// ldflags are not applied under go test, so this is always a dev build.
	assert.True(t, IsDevBuild())
	assert.Equal(t, "dev", Version)
}
