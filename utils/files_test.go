package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyFileName(t *testing.T) {
	assert.True(t, filepath.IsAbs(FriendlyFileName("application.yml")))
	assert.Equal(t, "/etc/gsbc/application.yml", FriendlyFileName("/etc/gsbc/application.yml"))
}
