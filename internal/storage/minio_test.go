package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)

	name := ObjectName("Photo.PNG", now)
	assert.Regexp(t, regexp.MustCompile(`^ideas/2025/03/[0-9a-f-]{36}\.png$`), name)

	assert.Regexp(t, `\.jpg$`, ObjectName("noext", now))
	assert.NotEqual(t, ObjectName("a.png", now), ObjectName("a.png", now))
}
