package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.Equal(t, 5*time.Second, New(5*time.Second).Timeout)
	assert.Equal(t, DefaultTimeout, New(0).Timeout)
	assert.Equal(t, DefaultTimeout, New(-time.Second).Timeout)
}
