package cuckoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SUCCESS", Success.String())
	assert.Equal(t, "KEY_DOES_NOT_EXIST", KeyDoesNotExist.String())
	assert.Equal(t, "UNKNOWN_STATUS", Status(200).String())
}

func TestStatusAsError(t *testing.T) {
	var err error = KeyExists
	assert.EqualError(t, err, "KEY_EXISTS")
}

func TestStatusOK(t *testing.T) {
	assert.True(t, Success.OK())
	assert.False(t, RehashFailed.OK())
}
