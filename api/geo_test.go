package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeoPosition(t *testing.T) {
	lat, long, err := parseGeoPosition("12.9352;77.6245")
	assert.NoError(t, err)
	assert.Equal(t, 12.9352, lat)
	assert.Equal(t, 77.6245, long)

	lat, long, err = parseGeoPosition(" 12.9352 ; 77.6245 ")
	assert.NoError(t, err)
	assert.Equal(t, 12.9352, lat)
	assert.Equal(t, 77.6245, long)

	for _, v := range []string{
		"",
		"12.9352",
		"12.9352;77.6245;0",
		"abc;77.6245",
		"12.9352;def",
		"91;77.6245",
		"12.9352;181",
	} {
		_, _, err := parseGeoPosition(v)
		assert.Error(t, err, "accepted %q", v)
	}
}
