package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXorScreen_Wraps(t *testing.T) {
	scr := &xorScreen{key: []byte{0x1, 0x2}}
	assert.Equal(t, byte(0x1), scr.screen(0x0))
	assert.Equal(t, byte(0x2), scr.screen(0x0))
	assert.Equal(t, byte(0x0), scr.screen(0x1))
	assert.Equal(t, byte(0x1), scr.screen(0x3))
}
