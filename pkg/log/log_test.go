package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithLevel(t *testing.T) {
	l, err := NewWithLevel("debug")
	assert.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewWithLevel("loud")
	assert.Error(t, err)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)

	l.Debugf("opcode %02X", 0x3E)
	l.Errorf("unimplemented opcode %02X", 0xD3)

	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "opcode 3E")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "unimplemented opcode D3")
}
