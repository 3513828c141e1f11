package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPayload(t *testing.T) {
	msg := payload(300)
	assert.Len(t, msg, 300)
	assert.Equal(t, 300, utf8.RuneCount(msg), "one rune per byte keeps blocks per payload exact")
	for _, b := range msg {
		assert.True(t, b >= '!' && b <= '~')
	}
}

func TestRows(t *testing.T) {
	rs := rows()
	assert.Len(t, rs, len(widths)+3)
	for i, w := range widths {
		assert.Equal(t, w, rs[i].width)
		assert.NotPanics(t, func() { rs[i].run(payload(64)) })
	}
	for _, r := range rs[len(widths):] {
		assert.Zero(t, r.width, r.name)
	}
}
