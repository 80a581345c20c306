package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsJSONFence(t *testing.T) {
	in := "```json\n{\"a\":1}\n```plain text"
	assert.Equal(t, "plain text", Sanitize(in))
}

func TestSanitizeStripsMultilineFences(t *testing.T) {
	in := "before ```json\n{\n  \"x\": true\n}\n``` after ```json\n[]\n``` end"
	assert.Equal(t, "before  after  end", Sanitize(in))
}

func TestSanitizeStripsBoldMarkers(t *testing.T) {
	assert.Equal(t, "bold text", Sanitize("**bold** text"))
}

func TestSanitizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "answer", Sanitize("  \n answer \t\n"))
}

func TestSanitizeIdempotent(t *testing.T) {
	cases := []string{
		"```json\n{\"a\":1}\n```plain text",
		"**bold** text",
		"  plain  ",
		"no formatting at all",
		"```json partial fence without close",
	}
	for _, in := range cases {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestSanitizeLeavesPartialFenceAlone(t *testing.T) {
	in := "```json\n{\"a\":1}\nno closing fence"
	assert.Equal(t, in, Sanitize(in))
}
