package tui

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectImageProtocol(t *testing.T) {
	cases := []struct {
		term, program string
		want          TerminalImageProtocol
	}{
		{"xterm-kitty", "", ProtocolKitty},
		{"xterm-256color", "ghostty", ProtocolKitty},
		{"xterm-256color", "iTerm.app", ProtocolITerm2},
		{"xterm-256color", "WezTerm", ProtocolITerm2},
		{"xterm-256color", "Apple_Terminal", ProtocolNone},
	}
	for _, c := range cases {
		t.Setenv("TERM", c.term)
		t.Setenv("TERM_PROGRAM", c.program)
		assert.Equal(t, c.want, DetectImageProtocol(), "TERM=%s TERM_PROGRAM=%s", c.term, c.program)
	}
}

func TestRenderInlineImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	assert.Empty(t, RenderInlineImage(img, ProtocolNone))

	k := RenderInlineImage(img, ProtocolKitty)
	assert.True(t, strings.HasPrefix(k, "\x1b_Ga=T,f=100,m=0;"))
	assert.True(t, strings.HasSuffix(k, "\x1b\\"))

	i := RenderInlineImage(img, ProtocolITerm2)
	assert.True(t, strings.HasPrefix(i, "\x1b]1337;File=inline=1;"))
	assert.True(t, strings.HasSuffix(i, "\x07"))
}

func TestKittySequence_Chunks(t *testing.T) {
	payload := strings.Repeat("A", 4096*2+10)
	seq := kittySequence(payload)

	assert.Equal(t, 3, strings.Count(seq, "\x1b_G"))
	assert.Contains(t, seq, "\x1b_Ga=T,f=100,m=1;")
	assert.Contains(t, seq, "\x1b_Gm=1;")
	assert.Contains(t, seq, "\x1b_Gm=0;")
}
