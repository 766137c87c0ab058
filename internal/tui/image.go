package tui

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
)

// TerminalImageProtocol represents the image protocol supported by the terminal
type TerminalImageProtocol int

// Terminal image protocol types
const (
	// ProtocolNone indicates no image protocol support
	ProtocolNone TerminalImageProtocol = iota
	// ProtocolKitty indicates Kitty terminal graphics protocol
	ProtocolKitty
	// ProtocolITerm2 indicates iTerm2 inline images protocol
	ProtocolITerm2
)

// DetectImageProtocol detects which terminal image protocol is supported.
func DetectImageProtocol() TerminalImageProtocol {
	termProgram := os.Getenv("TERM_PROGRAM")
	term := os.Getenv("TERM")

	switch {
	case strings.Contains(term, "kitty"), termProgram == "ghostty":
		return ProtocolKitty
	case termProgram == "iTerm.app", termProgram == "WezTerm":
		return ProtocolITerm2
	}
	return ProtocolNone
}

// RenderInlineImage encodes img as PNG and wraps it in the escape sequence
// for protocol. It returns "" when the protocol is ProtocolNone or encoding
// fails.
func RenderInlineImage(img image.Image, protocol TerminalImageProtocol) string {
	if protocol == ProtocolNone {
		return ""
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	switch protocol {
	case ProtocolKitty:
		return kittySequence(encoded)
	case ProtocolITerm2:
		return fmt.Sprintf("\x1b]1337;File=inline=1;size=%d;preserveAspectRatio=1:%s\x07", buf.Len(), encoded)
	}
	return ""
}

// kittySequence transmits and displays a PNG (f=100) in 4096 byte chunks,
// m=1 on every chunk but the last.
func kittySequence(encoded string) string {
	const chunk = 4096
	var b strings.Builder
	for i := 0; i < len(encoded); i += chunk {
		end := min(i+chunk, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}
		if i == 0 {
			fmt.Fprintf(&b, "\x1b_Ga=T,f=100,m=%d;%s\x1b\\", more, encoded[i:end])
		} else {
			fmt.Fprintf(&b, "\x1b_Gm=%d;%s\x1b\\", more, encoded[i:end])
		}
	}
	return b.String()
}
