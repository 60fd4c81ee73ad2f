package cli

import (
	_ "embed"
	"strings"
)

// Status messages
const (
	MsgConfigWritten = "Wrote starter configuration to %s\n"
)

// Embedded message files
var (
	//go:embed guide.md
	msgGuideRaw string
	MsgGuide    = strings.TrimSpace(msgGuideRaw) + "\n"
)
