package style

import (
	"github.com/pterm/pterm"

	"github.com/yuttie/paperman/pkg/types"
)

// StateStyle returns the pterm style used for a link state badge
func StateStyle(state types.LinkState) *pterm.Style {
	switch state {
	case types.LinkStateLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case types.LinkStateForeign:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case types.LinkStateUnmanaged:
		return pterm.NewStyle(pterm.FgCyan)
	case types.LinkStateDirectory:
		return pterm.NewStyle(pterm.FgBlue)
	case types.LinkStateMissing:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ClassStyle returns the pterm style used for a file classification badge
func ClassStyle(class types.FileClassification) *pterm.Style {
	switch class {
	case types.ClassRegularFile:
		return pterm.NewStyle(pterm.FgCyan)
	case types.ClassDirectory:
		return pterm.NewStyle(pterm.FgBlue)
	case types.ClassSymlink:
		return pterm.NewStyle(pterm.FgMagenta)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
