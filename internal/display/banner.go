package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clipforge/clipforge/internal/term"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")).
			Bold(true)

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			PaddingLeft(2)
)

const bannerArt = `       _ _        __
   ___| (_)_ __  / _| ___  _ __ __ _  ___
  / __| | | '_ \| |_ / _ \| '__/ _` + "`" + ` |/ _ \
 | (__| | | |_) |  _| (_) | | | (_| |  __/
  \___|_|_| .__/|_|  \___/|_|  \__, |\___|
          |_|                  |___/`

// PrintBanner prints the ASCII art banner, styled when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, bannerStyle.Render(bannerArt))
	} else {
		fmt.Fprintln(os.Stdout, bannerArt)
	}
	fmt.Println()
}

// PrintCommand prints a rendered ffmpeg argument vector (dry-run output).
func PrintCommand(args []string) {
	line := strings.Join(args, " ")
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, commandStyle.Render(line))
	} else {
		fmt.Fprintln(os.Stdout, "  "+line)
	}
}
