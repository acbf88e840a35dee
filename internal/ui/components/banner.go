package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗███████╗███████╗██████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝╚══███╔╝██╔════╝██╔══██╗
 ██║   ██║██║   ██║██║  ███╔╝   ███╔╝ █████╗  ██████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝   ███╔╝  ██╔══╝  ██╔══██╗
 ╚██████╔╝╚██████╔╝██║███████╗███████╗███████╗██║  ██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝`

const bannerCompact = "Q U I Z Z E R"

// BannerWidth is the narrowest width that fits the full banner.
const BannerWidth = 56

// RenderBanner returns the QUIZZER banner in the primary color. Narrow or
// short terminals get the one-line form.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < BannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
