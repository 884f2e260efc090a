package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/alpaca/internal/scene"
)

const upperHalf = "▀"

// Render rasterizes the scene at cols×cols pixels and prints it as
// cols columns by cols/2 rows of half-block cells.
func Render(s scene.Scene, cols int) (string, error) {
	img, err := Rasterize(s, cols)
	if err != nil {
		return "", err
	}
	return HalfBlocks(img), nil
}

// HalfBlocks prints two pixel rows per text line: the upper pixel as the
// foreground of "▀" and the lower pixel as its background.
func HalfBlocks(img image.Image) string {
	b := img.Bounds()
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexOf(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hexOf(img.At(x, y+1)))
			}
			out.WriteString(style.Render(upperHalf))
		}
	}
	return out.String()
}

func hexOf(c color.Color) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B))
}
