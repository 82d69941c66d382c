package style

import (
	"strings"

	"github.com/danielcho/resume-composer/internal/render"
)

// Level indicator styles. Id 2 is reserved to keep stored ids stable with
// older documents and renders as none.
const (
	LevelNone = 0
	LevelDots = 1
	LevelBars = 3
	LevelText = 4
)

// ScoreLevel maps a free-text proficiency level to an integer score in
// [1,5]. The mapping is keyword-based, deterministic, and total: any input,
// including the empty string, produces a score. Unrecognized text scores 2.
func ScoreLevel(level string) int {
	l := strings.ToLower(level)
	switch {
	case strings.Contains(l, "native"), strings.Contains(l, "expert"), strings.Contains(l, "master"):
		return 5
	case strings.Contains(l, "advanced"), strings.Contains(l, "fluent"), strings.Contains(l, "proficient"):
		return 4
	case strings.Contains(l, "intermediate"), strings.Contains(l, "conversational"):
		return 3
	case strings.Contains(l, "beginner"), strings.Contains(l, "basic"), strings.Contains(l, "elementary"):
		return 1
	default:
		return 2
	}
}

// LevelIndicator renders the visual proficiency indicator for a level
// string: a dot row, growing bars, or the literal text, selected by
// styleID. LevelNone (and the reserved id 2, and anything unknown) renders
// nothing.
func LevelIndicator(level string, styleID int, color string, fontSizePt float64) *render.Node {
	if strings.TrimSpace(level) == "" {
		return nil
	}
	score := ScoreLevel(level)

	switch styleID {
	case LevelDots:
		row := render.Container("level-dots", render.Style{Direction: "row", GapPt: 2})
		for i := 1; i <= 5; i++ {
			dot := "○"
			if i <= score {
				dot = "●"
			}
			row.Append(render.Text(dot, render.Style{Color: color, FontSizePt: fontSizePt * 0.8}))
		}
		return row

	case LevelBars:
		row := render.Container("level-bars", render.Style{Direction: "row", GapPt: 1.5})
		for i := 1; i <= 5; i++ {
			bar := render.Container("level-bar", render.Style{
				Background: color,
				SizePt:     2 + float64(i), // growing height
			})
			if i > score {
				bar.Style.Background = Tint(color)
			}
			row.Append(bar)
		}
		return row

	case LevelText:
		return render.Text(level, render.Style{Color: color, FontSizePt: fontSizePt, Italic: true})

	default:
		return nil
	}
}
