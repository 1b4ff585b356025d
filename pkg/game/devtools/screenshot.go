package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scanmaze/pkg/engine/matrix"
	"scanmaze/pkg/game/state"
)

// PanelHTML renders a panel image as a standalone HTML page of LED dots
func PanelHTML(img matrix.Image, g *state.Game) string {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>scanmaze - Panel</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .panel {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .row { display: flex; }
        .led {
            width: 18px;
            height: 18px;
            margin: 2px;
            border-radius: 50%;
            background-color: #2a0d0d;
        }
        .on {
            background-color: #ff3b3b;
            box-shadow: 0 0 6px #ff3b3b;
        }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&html, "<div class=\"header\">Maze %d (%s), heading %s</div>\n",
		g.MazesGenerated, g.MazeID, g.Player.Heading)
	html.WriteString("<div class=\"panel\">\n")
	for y := 0; y < img.Height; y++ {
		html.WriteString("<div class=\"row\">")
		for x := 0; x < img.Width; x++ {
			if img.Lit(x, y) {
				html.WriteString(`<div class="led on"></div>`)
			} else {
				html.WriteString(`<div class="led"></div>`)
			}
		}
		html.WriteString("</div>\n")
	}
	html.WriteString("</div>\n</body>\n</html>\n")

	return html.String()
}

// SavePanelHTML saves the panel image as an HTML file in dir and returns its path
func SavePanelHTML(img matrix.Image, g *state.Game, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("panel-%s.html", timestamp))

	if err := os.WriteFile(path, []byte(PanelHTML(img, g)), 0o644); err != nil {
		return "", fmt.Errorf("save panel screenshot: %w", err)
	}
	return path, nil
}
