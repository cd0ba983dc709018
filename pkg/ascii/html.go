package ascii

import (
	"html/template"
	"strings"
)

// viewerTemplate is the self-contained HTML viewer: the art in a pre block,
// theme colors, and a script that scales the font so the art fills the
// viewport at any window size.
var viewerTemplate = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ASCII Art Viewer</title>
    <style>
        html, body { margin: 0; padding: 0; width: 100%; height: 100%; display: flex; justify-content: center; align-items: center; background-color: {{.BackgroundColor}}; overflow: hidden; }
        pre { color: {{.TextColor}}; font-family: 'Courier New', Courier, monospace; white-space: pre; font-size: 10px; line-height: 0.8em; }
    </style>
</head>
<body>
<pre id="ascii-art">{{.Art}}</pre>
<script>
    (function() {
        const artElement = document.getElementById('ascii-art');
        const artCols = {{.Cols}}; const artRows = {{.Rows}};
        const FONT_ASPECT_RATIO = 0.6;
        function resizeArt() {
            const fontSizeForWidth = (window.innerWidth / artCols) * FONT_ASPECT_RATIO;
            const fontSizeForHeight = window.innerHeight / artRows;
            artElement.style.fontSize = Math.min(fontSizeForWidth, fontSizeForHeight) + 'px';
        }
        window.addEventListener('resize', resizeArt);
        document.addEventListener('DOMContentLoaded', resizeArt);
    })();
</script>
</body>
</html>`))

type viewerData struct {
	Art             string
	Cols            int
	Rows            int
	BackgroundColor string
	TextColor       string
}

// renderViewerHTML wraps rendered art in the standalone viewer document.
func renderViewerHTML(art string, cols, rows int, theme Theme) string {
	var builder strings.Builder
	err := viewerTemplate.Execute(&builder, viewerData{
		Art:             art,
		Cols:            cols,
		Rows:            rows,
		BackgroundColor: theme.BackgroundColor,
		TextColor:       theme.TextColor,
	})
	if err != nil {
		// The template is static and the data plain values; execution
		// cannot fail at runtime.
		panic(err)
	}
	return builder.String()
}
