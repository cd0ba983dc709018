package api

import (
	"html/template"
	"io"
	"net/url"

	"github.com/alde/asciify/pkg/ascii"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// resultTemplate is the page returned after a successful conversion: a live
// preview of the viewer plus download links carrying both encodings as
// data: URLs, so nothing is ever persisted server-side.
var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>ASCII Art Result</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background-color: #f0f2f5; margin: 0; padding: 20px; text-align: center; }
        h1 { color: #333; }
        .container { max-width: 1200px; margin: 0 auto; background: #fff; border-radius: 8px; box-shadow: 0 4px 8px rgba(0,0,0,0.1); padding: 20px; }
        .preview-container { width: 100%; height: 70vh; border: 1px solid #ddd; margin-top: 20px; border-radius: 8px; overflow: hidden; }
        .download-links { margin-top: 20px; }
        .download-links a { display: inline-block; padding: 12px 24px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; margin: 0 10px; font-weight: bold; transition: background-color 0.2s; }
        .download-links a:hover { background-color: #0056b3; }
        a.home-link { display: inline-block; margin-top: 20px; color: #007bff; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Your ASCII Art is Ready!</h1>
        <div class="preview-container">
            <iframe srcdoc="{{.ViewerHTML}}" style="width:100%; height:100%; border:0;"></iframe>
        </div>
        <div class="download-links">
            <a href="{{.TextURL}}" download="{{.TextFilename}}">Download .txt File</a>
            <a href="{{.HTMLURL}}" download="{{.HTMLFilename}}">Download .html Viewer</a>
        </div>
        <a href="/" class="home-link">Convert another image</a>
    </div>
</body>
</html>`))

type resultData struct {
	ViewerHTML   string
	TextURL      template.URL
	HTMLURL      template.URL
	TextFilename string
	HTMLFilename string
}

// writeResultPage renders the result page for one conversion. The download
// payloads are embedded as percent-encoded data: URLs named after the
// sanitized upload filename.
func writeResultPage(w io.Writer, stem string, result ascii.Result) error {
	return resultTemplate.Execute(w, resultData{
		ViewerHTML:   result.HTML,
		TextURL:      dataURL("text/plain", result.Text),
		HTMLURL:      dataURL("text/html", result.HTML),
		TextFilename: stem + ".txt",
		HTMLFilename: stem + ".html",
	})
}

// dataURL builds a data: URL for inline download links. PathEscape keeps
// spaces as %20, which matters because runs of spaces are significant in the
// rendered art.
func dataURL(mediaType, content string) template.URL {
	return template.URL("data:" + mediaType + ";charset=utf-8," + url.PathEscape(content))
}
