package render

import (
	"io"
	"net/http"

	"golang.org/x/net/html"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to
// an http.ResponseWriter. If the writer implements http.Flusher,
// content will be flushed after each section.
func NewStreamingRenderer(w http.ResponseWriter, config Config) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document, flushing once the head has
// been written.
func (s *StreamingRenderer) RenderPage(page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	if _, err := io.WriteString(s.w, `<!DOCTYPE html>`+"\n"+`<html lang="`+html.EscapeString(lang)+`">`); err != nil {
		return err
	}
	if err := html.Render(s.w, s.headNode(page)); err != nil {
		return err
	}

	// Flush head immediately for faster first paint
	s.flush()

	if err := html.Render(s.w, s.bodyNode(page)); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, "</html>\n"); err != nil {
		return err
	}
	s.flush()
	return nil
}

// flush sends buffered data to the client if supported.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
