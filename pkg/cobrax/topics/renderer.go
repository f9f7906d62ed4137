package topics

// Renderer formats topic content for display. ext is the topic file's
// extension, such as ".md".
type Renderer interface {
	Render(content, ext string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, ext string) string

// Render calls f
func (f RendererFunc) Render(content, ext string) string {
	return f(content, ext)
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content, _ string) string {
	return content
}
