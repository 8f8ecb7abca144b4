package wolfspider

// Converter transforms HTML into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
