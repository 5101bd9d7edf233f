package logs

type spanKey struct{}

var SpanKey spanKey

// Span identifies one run against one target file.
type Span string
