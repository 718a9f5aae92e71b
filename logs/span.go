package logs

// Span identifies one logical unit of work, usually a single machine run.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
