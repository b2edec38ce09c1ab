package census

// ResultType is the type of result being returned through a pipeline channel.
type ResultType uint8

const (
	// Figure is a chart that was written to disk.
	Figure ResultType = iota
	// Dump is the data behind a chart, formatted as text.
	Dump
	// Error indicates an error was raised.
	Error
	// Done indicates the pipeline has completed.
	Done
)

// PipelineResult is the output of a census pipeline.
type PipelineResult struct {
	// Name is the figure the result is about.
	Name   string
	Path   string
	Output string
	Error  error
	Type   ResultType
}
