package out

import "context"

// Transcriber converts an audio file into text. An unrecoverable audio
// failure surfaces as an error before the text ever enters the pipeline.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
