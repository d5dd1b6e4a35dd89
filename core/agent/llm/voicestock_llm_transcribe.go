package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"voicestock_server/pkg/apperr"
	"voicestock_server/pkg/logger"
)

// Transcribe converts a voice message file to text using the Whisper API.
// A failed or empty transcription is a service error; the text never
// enters the pipeline.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", apperr.ServiceError("transcription", err)
	}
	if resp.Text == "" {
		return "", apperr.ServiceError("transcription", nil).
			WithDetail("reason", "empty transcript")
	}

	logger.WithField("chars", len(resp.Text)).Debug("transcription successful")
	return resp.Text, nil
}
