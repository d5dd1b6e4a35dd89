package llm

import (
	"context"

	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
	"voicestock_server/pkg/logger"
)

const clientEditSystemPrompt = `You are a CRM assistant extracting client information updates.

Extract:
1. Client name (the person being discussed)
2. Notes/information to add about the client (preferences, interests, characteristics, etc.)

IMPORTANT:
- The client name should be the person's full name
- Notes should be descriptive information about the client

Respond with a JSON object: {"client_name": string, "notes": string}
Both fields are required. No other fields.`

// ExtractClientEdit parses a pure-notes update for a client profile.
func (c *Client) ExtractClientEdit(ctx context.Context, text string) (*out.ClientEditPayload, error) {
	resp, err := c.CompleteJSON(ctx, clientEditSystemPrompt, text)
	if err != nil {
		return nil, apperr.ServiceError("nlu", err)
	}

	var payload out.ClientEditPayload
	if err := decodeStrict(cleanJSONResponse(resp), "client_edit", &payload); err != nil {
		return nil, err
	}

	logger.WithField("client", payload.ClientName).Debug("parsed client edit payload")
	return &payload, nil
}
