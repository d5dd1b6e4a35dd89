package bootstrap

import (
	"context"
	"time"

	"voicestock_server/core/domain"
	"voicestock_server/pkg/apperr"
)

// HandleUtterance runs one transcribed utterance end to end: fetch a fresh
// vocabulary snapshot, stamp the current date in the configured timezone,
// process, then dispatch the validated record to the sink. On any failure
// nothing is written; the caller owns retries and user-facing messaging.
func (d *Dependencies) HandleUtterance(ctx context.Context, text string) (*domain.ExtractionResult, error) {
	names, err := d.vocab.ProductNames(ctx)
	if err != nil {
		return nil, apperr.ServiceError("inventory", err)
	}

	utt := domain.Utterance{
		Text:        text,
		CurrentDate: time.Now().In(d.Config.Location()),
		Vocabulary:  domain.NewProductVocabulary(names),
	}

	result, err := d.Pipeline.Process(ctx, utt)
	if err != nil {
		d.zlog.Warn().Err(err).Str("code", apperr.CodeOf(err)).Msg("utterance rejected")
		return nil, err
	}

	if err := d.dispatch(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// HandleVoice transcribes an audio file and processes the resulting text.
// A failed transcription surfaces directly; the pipeline is never entered.
func (d *Dependencies) HandleVoice(ctx context.Context, audioPath string) (*domain.ExtractionResult, error) {
	text, err := d.Transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	return d.HandleUtterance(ctx, text)
}

func (d *Dependencies) dispatch(ctx context.Context, result *domain.ExtractionResult) error {
	var err error
	switch result.Intent {
	case domain.IntentSupply:
		err = d.sink.SaveSupply(ctx, result.Supply)
	case domain.IntentSale:
		err = d.sink.SaveSale(ctx, result.Sale)
	case domain.IntentPreorder:
		err = d.sink.SavePreorder(ctx, result.Preorder)
	case domain.IntentClientEdit:
		err = d.sink.SaveClientEdit(ctx, result.ClientEdit)
	case domain.IntentQuery:
		// queries are answered by the caller against its own store
		return nil
	}
	if err != nil {
		d.zlog.Error().Err(err).Str("intent", result.Intent.String()).Msg("record dispatch failed")
		return apperr.ServiceError("store", err)
	}
	d.zlog.Info().
		Str("intent", result.Intent.String()).
		Str("invocation", result.ID.String()).
		Msg("record dispatched")
	return nil
}
