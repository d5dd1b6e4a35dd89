// Package bootstrap wires configuration, the OpenAI adapter and the
// extraction services into a ready-to-embed dependency graph.
package bootstrap

import (
	"os"

	"github.com/rs/zerolog"

	"voicestock_server/config"
	"voicestock_server/core/agent/llm"
	"voicestock_server/core/port/out"
	"voicestock_server/core/service/classification"
	"voicestock_server/core/service/extraction"
	"voicestock_server/core/service/matching"
	"voicestock_server/pkg/logger"
)

// Dependencies holds the wired pipeline and its collaborators. The
// surrounding system (bot, spreadsheet store) plugs in its own
// VocabularySource and RecordSink.
type Dependencies struct {
	Config      *config.Config
	NLU         out.NLUClient
	Transcriber out.Transcriber
	Matcher     *matching.Matcher
	Pipeline    *extraction.Pipeline

	vocab out.VocabularySource
	sink  out.RecordSink
	zlog  zerolog.Logger
}

// NewDependencies builds the full graph from config.
func NewDependencies(cfg *config.Config, vocab out.VocabularySource, sink out.RecordSink) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Init(logger.Config{
		Level:   logger.LevelInfo,
		Service: "voicestock",
	})

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Str("component", "voicestock").Logger()

	llmClient := llm.NewClientWithConfig(llm.ClientConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
	})

	matcher := matching.NewMatcher()
	classifier := classification.NewIntentClassifier(llmClient)
	pipeline := extraction.NewPipeline(
		classifier,
		extraction.NewSupplyExtractor(llmClient, matcher),
		extraction.NewSaleExtractor(llmClient, matcher),
		extraction.NewPreorderExtractor(llmClient),
		extraction.NewClientEditExtractor(llmClient),
	)

	zlog.Info().Str("model", cfg.LLMModel).Msg("extraction pipeline initialized")

	return &Dependencies{
		Config:      cfg,
		NLU:         llmClient,
		Transcriber: llmClient,
		Matcher:     matcher,
		Pipeline:    pipeline,
		vocab:       vocab,
		sink:        sink,
		zlog:        zlog,
	}, nil
}
