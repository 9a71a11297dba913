package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"keeps/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

var errEmptyCompletion = errors.New("no response from LLM")

// LLMService talks to GigaChat. It implements TextGenerator.
type LLMService struct {
	client    *gigago.Client
	modelName string
	logger    *zap.Logger
}

func NewLLMService(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	logger.Info("GigaChat client ready", zap.String("model", cfg.Model))
	return &LLMService{
		client:    client,
		modelName: cfg.Model,
		logger:    logger,
	}, nil
}

func (s *LLMService) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	model := s.client.GenerativeModel(s.modelName)
	model.SystemInstruction = systemInstruction
	model.Temperature = 0.2

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("LLM response received",
		zap.Int("prompt_length", len(prompt)),
		zap.Int("response_length", len(content)),
	)
	return content, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
