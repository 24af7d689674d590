package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/price-monitor/internal/platform/rabbitmq"
	"github.com/MichalMitros/price-monitor/pkg/v1/commander"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Consumer --filename consumer.go
//go:generate mockery --name Refresher --filename refresher.go

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidCommand is returned for refresh command without product id or url.
var ErrInvalidCommand = errors.New("invalid refresh command")

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// Refresher schedules product refreshes.
type Refresher interface {
	RefreshInBackground(productID int64, url string)
}

// RMQHandler handles RMQ refresh commands.
type RMQHandler struct {
	consumer  Consumer
	refresher Refresher
	logger    *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, refresher Refresher, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer:  consumer,
		refresher: refresher,
		logger:    logger,
	}
}

// Start starts consuming and handling refresh commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle decodes refresh command and schedules product refresh.
// It doesn't wait for refresh, so slow extraction never blocks consuming.
func (h *RMQHandler) Handle(_ context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Int64("productId", cmd.ProductID).
		Str("url", cmd.URL).
		Msg("refresh command received")

	h.refresher.RefreshInBackground(cmd.ProductID, cmd.URL)

	return nil
}

func decodeMessage(msg []byte) (*commander.RefreshCommand, error) {
	var cmd commander.RefreshCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode refresh command: %w", err)
	}

	if cmd.ProductID <= 0 || cmd.URL == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCommand, msg)
	}

	return &cmd, nil
}
