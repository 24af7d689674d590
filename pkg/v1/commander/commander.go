package commander

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

//go:generate mockery --name Sender --filename sender.go

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// RefreshCommander sends product refresh commands.
type RefreshCommander struct {
	sender Sender
}

// NewRefreshCommander returns new RefreshCommander using provided sender for sending messages.
func NewRefreshCommander(sender Sender) RefreshCommander {
	return RefreshCommander{
		sender: sender,
	}
}

// SendRefreshCommand sends refresh command for product with provided id and url.
func (c RefreshCommander) SendRefreshCommand(ctx context.Context, productID int64, url string) error {
	cmd := RefreshCommand{
		ProductID: productID,
		URL:       url,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal refresh command: %w", err)
	}

	if err = c.sender.Send(ctx, cmdMsg); err != nil {
		return fmt.Errorf("can't send refresh command: %w", err)
	}

	return nil
}
