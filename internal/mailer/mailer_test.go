package mailer_test

import (
	"bytes"
	"context"
	"mime"
	"strings"
	"testing"

	"github.com/MichalMitros/price-monitor/internal/mailer"
	"github.com/MichalMitros/price-monitor/internal/mailer/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

var cfg = mailer.Config{
	From:     "noreply@monitorapreco.com",
	FromName: "MonitoraPreco",
}

func TestUnitSendPriceDrop(t *testing.T) {
	tests := map[string]struct {
		sendErr error
		wantLog string
	}{
		"sent": {
			wantLog: "email sent",
		},
		"send error is logged": {
			sendErr: assert.AnError,
			wantLog: "can't send email",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := zerolog.New(&logs)

			var sent *gomail.Message
			sender := mocks.NewSender(t)
			sender.On("DialAndSend", mock.AnythingOfType("*gomail.Message")).
				Run(func(args mock.Arguments) {
					sent = args.Get(0).(*gomail.Message)
				}).
				Return(tt.sendErr)

			m := mailer.NewSMTPMailer(sender, cfg, &logger)
			m.SendPriceDrop(context.TODO(), "user@example.com", "Air Fryer", "https://example.com/p/1", 399, 349.9)

			require.NotNil(t, sent, "should send message")
			assert.Equal(t, []string{"user@example.com"}, sent.GetHeader("To"))
			assert.Equal(t, "🔻 Price drop: Air Fryer", subject(t, sent))

			var body bytes.Buffer
			_, err := sent.WriteTo(&body)
			require.NoError(t, err)
			assert.Contains(t, body.String(), "R$ 349.90", "should contain new price")

			assert.Contains(t, logs.String(), tt.wantLog, "should log result")
		})
	}
}

func TestUnitSendPriceIncrease(t *testing.T) {
	logger := zerolog.Nop()

	sender := mocks.NewSender(t)
	sender.On("DialAndSend", mock.MatchedBy(func(msg *gomail.Message) bool {
		return strings.HasPrefix(subject(t, msg), "📈 Price increase")
	})).Return(nil)

	m := mailer.NewSMTPMailer(sender, cfg, &logger)
	m.SendPriceIncrease(context.TODO(), "user@example.com", "Air Fryer", "https://example.com/p/1", 349.9, 399)
}

func TestUnitSendWithoutSMTP(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	m := mailer.NewSMTPMailer(mailer.NewSMTPSender(mailer.Config{}), cfg, &logger)
	m.SendPriceDrop(context.TODO(), "user@example.com", "Air Fryer", "https://example.com/p/1", 399, 349.9)

	assert.Contains(t, logs.String(), "smtp is not configured", "should skip sending")
}

// subject returns decoded subject header, gomail stores it encoded.
func subject(t *testing.T, msg *gomail.Message) string {
	t.Helper()

	header := msg.GetHeader("Subject")
	require.Len(t, header, 1, "should have single subject")

	decoded, err := new(mime.WordDecoder).DecodeHeader(header[0])
	require.NoError(t, err, "can't decode subject")

	return decoded
}
