package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name ProductLister --filename productlister.go
//go:generate mockery --name CommandSender --filename commandsender.go

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ProductLister lists all tracked products.
type ProductLister interface {
	ListProductRefs(ctx context.Context) ([]models.ProductRef, error)
}

// CommandSender sends product refresh commands.
type CommandSender interface {
	SendRefreshCommand(ctx context.Context, productID int64, url string) error
}

// Scheduler periodically sends refresh commands for every tracked product.
type Scheduler struct {
	lister      ProductLister
	sender      CommandSender
	logger      *zerolog.Logger
	parallelism int

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler returns new Scheduler running refresh of all products on schedule.
// Schedule accepts cron expressions with optional seconds and descriptors like "@every 1h".
func NewScheduler(
	lister ProductLister,
	sender CommandSender,
	logger *zerolog.Logger,
	schedule string,
	parallelism int,
) (*Scheduler, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	cronLog := cronLogger{logger: logger}
	s := &Scheduler{
		lister:      lister,
		sender:      sender,
		logger:      logger,
		parallelism: parallelism,
		cron: cron.New(
			cron.WithParser(cronParser),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	_, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.RefreshAll(s.ctx); err != nil {
			s.logger.Error().Err(err).Msg("scheduled refresh failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("can't schedule refresh %q: %w", schedule, err)
	}

	return s, nil
}

// RefreshAll sends refresh command for every tracked product and returns number of sent commands.
// Failed commands are logged and don't stop the others.
func (s *Scheduler) RefreshAll(ctx context.Context) (int, error) {
	refs, err := s.lister.ListProductRefs(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't list products: %w", err)
	}

	sent := int32(0)
	errGroup := errgroup.Group{}
	errGroup.SetLimit(s.parallelism)

	for _, ref := range refs {
		errGroup.Go(func() error {
			if err := s.sender.SendRefreshCommand(ctx, ref.ID, ref.URL); err != nil {
				s.logger.Error().
					Err(err).
					Int64("productId", ref.ID).
					Str("url", ref.URL).
					Msg("can't send refresh command")
				return nil
			}
			atomic.AddInt32(&sent, 1)
			return nil
		})
	}

	_ = errGroup.Wait()

	s.logger.Info().
		Int("products", len(refs)).
		Int32("sent", sent).
		Msg("refresh commands sent")

	return int(sent), nil
}

// Start starts scheduler in background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduler and waits for running refresh to finish or ctx to be done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
	case <-ctx.Done():
	}

	s.cancel()
}

// cronLogger passes cron logs to zerolog.
type cronLogger struct {
	logger *zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
