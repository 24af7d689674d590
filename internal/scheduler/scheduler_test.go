package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/MichalMitros/price-monitor/internal/scheduler"
	"github.com/MichalMitros/price-monitor/internal/scheduler/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fakeRefs(count int) []models.ProductRef {
	return lo.Times(count, func(i int) models.ProductRef {
		return models.ProductRef{ID: int64(i + 1), URL: faker.URL()}
	})
}

func TestUnitRefreshAll(t *testing.T) {
	refs := fakeRefs(5)

	tests := map[string]struct {
		listErr    error
		failedID   int64
		wantSent   int
		wantErr    error
		wantNoSend bool
	}{
		"ok": {
			wantSent: 5,
		},
		"one command failed": {
			failedID: 3,
			wantSent: 4,
		},
		"list error": {
			listErr:    assert.AnError,
			wantErr:    assert.AnError,
			wantNoSend: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lister := mocks.NewProductLister(t)
			sender := mocks.NewCommandSender(t)
			if tt.listErr != nil {
				lister.On("ListProductRefs", mock.Anything).Return(nil, tt.listErr)
			} else {
				lister.On("ListProductRefs", mock.Anything).Return(refs, nil)
				for _, ref := range refs {
					var err error
					if ref.ID == tt.failedID {
						err = assert.AnError
					}
					sender.On("SendRefreshCommand", mock.Anything, ref.ID, ref.URL).Return(err).Once()
				}
			}
			logger := zerolog.Nop()

			sched, err := scheduler.NewScheduler(lister, sender, &logger, "@every 1h", 2)
			require.NoError(t, err, "should create scheduler")

			sent, err := sched.RefreshAll(context.TODO())

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantSent, sent, "should return number of sent commands")
			if tt.wantNoSend {
				sender.AssertNotCalled(t, "SendRefreshCommand", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUnitRefreshAllParallelism(t *testing.T) {
	refs := fakeRefs(10)
	running := int32(0)
	maxRunning := int32(0)

	lister := mocks.NewProductLister(t)
	lister.On("ListProductRefs", mock.Anything).Return(refs, nil)
	sender := mocks.NewCommandSender(t)
	sender.On("SendRefreshCommand", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			current := atomic.AddInt32(&running, 1)
			for {
				seen := atomic.LoadInt32(&maxRunning)
				if current <= seen || atomic.CompareAndSwapInt32(&maxRunning, seen, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
		}).
		Return(nil)
	logger := zerolog.Nop()

	sched, err := scheduler.NewScheduler(lister, sender, &logger, "@every 1h", 3)
	require.NoError(t, err, "should create scheduler")

	sent, err := sched.RefreshAll(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 10, sent)
	assert.LessOrEqual(t, atomic.LoadInt32(&maxRunning), int32(3), "shouldn't exceed parallelism")
}

func TestUnitNewSchedulerInvalidSchedule(t *testing.T) {
	logger := zerolog.Nop()

	_, err := scheduler.NewScheduler(mocks.NewProductLister(t), mocks.NewCommandSender(t), &logger, "every hour", 1)

	assert.Error(t, err, "should reject invalid schedule")
}

func TestUnitSchedulerRunsOnSchedule(t *testing.T) {
	ref := fakeRefs(1)[0]
	sent := make(chan struct{}, 10)

	lister := mocks.NewProductLister(t)
	lister.On("ListProductRefs", mock.Anything).Return([]models.ProductRef{ref}, nil)
	sender := mocks.NewCommandSender(t)
	sender.On("SendRefreshCommand", mock.Anything, ref.ID, ref.URL).
		Run(func(mock.Arguments) { sent <- struct{}{} }).
		Return(nil)
	logger := zerolog.Nop()

	sched, err := scheduler.NewScheduler(lister, sender, &logger, "@every 1s", 1)
	require.NoError(t, err, "should create scheduler")

	sched.Start()
	select {
	case <-sent:
	case <-time.After(3 * time.Second):
		t.Fatal("refresh wasn't scheduled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sched.Stop(ctx)
}
