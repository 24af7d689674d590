package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/price-monitor/internal/platform"
	"github.com/MichalMitros/price-monitor/internal/platform/models"
	"github.com/rs/zerolog"
)

// RecentLimit is maximum number of notifications returned by ListRecent.
const RecentLimit = 50

// Store persists notifications.
//
//go:generate mockery --name Store --filename store.go
type Store interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	RecentNotifications(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	GetNotification(ctx context.Context, id int64) (*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error)
	DeleteNotifications(ctx context.Context, userID int64) (int64, error)
}

// Sink records in-app notifications. Every read and mutation is scoped to the owning user.
type Sink struct {
	store  Store
	logger *zerolog.Logger
}

// NewSink returns new Sink.
func NewSink(store Store, logger *zerolog.Logger) *Sink {
	return &Sink{
		store:  store,
		logger: logger,
	}
}

// Create saves notification.
func (s *Sink) Create(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	created, err := s.store.CreateNotification(ctx, &notification)
	if err != nil {
		return nil, fmt.Errorf("can't create notification: %w", err)
	}

	s.logger.Info().
		Int64("userId", created.UserID).
		Str("type", string(created.Type)).
		Msg("notification created")

	return created, nil
}

// PriceChanged saves price drop or price increase notification for product owner.
func (s *Sink) PriceChanged(ctx context.Context, product *models.Product, oldPrice, newPrice float64) (*models.Notification, error) {
	return s.Create(ctx, NewPriceChange(product, oldPrice, newPrice))
}

// ProductAdded saves product added notification for product owner.
func (s *Sink) ProductAdded(ctx context.Context, product *models.Product) (*models.Notification, error) {
	return s.Create(ctx, NewProductAdded(product))
}

// ListRecent returns latest user's notifications, newest first.
func (s *Sink) ListRecent(ctx context.Context, userID int64) ([]models.Notification, error) {
	notifications, err := s.store.RecentNotifications(ctx, userID, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("can't list notifications: %w", err)
	}

	return notifications, nil
}

// UnreadCount returns number of user's unread notifications.
func (s *Sink) UnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.store.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("can't count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks notification as read if it belongs to user.
// It returns false without error when notification doesn't exist or belongs to someone else.
func (s *Sink) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	notification, err := s.store.GetNotification(ctx, id)
	if errors.Is(err, platform.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't get notification: %w", err)
	}

	if notification.UserID != userID {
		s.logger.Warn().
			Int64("userId", userID).
			Int64("notificationId", id).
			Msg("user tried to mark notification which doesn't belong to them")
		return false, nil
	}

	if err = s.store.MarkNotificationRead(ctx, id); err != nil {
		return false, fmt.Errorf("can't mark notification as read: %w", err)
	}

	return true, nil
}

// MarkAllRead marks all user's notifications as read.
func (s *Sink) MarkAllRead(ctx context.Context, userID int64) error {
	updated, err := s.store.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return fmt.Errorf("can't mark notifications as read: %w", err)
	}

	s.logger.Info().
		Int64("userId", userID).
		Int64("updated", updated).
		Msg("all notifications marked as read")

	return nil
}

// DeleteAll deletes all user's notifications.
func (s *Sink) DeleteAll(ctx context.Context, userID int64) error {
	deleted, err := s.store.DeleteNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("can't delete notifications: %w", err)
	}

	s.logger.Info().
		Int64("userId", userID).
		Int64("deleted", deleted).
		Msg("all notifications deleted")

	return nil
}
