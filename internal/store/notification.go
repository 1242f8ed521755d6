package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lifebuddy/lifebuddy/ent"
	"github.com/lifebuddy/lifebuddy/ent/notification"
)

type notificationRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *notificationRepo) AppendNotification(ctx context.Context, data NotificationData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Notification.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetUserID(data.UserID).
		SetTaskID(data.TaskID).
		SetDay(data.Day).
		SetSubtask(data.Subtask).
		SetChannel(data.Channel).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	return nil
}

func (r *notificationRepo) ListNotifications(ctx context.Context, userID string, opts QueryOpts) ([]NotificationRecord, error) {
	q := r.client.Notification.Query().
		Where(notification.UserID(userID))
	if opts.After > 0 {
		q = q.Where(notification.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(notification.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(notification.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		q = q.Where(notification.TimestampLTE(opts.To.UTC()))
	}
	q = q.Order(ent.Desc(notification.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	notes, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	out := make([]NotificationRecord, 0, len(notes))
	for _, n := range notes {
		out = append(out, NotificationRecord{
			ID:        n.ID,
			Sequence:  n.Sequence,
			Timestamp: n.Timestamp.UTC(),
			NotificationData: NotificationData{
				UserID:  n.UserID,
				TaskID:  n.TaskID,
				Day:     n.Day,
				Subtask: n.Subtask,
				Channel: n.Channel,
				Reason:  n.Reason,
			},
		})
	}
	return out, nil
}
