package main

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Consumer interface {
	Consume(ctx context.Context, qids ...string) error
}

// checkoutConsumer pops pending orders and runs the payment
// simulation: wait the configured processing delay, then mark the
// order completed. The delay honors the consumer context, so orders
// still in flight at shutdown are simply abandoned as pending.
type checkoutConsumer struct {
	logger *zap.Logger
	queue  Queuer
	repo   OrderStorage
	delay  time.Duration
}

func NewCheckoutConsumer(logger *zap.Logger, q Queuer, repo OrderStorage, delay time.Duration) Consumer {
	return &checkoutConsumer{logger, q, repo, delay}
}

func (cc *checkoutConsumer) Consume(ctx context.Context, qids ...string) error {
	var order Order
	var err error
	var qid string
	for {
		qid, order, err = cc.queue.Pop(ctx, qids...)
		if err != nil && ctx.Err() != nil {
			cc.logger.Info("consumer: queue pop call: context is done: exit", zap.String("reason", ctx.Err().Error()))
			return nil
		}

		if err != nil {
			cc.logger.Error("consumer: error on queue pop call", zap.Error(err))
			continue
		}

		switch qid {
		case CheckoutQueue:
			if err = SleepContext(ctx, cc.delay); err != nil {
				cc.logger.Info("consumer: processing interrupted: exit",
					zap.String("order.id", order.ID), zap.String("reason", err.Error()))
				return nil
			}
			if _, err = cc.repo.SetStatus(ctx, order.ID, OrderStatusCompleted); err != nil {
				cc.logger.Error("consumer: failed to complete order", zap.String("order.id", order.ID), zap.Error(err))
				continue
			}
			cc.logger.Info("consumer: order completed",
				zap.String("order.id", order.ID),
				zap.String("order.total", order.Totals.Total.String()),
			)
		default:
			cc.logger.Warn("consumer: received order on unknow queue id", zap.String("qid", qid), zap.Any("order", order))
		}
	}
}
