package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/bangshop/admin/pkg/metrics"
	"github.com/bangshop/admin/pkg/validate"
)

// handleMessage — обрабатывает одно сообщение и решает судьбу оффсета.
// true → коммитим (успех или неисправимо битый документ), false → временная
// ошибка, сообщение будет перечитано.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	procCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	err := c.service.SaveFromMessage(procCtx, msg.Value)
	if err == nil {
		metrics.CheckoutOrdersProcessed.WithLabelValues(topic).Inc()
		return true
	}

	if errors.Is(err, validate.ErrInvalidOrder) {
		// повторная доставка не вылечит битый документ: логируем и пропускаем
		metrics.CheckoutOrdersFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "invalid order skipped partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return true
	}

	c.log.Warnf(ctx, "process failed partition=%d offset=%d: %v (will be redelivered)", msg.Partition, msg.Offset, err)
	return false
}

// commitSafely — коммит оффсета; ошибка коммита не фатальна, сообщение
// просто будет доставлено повторно (обработка идемпотентна через upsert).
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil && ctx.Err() == nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}

// sleepWithBackoff — спит d или до отмены контекста; false, если контекст
// отменили раньше.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff — экспоненциальный рост с потолком retryMax.
func (c *Consumer) nextBackoff(cur time.Duration) time.Duration {
	return minDuration(cur*2, c.retryMax)
}

// withJitterEqual — equal jitter: половина фиксированная, половина случайная.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(half)+1))
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
