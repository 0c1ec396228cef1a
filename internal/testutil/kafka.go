//go:build integration

package testutil

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// defaultTopicBase — префикс checkout-топиков в интеграционных тестах,
// если тест не задал свой.
const defaultTopicBase = "checkout-orders-itest"

// UniqueTopicAndGroup — уникальные topic/group для одного теста, чтобы
// оффсеты соседних тестов не пересекались. Пустой base заменяется на
// defaultTopicBase.
func UniqueTopicAndGroup(base string) (topic, group string) {
	if base == "" {
		base = defaultTopicBase
	}
	name := base + "-" + UniqSuffix()
	return name, name + "-cg"
}

// EnsureTopic — создаёт топик (существующий не ошибка) и ждёт, пока он
// появится в метаданных брокера. Параметр broker может быть:
//   - "host:port"
//   - "PLAINTEXT://host:port" (как отдаёт testcontainers)
//   - "host1:port1,host2:port2" (берётся первый)
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := firstBootstrap(broker)

	admin, err := dialController(addr)
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		// Формулировка зависит от кластера, поэтому сверяем подстроку.
		if !strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return err
		}
	}

	return waitTopicReady(ctx, addr, topic)
}

// dialController — admin-коннект к контроллеру кластера через любой брокер.
func dialController(addr string) (*kafka.Conn, error) {
	conn, err := kafka.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return nil, err
	}
	return kafka.Dial("tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
}

// firstBootstrap — первый адрес из bootstrap-строки без схемы "PLAINTEXT://".
func firstBootstrap(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if _, host, ok := strings.Cut(first, "://"); ok {
		return host
	}
	return first
}

func waitTopicReady(ctx context.Context, broker, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		ok, err := topicVisible(broker, topic)
		if ok {
			return nil
		}
		if err != nil {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, lastErr)
			}
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}

func topicVisible(broker, topic string) (bool, error) {
	c, err := kafka.Dial("tcp", broker)
	if err != nil {
		return false, err
	}
	defer c.Close()

	parts, err := c.ReadPartitions(topic)
	if err != nil {
		return false, err
	}
	return len(parts) > 0, nil
}
