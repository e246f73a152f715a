// kafka_dispatcher.go
// Kafka 模式的通知投递器
// 生产者写入通知主题，后台消费者读取并落库，至少一次投递
package notification

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"outspecs_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// kafkaDispatcher Kafka 投递器
type kafkaDispatcher struct {
	producer *kafka.Writer
	consumer *kafka.Reader
	handler  Handler
	done     chan struct{}
}

// NewKafkaDispatcher 根据配置创建 Kafka 投递器
func NewKafkaDispatcher(cfg *config.KafkaConfig, handler Handler) Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	producer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.HostPort),
		Topic:                  cfg.NotifyTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           timeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.HostPort},
		Topic:          cfg.NotifyTopic,
		GroupID:        "notification",
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})
	return &kafkaDispatcher{
		producer: producer,
		consumer: consumer,
		handler:  handler,
		done:     make(chan struct{}),
	}
}

// Enqueue 将事件写入通知主题
// 写入失败只记录日志，不阻塞业务操作
func (d *kafkaDispatcher) Enqueue(event Event) {
	value, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("通知事件序列化失败", zap.Error(err))
		return
	}
	// 以接收人 id 作为分区键，同一接收人的通知保持顺序
	key := []byte(strconv.FormatUint(uint64(event.ReceiverID), 10))
	if err := d.producer.WriteMessages(context.Background(), kafka.Message{
		Key:   key,
		Value: value,
	}); err != nil {
		zap.L().Error("通知事件写入Kafka失败", zap.Error(err))
	}
}

// Start 启动后台消费循环
func (d *kafkaDispatcher) Start() {
	go func() {
		for {
			select {
			case <-d.done:
				return
			default:
			}
			message, err := d.consumer.ReadMessage(context.Background())
			if err != nil {
				zap.L().Error("读取通知事件失败", zap.Error(err))
				return
			}
			var event Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				zap.L().Error("通知事件反序列化失败", zap.Error(err))
				continue
			}
			if err := d.handler(event.SenderID, event.ReceiverID, event.Type, event.TargetID); err != nil {
				zap.L().Warn("通知处理失败",
					zap.Uint("receiver_id", event.ReceiverID),
					zap.String("type", string(event.Type)),
					zap.Error(err))
			}
		}
	}()
}

// Stop 停止消费并关闭 Kafka 连接
func (d *kafkaDispatcher) Stop() {
	close(d.done)
	if err := d.producer.Close(); err != nil {
		zap.L().Error("关闭Kafka生产者失败", zap.Error(err))
	}
	if err := d.consumer.Close(); err != nil {
		zap.L().Error("关闭Kafka消费者失败", zap.Error(err))
	}
}
