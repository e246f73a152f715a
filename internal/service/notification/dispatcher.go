// dispatcher.go
// 通知事件的异步投递
// channel 模式：单机进程内通道 + 后台 worker，适合开发和小规模部署
// kafka 模式：经 Kafka 中转，至少一次投递，适合多实例部署
package notification

import (
	"outspecs_server/internal/model"
	"outspecs_server/pkg/constants"

	"go.uber.org/zap"
)

// Event 通知事件
type Event struct {
	SenderID   uint                   `json:"sender_id"`
	ReceiverID uint                   `json:"receiver_id"`
	Type       model.NotificationType `json:"type"`
	TargetID   uint                   `json:"target_id"`
}

// Handler 事件处理函数，由通知 Service 提供
type Handler func(senderID, receiverID uint, notifyType model.NotificationType, targetID uint) error

// Dispatcher 通知投递接口
type Dispatcher interface {
	// Enqueue 投递事件，永不阻塞调用方的业务操作
	Enqueue(event Event)
	// Start 启动后台消费循环
	Start()
	// Stop 停止消费并释放资源
	Stop()
}

// channelDispatcher 进程内通道投递器
type channelDispatcher struct {
	events  chan Event
	done    chan struct{}
	handler Handler
}

// NewChannelDispatcher 创建进程内通道投递器
func NewChannelDispatcher(handler Handler) Dispatcher {
	return &channelDispatcher{
		events:  make(chan Event, constants.CHANNEL_SIZE),
		done:    make(chan struct{}),
		handler: handler,
	}
}

// Enqueue 投递事件
// 通道已满时丢弃并记录日志，不阻塞业务操作
func (d *channelDispatcher) Enqueue(event Event) {
	select {
	case d.events <- event:
	default:
		zap.L().Warn("通知通道已满，事件被丢弃",
			zap.Uint("receiver_id", event.ReceiverID),
			zap.String("type", string(event.Type)))
	}
}

// Start 启动后台 worker
func (d *channelDispatcher) Start() {
	go func() {
		for {
			select {
			case event := <-d.events:
				if err := d.handler(event.SenderID, event.ReceiverID, event.Type, event.TargetID); err != nil {
					zap.L().Warn("通知处理失败",
						zap.Uint("receiver_id", event.ReceiverID),
						zap.String("type", string(event.Type)),
						zap.Error(err))
				}
			case <-d.done:
				return
			}
		}
	}()
}

// Stop 停止后台 worker
func (d *channelDispatcher) Stop() {
	close(d.done)
}
