// Package queue 管理消息队列，用于广播文件夹与文件的生命周期事件.
//
// 概览
//   - 采用发布/订阅模型，解耦"元数据变更"与下游消费方（审计、同步、清理）
//   - 统一的消息封装：Message[Payload] = Header + Payload
//   - 主题常量见 topics.go，负载结构体见 payloads.go
//   - 默认 JSON 编解码（bytedance/sonic），跨语言易解析
//
// 消息信封（Envelope）JSON 结构
//
//	{
//	  "header": {
//	    "topic": "fv.file.uploaded",
//	    "trace_id": "optional-trace-id",
//	    "producer": "foldervault",
//	    "occurred_at": "2025-01-02T03:04:05.123456Z",
//	    "version": "v1"
//	  },
//	  "payload": { ... 取决于具体主题 ... }
//	}
//
// Go 端：发布/订阅示例
//
//	// 1) 构造负载
//	payload := queue.FileEventPayload{
//	  FileID:   "a3e6...",
//	  FolderID: "9f1c...",
//	  Name:     "report.pdf",
//	  Object:   queue.ObjectRef{Bucket: "foldervault", ObjectKey: "invoices/a3e6_report.pdf"},
//	}
//
//	// 2) 构造 watermill 消息（可选设置 TraceID/Producer）
//	msg, _ := queue.NewWatermillMessage(
//	  queue.TopicFileUploaded, payload,
//	  queue.WithProducer("foldervault"),
//	)
//
//	// 3) 通过 MQ 客户端发布
//	//   _ = client.Publish(ctx, queue.TopicFileUploaded, msg)
//
//	// 4) 订阅（简化展示）
//	//   ch, _ := client.Subscribe(ctx, queue.TopicFileUploaded)
//	//   for m := range ch {
//	//       env, _ := queue.ParseWatermillMessage[queue.FileEventPayload](m)
//	//       // 使用 env.Header / env.Payload ...
//	//       m.Ack()
//	//   }
//
// 注意事项
//  1. occurred_at 为 UTC，RFC3339 格式
//  2. version 便于后向兼容，建议消费者忽略未知字段
//  3. Header.topic 与消息中间件的 Subject/Topic 可能重复，意在离线可追踪
package queue

import (
	"time"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
)

const (
	PayloadVersionV1 string = "v1"
)

// NewEventHeader 便捷创建事件头.
func NewEventHeader(topic string, opts ...func(*EventHeader)) EventHeader {
	hdr := EventHeader{
		Topic:      topic,
		OccurredAt: time.Now().UTC(),
		Version:    PayloadVersionV1,
	}
	for _, opt := range opts {
		opt(&hdr)
	}

	return hdr
}

// WithTraceID 设置 TraceID.
func WithTraceID(id string) func(*EventHeader) { return func(h *EventHeader) { h.TraceID = id } }

// WithProducer 设置 Producer.
func WithProducer(p string) func(*EventHeader) { return func(h *EventHeader) { h.Producer = p } }

// Encode 将消息封装为 JSON 字节切片.
func Encode[T any](msg Message[T]) ([]byte, error) { return sonic.Marshal(msg) }

// Decode 从 JSON 字节解码为消息.
func Decode[T any](b []byte) (Message[T], error) {
	var m Message[T]

	err := sonic.Unmarshal(b, &m)

	return m, err
}

// NewWatermillMessage 构造一个 watermill 消息，设置 ID 与元数据.
func NewWatermillMessage[T any](topic string, payload T, opts ...func(*EventHeader)) (*message.Message, error) {
	header := NewEventHeader(topic, opts...)
	env := Message[T]{Header: header, Payload: payload}

	data, err := Encode(env)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)

	if header.TraceID != "" {
		msg.Metadata.Set("trace_id", header.TraceID)
	}

	if header.Producer != "" {
		msg.Metadata.Set("producer", header.Producer)
	}

	msg.Metadata.Set("occurred_at", header.OccurredAt.Format(time.RFC3339Nano))

	if header.Version != "" {
		msg.Metadata.Set("version", header.Version)
	}

	return msg, nil
}

// ParseWatermillMessage 解出泛型负载.
func ParseWatermillMessage[T any](msg *message.Message) (Message[T], error) {
	return Decode[T](msg.Payload)
}
