package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// ObjectRef 标识对象存储中的对象.
type ObjectRef struct {
	Bucket      string `json:"bucket"`
	ObjectKey   string `json:"object_key"`
	ETag        string `json:"etag,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// FolderEventPayload 文件夹生命周期事件负载.
type FolderEventPayload struct {
	FolderID     string `json:"folder_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	MaxFileLimit int    `json:"max_file_limit,omitempty"`
	// DeletedFiles 仅在删除事件中填充，记录级联删除的文件数.
	DeletedFiles int `json:"deleted_files,omitempty"`
}

// FileEventPayload 文件生命周期事件负载.
type FileEventPayload struct {
	FileID   string    `json:"file_id"`
	FolderID string    `json:"folder_id"`
	Name     string    `json:"name"`
	MimeType string    `json:"mime_type,omitempty"`
	Size     int64     `json:"size,omitempty"`
	Object   ObjectRef `json:"object"`
}
