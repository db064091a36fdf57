package model

import (
	"time"
)

// File 文件元数据模型，二进制内容保存在对象存储中.
type File struct {
	FileID   string `gorm:"type:uuid;primaryKey"   json:"fileId"`
	FolderID string `gorm:"type:uuid;index;not null" json:"folderId"`
	Name     string `gorm:"size:512;not null"      json:"name"`
	// 描述可空，上传后可通过更新接口补充
	Description *string `gorm:"type:text" json:"description"`
	// 文件的 MIME 类型
	Type string `gorm:"size:255;index" json:"type"`
	Size int64  `gorm:"index"          json:"size"`
	// 对象存储返回的可访问地址
	SecureURL string `gorm:"size:1024" json:"secure_url"`
	// 对象存储键，删除远端对象时必需
	PublicID   string    `gorm:"size:1024" json:"public_id"`
	UploadedAt time.Time `gorm:"index"     json:"uploadedAt"`
}

// TableName 指定表名.
func (File) TableName() string {
	return "files"
}
