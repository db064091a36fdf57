// Package model 定义 foldervault 的数据模型.
package model

// FolderType 文件夹类型，决定允许上传的文件种类.
type FolderType string

const (
	FolderTypeCSV FolderType = "csv"
	FolderTypeIMG FolderType = "img"
	FolderTypePDF FolderType = "pdf"
	FolderTypePPT FolderType = "ppt"
)

// FolderTypes 全部合法的文件夹类型.
var FolderTypes = []FolderType{FolderTypeCSV, FolderTypeIMG, FolderTypePDF, FolderTypePPT}

// AllowedMimeTypes 每种文件夹类型允许的 MIME 类型.
var AllowedMimeTypes = map[FolderType][]string{
	FolderTypeCSV: {"text/csv", "application/csv"},
	FolderTypeIMG: {"image/png", "image/jpeg", "image/jpg"},
	FolderTypePDF: {"application/pdf"},
	FolderTypePPT: {
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	},
}

// IsValidFolderType 判断给定类型是否合法.
func IsValidFolderType(t FolderType) bool {
	_, ok := AllowedMimeTypes[t]

	return ok
}

// MimeAllowed 判断 MIME 类型是否允许进入该类型的文件夹.
func MimeAllowed(t FolderType, mime string) bool {
	for _, m := range AllowedMimeTypes[t] {
		if m == mime {
			return true
		}
	}

	return false
}

// Folder 文件夹模型，带类型约束与容量上限.
type Folder struct {
	FolderID string `gorm:"type:uuid;primaryKey"        json:"folderId"`
	// 名称全局唯一
	Name         string     `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Type         FolderType `gorm:"size:16;index;not null"        json:"type"`
	MaxFileLimit int        `gorm:"not null"                      json:"maxFileLimit"`

	Files []File `gorm:"foreignKey:FolderID;references:FolderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"files,omitempty"`
}

// TableName 指定表名.
func (Folder) TableName() string {
	return "folders"
}
