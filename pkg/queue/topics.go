// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：fv.<域>.<动作>，尽量稳定且向后兼容.
// 域：folder(文件夹)、file(文件)
// 动作：created/updated/deleted/uploaded

const (
	// 文件夹领域.
	TopicFolderCreated = "fv.folder.created" // 文件夹创建完成
	TopicFolderUpdated = "fv.folder.updated" // 文件夹名称或容量上限变更
	TopicFolderDeleted = "fv.folder.deleted" // 文件夹及其文件记录删除

	// 文件领域.
	TopicFileUploaded = "fv.file.uploaded" // 文件写入对象存储且元数据入库
	TopicFileUpdated  = "fv.file.updated"  // 文件描述更新
	TopicFileDeleted  = "fv.file.deleted"  // 文件从对象存储与数据库中删除
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 文件夹相关主题集合.
	FolderTopics = []string{
		TopicFolderCreated, TopicFolderUpdated, TopicFolderDeleted,
	}

	// 文件相关主题集合.
	FileTopics = []string{
		TopicFileUploaded, TopicFileUpdated, TopicFileDeleted,
	}
)
