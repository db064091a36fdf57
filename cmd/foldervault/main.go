// Package main 启动应用程序
package main

import "github.com/yeisme/foldervault/pkg/cmd"

//	@title			FolderVault API
//	@version		1.0
//	@description	FolderVault 是一个类型化文件夹与文件存储服务，提供文件夹管理、文件上传、排序检索与元数据查询等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
