package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/types"
)

func TestUploadFile(t *testing.T) {
	folders, files, gw := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "invoices", Type: "pdf", MaxFileLimit: 3})

	desc := "march invoice"

	file, err := files.UploadFile(ctx, folder.FolderID, "march.pdf", "application/pdf", 6, strings.NewReader("%PDF-1"), &desc)
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}

	if file.FileID == "" {
		t.Error("expected generated fileId")
	}

	// 对象键以文件夹名为前缀命名空间
	if !strings.HasPrefix(file.PublicID, "invoices/") || !strings.HasSuffix(file.PublicID, "_march.pdf") {
		t.Errorf("unexpected object key: %s", file.PublicID)
	}

	if file.SecureURL == "" {
		t.Error("expected secure url from object store")
	}

	if _, ok := gw.objects[file.PublicID]; !ok {
		t.Error("object not written to gateway")
	}

	if file.Description == nil || *file.Description != desc {
		t.Errorf("description not stored: %v", file.Description)
	}
}

func TestUploadFileValidationOrder(t *testing.T) {
	folders, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "imgs", Type: "img", MaxFileLimit: 1})

	// 缺少文件
	if _, err := files.UploadFile(ctx, folder.FolderID, "", "image/png", 1, nil, nil); err == nil ||
		err.Error() != "No file uploaded" {
		t.Errorf("expected no-file error, got %v", err)
	}

	// 超出大小限制（先于文件夹存在性检查）
	if _, err := files.UploadFile(ctx, "missing", "big.png", "image/png", MaxUploadSize+1, strings.NewReader("x"), nil); err == nil ||
		err.Error() != "File size exceeds 10MB limit" {
		t.Errorf("expected size error, got %v", err)
	}

	// 文件夹不存在
	var nerr *NotFoundError
	if _, err := files.UploadFile(ctx, "missing", "a.png", "image/png", 1, strings.NewReader("x"), nil); !errors.As(err, &nerr) {
		t.Errorf("expected NotFoundError, got %v", err)
	}

	// MIME 与文件夹类型不符
	if _, err := files.UploadFile(ctx, folder.FolderID, "doc.pdf", "application/pdf", 1, strings.NewReader("x"), nil); err == nil ||
		err.Error() != "Invalid file type. Expected img" {
		t.Errorf("expected mime error, got %v", err)
	}
}

func TestUploadFileCapacity(t *testing.T) {
	folders, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "single", Type: "csv", MaxFileLimit: 1})

	if _, err := files.UploadFile(ctx, folder.FolderID, "a.csv", "text/csv", 2, strings.NewReader("a,"), nil); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	_, err := files.UploadFile(ctx, folder.FolderID, "b.csv", "text/csv", 2, strings.NewReader("b,"), nil)
	if err == nil || err.Error() != "Folder has reached its maximum file limit" {
		t.Fatalf("expected capacity error, got %v", err)
	}
}

func TestUploadFileObjectStoreFailure(t *testing.T) {
	folders, files, gw := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "flaky", Type: "csv", MaxFileLimit: 5})

	gw.uploadErr = fmt.Errorf("connection reset")

	if _, err := files.UploadFile(ctx, folder.FolderID, "a.csv", "text/csv", 2, strings.NewReader("a,"), nil); err == nil {
		t.Fatal("expected upload failure")
	}

	// 远端失败时不应留下元数据行
	items, err := files.GetFileMetadata(ctx, folder.FolderID)
	if err != nil {
		t.Fatalf("GetFileMetadata: %v", err)
	}

	if len(items) != 0 {
		t.Errorf("expected no rows after failed upload, got %d", len(items))
	}
}

func TestUpdateFileDescription(t *testing.T) {
	folders, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "docs", Type: "pdf", MaxFileLimit: 5})
	file, _ := files.UploadFile(ctx, folder.FolderID, "a.pdf", "application/pdf", 2, strings.NewReader("%P"), nil)

	updated, err := files.UpdateFileDescription(ctx, folder.FolderID, file.FileID, "quarterly report")
	if err != nil {
		t.Fatalf("UpdateFileDescription: %v", err)
	}

	if updated.Description == nil || *updated.Description != "quarterly report" {
		t.Errorf("description not updated: %v", updated.Description)
	}

	if _, err := files.UpdateFileDescription(ctx, folder.FolderID, file.FileID, "   "); err == nil ||
		err.Error() != "Description is required and must be a non-empty string." {
		t.Errorf("expected blank description error, got %v", err)
	}

	if _, err := files.UpdateFileDescription(ctx, "other-folder", file.FileID, "x"); err == nil ||
		err.Error() != "File does not exist in the specified folder." {
		t.Errorf("expected scoped not-found error, got %v", err)
	}
}

func TestDeleteFile(t *testing.T) {
	folders, files, gw := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "docs", Type: "pdf", MaxFileLimit: 5})
	file, _ := files.UploadFile(ctx, folder.FolderID, "a.pdf", "application/pdf", 2, strings.NewReader("%P"), nil)

	if err := files.DeleteFile(ctx, folder.FolderID, file.FileID); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}

	if len(gw.removed) != 1 || gw.removed[0] != file.PublicID {
		t.Errorf("remote object not removed: %v", gw.removed)
	}

	items, _ := files.GetFileMetadata(ctx, folder.FolderID)
	if len(items) != 0 {
		t.Errorf("expected row deleted, got %d rows", len(items))
	}

	if err := files.DeleteFile(ctx, folder.FolderID, file.FileID); err == nil ||
		err.Error() != "File not found in the specified folder" {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestDeleteFileMissingPublicID(t *testing.T) {
	folders, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "docs", Type: "pdf", MaxFileLimit: 5})

	// 直接插入缺失对象键的记录
	row := model.File{FileID: "f-1", FolderID: folder.FolderID, Name: "ghost.pdf", Type: "application/pdf"}
	if err := files.dbClient.Create(&row).Error; err != nil {
		t.Fatalf("insert row: %v", err)
	}

	var verr *ValidationError

	err := files.DeleteFile(ctx, folder.FolderID, "f-1")
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteFileRemoteStatFailureKeepsRow(t *testing.T) {
	folders, files, gw := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "docs", Type: "pdf", MaxFileLimit: 5})
	file, _ := files.UploadFile(ctx, folder.FolderID, "a.pdf", "application/pdf", 2, strings.NewReader("%P"), nil)

	gw.statErr = fmt.Errorf("remote unavailable")

	if err := files.DeleteFile(ctx, folder.FolderID, file.FileID); err == nil {
		t.Fatal("expected delete to abort on stat failure")
	}

	// 元数据行保留以便重试
	items, _ := files.GetFileMetadata(ctx, folder.FolderID)
	if len(items) != 1 {
		t.Errorf("expected row kept after aborted delete, got %d rows", len(items))
	}
}
