package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/foldervault/pkg/internal/types"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateFolder(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, &types.CreateFolderRequest{
		Name: "invoices", Type: "pdf", MaxFileLimit: 5,
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if folder.FolderID == "" {
		t.Error("expected generated folderId")
	}

	if folder.Type != "pdf" || folder.MaxFileLimit != 5 {
		t.Errorf("unexpected folder: %+v", folder)
	}
}

func TestCreateFolderValidation(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  types.CreateFolderRequest
		want string
	}{
		{"missing name", types.CreateFolderRequest{Type: "pdf", MaxFileLimit: 5}, "All fields are required"},
		{"missing type", types.CreateFolderRequest{Name: "a", MaxFileLimit: 5}, "All fields are required"},
		{"missing limit", types.CreateFolderRequest{Name: "a", Type: "pdf"}, "All fields are required"},
		{"invalid type", types.CreateFolderRequest{Name: "a", Type: "docx", MaxFileLimit: 5}, "Invalid folder type"},
		{"negative limit", types.CreateFolderRequest{Name: "a", Type: "pdf", MaxFileLimit: -1}, "maxFileLimit must be a positive integer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateFolder(ctx, &tc.req)
			if err == nil || err.Error() != tc.want {
				t.Errorf("expected %q, got %v", tc.want, err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestCreateFolderDuplicateName(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "dup", Type: "img", MaxFileLimit: 3}); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	_, err := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "dup", Type: "pdf", MaxFileLimit: 1})
	if err == nil || err.Error() != "Folder name must be unique" {
		t.Fatalf("expected uniqueness error, got %v", err)
	}

	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConflictError, got %T", err)
	}
}

func TestUpdateFolder(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "old", Type: "csv", MaxFileLimit: 2})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	updated, err := svc.UpdateFolder(ctx, folder.FolderID, &types.UpdateFolderRequest{
		Name:         strPtr("renamed"),
		MaxFileLimit: intPtr(9),
	})
	if err != nil {
		t.Fatalf("UpdateFolder: %v", err)
	}

	if updated.Name != "renamed" || updated.MaxFileLimit != 9 {
		t.Errorf("unexpected folder after update: %+v", updated)
	}

	// 类型不可修改，更新后保持不变
	if updated.Type != "csv" {
		t.Errorf("folder type changed unexpectedly: %s", updated.Type)
	}
}

func TestUpdateFolderSelfNameAllowed(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "same", Type: "csv", MaxFileLimit: 2})

	// 提交自身当前名称不算冲突
	if _, err := svc.UpdateFolder(ctx, folder.FolderID, &types.UpdateFolderRequest{Name: strPtr("same")}); err != nil {
		t.Fatalf("expected self-name update to succeed, got %v", err)
	}
}

func TestUpdateFolderErrors(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	a, _ := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "a", Type: "csv", MaxFileLimit: 2})
	_, _ = svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "b", Type: "csv", MaxFileLimit: 2})

	if _, err := svc.UpdateFolder(ctx, "missing-id", &types.UpdateFolderRequest{}); err == nil || err.Error() != "Folder not found" {
		t.Errorf("expected not found, got %v", err)
	}

	if _, err := svc.UpdateFolder(ctx, a.FolderID, &types.UpdateFolderRequest{Name: strPtr("  ")}); err == nil || err.Error() != "Invalid folder name" {
		t.Errorf("expected invalid name, got %v", err)
	}

	if _, err := svc.UpdateFolder(ctx, a.FolderID, &types.UpdateFolderRequest{Name: strPtr("b")}); err == nil || err.Error() != "Folder name must be unique" {
		t.Errorf("expected uniqueness error, got %v", err)
	}

	if _, err := svc.UpdateFolder(ctx, a.FolderID, &types.UpdateFolderRequest{MaxFileLimit: intPtr(0)}); err == nil ||
		err.Error() != "maxFileLimit must be a positive integer" {
		t.Errorf("expected limit error, got %v", err)
	}
}

func TestDeleteFolderCascades(t *testing.T) {
	svc, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "docs", Type: "pdf", MaxFileLimit: 5})

	if _, err := files.UploadFile(ctx, folder.FolderID, "a.pdf", "application/pdf", 10, strings.NewReader("0123456789"), nil); err != nil {
		t.Fatalf("UploadFile: %v", err)
	}

	if err := svc.DeleteFolder(ctx, folder.FolderID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	// 文件记录随之删除
	if _, err := files.GetFileMetadata(ctx, folder.FolderID); err != nil {
		t.Fatalf("GetFileMetadata: %v", err)
	}

	items, _ := files.GetFileMetadata(ctx, folder.FolderID)
	if len(items) != 0 {
		t.Errorf("expected no file rows after folder delete, got %d", len(items))
	}

	var nerr *NotFoundError
	if err := svc.DeleteFolder(ctx, folder.FolderID); !errors.As(err, &nerr) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestGetFolderWithFiles(t *testing.T) {
	svc, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "imgs", Type: "img", MaxFileLimit: 5})
	_, _ = files.UploadFile(ctx, folder.FolderID, "pic.png", "image/png", 4, strings.NewReader("1234"), nil)

	got, err := svc.GetFolder(ctx, folder.FolderID)
	if err != nil {
		t.Fatalf("GetFolder: %v", err)
	}

	if len(got.Files) != 1 || got.Files[0].Name != "pic.png" {
		t.Errorf("expected eager-loaded files, got %+v", got.Files)
	}

	if _, err := svc.GetFolder(ctx, "missing"); err == nil || err.Error() != "Folder not found" {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestListFolders(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	_, _ = svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "f1", Type: "csv", MaxFileLimit: 1})
	_, _ = svc.CreateFolder(ctx, &types.CreateFolderRequest{Name: "f2", Type: "ppt", MaxFileLimit: 2})

	list, err := svc.ListFolders(ctx)
	if err != nil {
		t.Fatalf("ListFolders: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(list))
	}

	for _, f := range list {
		if f.FolderID == "" || f.Name == "" || f.Type == "" || f.MaxFileLimit == 0 {
			t.Errorf("incomplete summary: %+v", f)
		}
	}
}
