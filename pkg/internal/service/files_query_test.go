package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/foldervault/pkg/internal/types"
)

func seedSortableFiles(t *testing.T, folders *FolderService, files *FileService) string {
	t.Helper()

	ctx := context.Background()

	folder, err := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "reports", Type: "csv", MaxFileLimit: 10})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	// 大小递增，上传顺序即 uploadedAt 顺序
	for i, f := range []struct {
		name string
		size int64
	}{
		{"small.csv", 2},
		{"medium.csv", 5},
		{"large.csv", 9},
	} {
		body := strings.Repeat("x", int(f.size))
		if _, err := files.UploadFile(ctx, folder.FolderID, f.name, "text/csv", f.size, strings.NewReader(body), nil); err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}

	return folder.FolderID
}

func TestSortFilesBySize(t *testing.T) {
	folders, files, _ := newTestServices(t)
	folderID := seedSortableFiles(t, folders, files)

	items, order, err := files.SortFiles(context.Background(), folderID, "size", "asc")
	if err != nil {
		t.Fatalf("SortFiles: %v", err)
	}

	if order != "ASC" {
		t.Errorf("expected normalized order ASC, got %s", order)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 files, got %d", len(items))
	}

	if items[0].Name != "small.csv" || items[2].Name != "large.csv" {
		t.Errorf("unexpected size ordering: %s, %s, %s", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestSortFilesDefaultsToDesc(t *testing.T) {
	folders, files, _ := newTestServices(t)
	folderID := seedSortableFiles(t, folders, files)

	// 非法 order 值回退为 DESC
	items, order, err := files.SortFiles(context.Background(), folderID, "size", "sideways")
	if err != nil {
		t.Fatalf("SortFiles: %v", err)
	}

	if order != "DESC" {
		t.Errorf("expected fallback order DESC, got %s", order)
	}

	if items[0].Name != "large.csv" {
		t.Errorf("expected largest first, got %s", items[0].Name)
	}
}

func TestSortFilesErrors(t *testing.T) {
	folders, files, _ := newTestServices(t)
	folderID := seedSortableFiles(t, folders, files)
	ctx := context.Background()

	_, _, err := files.SortFiles(ctx, folderID, "name", "asc")
	if err == nil || err.Error() != "Invalid sort field. Use one of: size, uploadedAt" {
		t.Errorf("expected sort field error, got %v", err)
	}

	var nerr *NotFoundError
	if _, _, err := files.SortFiles(ctx, "missing", "size", "asc"); !errors.As(err, &nerr) {
		t.Errorf("expected NotFoundError for unknown folder, got %v", err)
	}
}

func TestListFilesByType(t *testing.T) {
	folders, files, _ := newTestServices(t)
	ctx := context.Background()

	pdf, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "pdfs", Type: "pdf", MaxFileLimit: 5})
	csv, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "csvs", Type: "csv", MaxFileLimit: 5})

	_, _ = files.UploadFile(ctx, pdf.FolderID, "a.pdf", "application/pdf", 2, strings.NewReader("%P"), nil)
	_, _ = files.UploadFile(ctx, pdf.FolderID, "b.pdf", "application/pdf", 2, strings.NewReader("%P"), nil)
	_, _ = files.UploadFile(ctx, csv.FolderID, "c.csv", "text/csv", 2, strings.NewReader("a,"), nil)

	got, err := files.ListFilesByType(ctx, "pdf")
	if err != nil {
		t.Fatalf("ListFilesByType: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 pdf files, got %d", len(got))
	}

	for _, f := range got {
		if f.FolderID != pdf.FolderID {
			t.Errorf("file from wrong folder: %+v", f)
		}
	}

	if _, err := files.ListFilesByType(ctx, ""); err == nil ||
		err.Error() != "File type query param is required (e.g., ?type=pdf)" {
		t.Errorf("expected missing param error, got %v", err)
	}

	if _, err := files.ListFilesByType(ctx, "ppt"); err == nil ||
		err.Error() != "No files found with type: ppt" {
		t.Errorf("expected empty result error, got %v", err)
	}
}

func TestGetFileMetadata(t *testing.T) {
	folders, files, _ := newTestServices(t)
	ctx := context.Background()

	folder, _ := folders.CreateFolder(ctx, &types.CreateFolderRequest{Name: "docs", Type: "pdf", MaxFileLimit: 5})

	desc := "annual"
	_, _ = files.UploadFile(ctx, folder.FolderID, "a.pdf", "application/pdf", 3, strings.NewReader("%P1"), &desc)

	items, err := files.GetFileMetadata(ctx, folder.FolderID)
	if err != nil {
		t.Fatalf("GetFileMetadata: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if items[0].Name != "a.pdf" || items[0].Size != 3 || items[0].Description == nil || *items[0].Description != desc {
		t.Errorf("unexpected metadata item: %+v", items[0])
	}

	// 未知文件夹返回空列表而非错误
	empty, err := files.GetFileMetadata(ctx, "missing")
	if err != nil {
		t.Fatalf("GetFileMetadata for unknown folder: %v", err)
	}

	if len(empty) != 0 {
		t.Errorf("expected empty list, got %d items", len(empty))
	}
}

func TestListFilesMissingFolder(t *testing.T) {
	_, files, _ := newTestServices(t)

	var nerr *NotFoundError
	if _, err := files.ListFiles(context.Background(), "missing"); !errors.As(err, &nerr) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
