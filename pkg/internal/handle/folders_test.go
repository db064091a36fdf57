package handle

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/storage"
	dbc "github.com/yeisme/foldervault/pkg/internal/storage/db"
	"github.com/yeisme/foldervault/pkg/middleware"
)

// newFolderRouter 构建仅依赖数据库的文件夹路由，供 HTTP 层测试使用.
func newFolderRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&model.Folder{}, &model.File{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	manager := &storage.Manager{DB: &dbc.Client{DB: gdb}}

	r := gin.New()
	r.Use(middleware.StorageMiddleware(manager))

	r.POST("/folder/create", CreateFolder)
	r.GET("/folders", ListFolders)
	r.GET("/folders/:folderId", GetFolder)
	r.PUT("/folders/:folderId", UpdateFolder)
	r.DELETE("/folders/:folderId", DeleteFolder)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestCreateFolderEndpoint(t *testing.T) {
	r := newFolderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/folder/create", gin.H{
		"name": "invoices", "type": "pdf", "maxFileLimit": 5,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string       `json:"message"`
		Folder  model.Folder `json:"folder"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Message != "Folder created successfully" {
		t.Errorf("unexpected message: %s", resp.Message)
	}

	if resp.Folder.FolderID == "" || resp.Folder.Name != "invoices" {
		t.Errorf("unexpected folder: %+v", resp.Folder)
	}
}

func TestCreateFolderEndpointValidation(t *testing.T) {
	r := newFolderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/folder/create", gin.H{
		"name": "bad", "type": "docx", "maxFileLimit": 5,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}

	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Message != "Invalid folder type" {
		t.Errorf("unexpected message: %s", resp.Message)
	}
}

func TestFolderEndpointLifecycle(t *testing.T) {
	r := newFolderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/folder/create", gin.H{
		"name": "docs", "type": "csv", "maxFileLimit": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}

	var created struct {
		Folder model.Folder `json:"folder"`
	}

	_ = json.Unmarshal(w.Body.Bytes(), &created)
	id := created.Folder.FolderID

	// 更新
	w = doJSON(t, r, http.MethodPut, "/folders/"+id, gin.H{"maxFileLimit": 7})
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d: %s", w.Code, w.Body.String())
	}

	// 获取
	w = doJSON(t, r, http.MethodGet, "/folders/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get failed: %d", w.Code)
	}

	var got struct {
		Folder model.Folder `json:"folder"`
	}

	_ = json.Unmarshal(w.Body.Bytes(), &got)

	if got.Folder.MaxFileLimit != 7 {
		t.Errorf("expected updated limit 7, got %d", got.Folder.MaxFileLimit)
	}

	// 列表为裸数组
	w = doJSON(t, r, http.MethodGet, "/folders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}

	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("expected bare array response: %v", err)
	}

	if len(list) != 1 {
		t.Errorf("expected 1 folder, got %d", len(list))
	}

	// 删除
	w = doJSON(t, r, http.MethodDelete, "/folders/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", w.Code)
	}

	// 再次获取应为 404
	w = doJSON(t, r, http.MethodGet, "/folders/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}
