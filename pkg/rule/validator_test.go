package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/foldervault/pkg/rule"
)

// folderForm 用于测试 ValidateStruct.
type folderForm struct {
	Name         string `rule:"required"`
	MaxFileLimit int    `rule:"gt=0"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	validStruct := folderForm{Name: "reports", MaxFileLimit: 10}

	err := rule.ValidateStruct(validStruct)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 Name
	invalidStruct1 := folderForm{Name: "", MaxFileLimit: 10}

	err = rule.ValidateStruct(invalidStruct1)
	if err == nil {
		t.Error("Expected error for invalid struct (missing name), got nil")
	}

	// 无效结构体：容量上限非正数
	invalidStruct2 := folderForm{Name: "reports", MaxFileLimit: 0}

	err = rule.ValidateStruct(invalidStruct2)
	if err == nil {
		t.Error("Expected error for invalid struct (limit <= 0), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效文件夹类型
	err := rule.ValidateVar("pdf", "oneof=csv img pdf ppt")
	if err != nil {
		t.Errorf("Expected no error for valid folder type, got %v", err)
	}

	// 无效文件夹类型
	err = rule.ValidateVar("doc", "oneof=csv img pdf ppt")
	if err == nil {
		t.Error("Expected error for invalid folder type, got nil")
	}

	// 有效数字
	err = rule.ValidateVar(25, "gt=0")
	if err != nil {
		t.Errorf("Expected no error for valid number, got %v", err)
	}

	// 无效数字
	err = rule.ValidateVar(-1, "gt=0")
	if err == nil {
		t.Error("Expected error for invalid number, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：检查字符串长度是否为偶数
	err := rule.RegisterValidation("even_length", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(str)%2 == 0
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	// 测试有效字符串
	err = rule.ValidateVar("test", "even_length")
	if err != nil {
		t.Errorf("Expected no error for even length string, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("test1", "even_length")
	if err == nil {
		t.Error("Expected error for odd length string, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("folder_name", "required,min=1,max=255")

	// 测试有效字符串
	err := rule.ValidateVar("invoices", "folder_name")
	if err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("", "folder_name")
	if err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}
