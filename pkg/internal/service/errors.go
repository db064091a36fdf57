package service

// 服务层错误分类，handle 层据此映射 HTTP 状态码.

// ValidationError 请求内容不合法.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError 创建校验错误.
func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// NotFoundError 目标资源不存在.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError 创建资源不存在错误.
func NewNotFoundError(msg string) error { return &NotFoundError{Message: msg} }

// ConflictError 与现有数据冲突（如名称重复）.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError 创建冲突错误.
func NewConflictError(msg string) error { return &ConflictError{Message: msg} }
