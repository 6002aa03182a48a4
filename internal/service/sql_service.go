package service

import (
	"fmt"
	"strings"

	"github.com/siwaht/thriftysouq/internal/repository"
)

// SQLService 只读即席查询服务
type SQLService struct {
	querier repository.ReadOnlyQuerier
}

// NewSQLService 创建查询服务，querier 为 nil 时所有查询返回不支持错误
func NewSQLService(querier repository.ReadOnlyQuerier) *SQLService {
	return &SQLService{querier: querier}
}

// ValidateReadOnly 校验语句为单条 SELECT。
// 前缀检查而非完整解析，另拒绝内嵌语句分隔符。
func ValidateReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToLower(trimmed), "select") {
		return fmt.Errorf("%w, got: %.40s", ErrQueryNotReadOnly, trimmed)
	}
	inner := strings.TrimRight(trimmed, "; \t\r\n")
	if strings.Contains(inner, ";") {
		return fmt.Errorf("%w: multiple statements are not allowed", ErrQueryNotReadOnly)
	}
	return nil
}

// Execute 执行只读查询
func (s *SQLService) Execute(query string) ([]map[string]interface{}, error) {
	if err := ValidateReadOnly(query); err != nil {
		return nil, err
	}
	if s.querier == nil {
		return nil, ErrRawQueryUnsupported
	}
	return s.querier.Query(query)
}
