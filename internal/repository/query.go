package repository

import (
	"strings"
	"time"

	"github.com/siwaht/thriftysouq/internal/constants"

	"gorm.io/gorm"
)

// applySearch 在 1-3 个文本列上做 OR 组合的子串匹配。
// 输入一律作为字面量绑定参数，不展开任何通配语义；
// 调用方输入中的 % 与 _ 会按 LIKE 语义匹配，属于已声明的子串检索行为。
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(search) + "%"
	conditions := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, "LOWER("+column+") LIKE ?")
		args = append(args, pattern)
	}
	return query.Where(strings.Join(conditions, " OR "), args...)
}

// applySort 应用白名单内的排序，未命中时回退默认排序。
func applySort(query *gorm.DB, spec SortSpec, allowed map[string]string, fallback string) *gorm.DB {
	column, ok := allowed[strings.ToLower(strings.TrimSpace(spec.Field))]
	if !ok {
		return query.Order(fallback)
	}
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(spec.Direction), constants.SortDesc) {
		direction = "DESC"
	}
	return query.Order(column + " " + direction)
}

// withUpdatedAt 复制字段映射并盖上更新时间，不改动调用方的映射
func withUpdatedAt(fields map[string]interface{}) map[string]interface{} {
	updates := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		updates[key] = value
	}
	updates["updated_at"] = time.Now()
	return updates
}

// applyWindow 应用列表窗口。
// limit 与 offset 合并为一个宽度为 limit 的半开区间；
// 仅给出 offset 时宽度取默认值，两者都缺省则不截断。
func applyWindow(query *gorm.DB, window Window) *gorm.DB {
	limit := window.Limit
	offset := window.Offset
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		if offset == 0 {
			return query
		}
		limit = constants.DefaultWindowLimit
	}
	return query.Limit(limit).Offset(offset)
}
