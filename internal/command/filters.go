package command

import (
	"errors"

	"github.com/siwaht/thriftysouq/internal/repository"
)

// errIDOrSlug ID 与 slug 二选一校验错误
var errIDOrSlug = errors.New("either id or slug must be provided")

// parseWindow 解析 limit/offset 窗口参数
func parseWindow(args Args) (repository.Window, error) {
	limit, err := args.Int("limit")
	if err != nil {
		return repository.Window{}, err
	}
	offset, err := args.Int("offset")
	if err != nil {
		return repository.Window{}, err
	}
	return repository.Window{Limit: limit, Offset: offset}, nil
}

// parseSort 解析 sort_by/sort_order 排序参数
func parseSort(args Args) (repository.SortSpec, error) {
	field, err := args.String("sort_by")
	if err != nil {
		return repository.SortSpec{}, err
	}
	direction, err := args.String("sort_order")
	if err != nil {
		return repository.SortSpec{}, err
	}
	return repository.SortSpec{Field: field, Direction: direction}, nil
}
