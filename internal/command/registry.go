package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/siwaht/thriftysouq/internal/logger"
)

// HandlerFunc 命令处理函数，返回成功文本或错误
type HandlerFunc func(ctx context.Context, args Args) (string, error)

// Spec 命令声明：名称、描述、必填键、枚举域与处理函数
type Spec struct {
	Name        string
	Description string
	Required    []string
	Enums       map[string][]string
	Handler     HandlerFunc
}

// Result 统一响应信封
type Result struct {
	Text    string
	IsError bool
}

// Registry 命令注册表。
// 注册完成后只读，可并发分发相互独立的命令。
type Registry struct {
	specs map[string]*Spec
	order []string
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{specs: map[string]*Spec{}}
}

// Register 注册命令，重名视为编程错误直接 panic
func (r *Registry) Register(spec Spec) {
	if spec.Name == "" {
		panic("command: spec has no name")
	}
	if spec.Handler == nil {
		panic(fmt.Sprintf("command: %s has no handler", spec.Name))
	}
	if _, exists := r.specs[spec.Name]; exists {
		panic(fmt.Sprintf("command: duplicate registration of %s", spec.Name))
	}
	s := spec
	r.specs[spec.Name] = &s
	r.order = append(r.order, spec.Name)
}

// Specs 按注册顺序返回全部命令声明
func (r *Registry) Specs() []Spec {
	result := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, *r.specs[name])
	}
	return result
}

// Dispatch 分发一条命令。
// 处理函数抛出的任何错误或 panic 均转换为错误信封，不向外传播。
func (r *Registry) Dispatch(ctx context.Context, name string, args Args) (result Result) {
	invocationID := uuid.NewString()
	started := time.Now()

	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Errorw("command handler panicked",
				"invocation_id", invocationID,
				"command", name,
				"panic", fmt.Sprint(recovered),
			)
			result = errorResult(fmt.Sprintf("internal error in %s: %v", name, recovered))
		}
		logger.Infow("command dispatched",
			"invocation_id", invocationID,
			"command", name,
			"duration", time.Since(started).String(),
			"is_error", result.IsError,
		)
	}()

	spec, ok := r.specs[name]
	if !ok {
		return errorResult(fmt.Sprintf("unknown command: %s", name))
	}
	if args == nil {
		args = Args{}
	}
	for _, key := range spec.Required {
		if !args.Has(key) {
			return errorResult(fmt.Sprintf("missing required argument %q for %s", key, name))
		}
	}
	for key, domain := range spec.Enums {
		if !args.Has(key) {
			continue
		}
		value, err := args.String(key)
		if err != nil {
			return errorResult(err.Error())
		}
		if !inDomain(domain, value) {
			return errorResult(fmt.Sprintf("argument %q must be one of %v, got %q", key, domain, value))
		}
	}

	text, err := spec.Handler(ctx, args)
	if err != nil {
		return errorResult(err.Error())
	}
	return Result{Text: text}
}

func errorResult(message string) Result {
	return Result{Text: message, IsError: true}
}

func inDomain(domain []string, value string) bool {
	for _, v := range domain {
		if v == value {
			return true
		}
	}
	return false
}

// renderJSON 序列化成功载荷
func renderJSON(payload interface{}) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// listPayload 列表响应载荷
type listPayload struct {
	Total int64       `json:"total"`
	Items interface{} `json:"items"`
}

// renderList 序列化列表载荷
func renderList(total int64, items interface{}) (string, error) {
	return renderJSON(listPayload{Total: total, Items: items})
}
