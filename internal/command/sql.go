package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterSQLCommands 注册只读查询命令
func RegisterSQLCommands(r *Registry, sqlService *service.SQLService) {
	r.Register(Spec{
		Name:        "execute_sql",
		Description: "Execute a single read-only SELECT statement and return the rows. Any other statement is rejected.",
		Required:    []string{"query"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			query, err := args.String("query")
			if err != nil {
				return "", err
			}
			rows, err := sqlService.Execute(query)
			if err != nil {
				return "", err
			}
			return renderList(int64(len(rows)), rows)
		},
	})
}
