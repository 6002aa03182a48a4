package command

import (
	"context"

	"github.com/siwaht/thriftysouq/internal/service"
)

// RegisterSeedCommands 注册播种命令
func RegisterSeedCommands(r *Registry, seed *service.SeedService, adminEmail, adminPassword string) {
	r.Register(Spec{
		Name:        "seed_data",
		Description: "Seed the reference data set. Records are matched by natural key and never overwritten; re-running creates nothing.",
		Handler: func(ctx context.Context, args Args) (string, error) {
			report, err := seed.Run(adminEmail, adminPassword)
			if err != nil {
				return "", err
			}
			return report.Summary(), nil
		},
	})
}
