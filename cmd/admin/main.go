// Command admin grants or revokes admin privileges for an existing account.
//
// Usage:
//
//	admin -promote rider@example.com
//	admin -demote rider@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/metro-service/internal/config"
	"github.com/spec-kit/metro-service/internal/observability"
	"github.com/spec-kit/metro-service/internal/persistence"
	"github.com/spec-kit/metro-service/internal/repository"
	"github.com/spec-kit/metro-service/internal/service"
)

func main() {
	promote := flag.String("promote", "", "email of the account to promote to admin")
	demote := flag.String("demote", "", "email of the account to demote")
	flag.Parse()

	if (*promote == "") == (*demote == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -promote or -demote is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	adminService := service.NewAdminService(repository.NewUserRepository(pg.PoolHandle()), logger)

	switch {
	case *promote != "":
		user, err := adminService.PromoteToAdmin(ctx, *promote)
		if err != nil {
			logger.Fatal("promote failed", zap.Error(err))
		}
		fmt.Printf("promoted %s (id=%d)\n", user.Email, user.ID)
	case *demote != "":
		user, err := adminService.DemoteFromAdmin(ctx, *demote)
		if err != nil {
			logger.Fatal("demote failed", zap.Error(err))
		}
		fmt.Printf("demoted %s (id=%d)\n", user.Email, user.ID)
	}
}
