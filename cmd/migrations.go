package cmd

import (
	"context"
	"fmt"

	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/utils"
)

func RunMigrations() error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := repositories.RunMigrations(pgConnectionString(), logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}
	return nil
}
