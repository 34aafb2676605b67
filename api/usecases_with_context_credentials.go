package api

import (
	"context"

	"github.com/consentvault/consentvault-backend/usecases"
	"github.com/consentvault/consentvault-backend/utils"
)

func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) *usecases.UsecasesWithCreds {
	withCreds := uc.NewUsecasesWithCreds(utils.CredentialsFromCtx(ctx))
	return &withCreds
}
