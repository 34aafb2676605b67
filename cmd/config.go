package cmd

import (
	"github.com/consentvault/consentvault-backend/infra"
	"github.com/consentvault/consentvault-backend/utils"
)

func pgConnectionString() string {
	if cs := utils.GetEnv("PG_CONNECTION_STRING", ""); cs != "" {
		return cs
	}
	return infra.PgConfig{
		Hostname: utils.GetEnv("PG_HOSTNAME", "localhost"),
		Port:     utils.GetEnv("PG_PORT", "5432"),
		User:     utils.GetEnv("PG_USER", "postgres"),
		Password: utils.GetEnv("PG_PASSWORD", ""),
		Database: utils.GetEnv("PG_DATABASE", "consentvault"),
		SslMode:  utils.GetEnv("PG_SSL_MODE", "prefer"),
	}.GetConnectionString()
}
