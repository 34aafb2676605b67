package infra

import "fmt"

type PgConfig struct {
	Hostname string
	Port     string
	User     string
	Password string
	Database string
	SslMode  string
}

func (c PgConfig) GetConnectionString() string {
	sslMode := c.SslMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Hostname, c.Port, c.User, c.Password, c.Database, sslMode)
}
