package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	ConsoleUrl          string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
}
