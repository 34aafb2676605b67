package utils

import (
	"fmt"
	"os"
	"strconv"
)

type envTypes interface {
	string | int | bool
}

func parseEnv[T envTypes](name, str string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = str
	case *int:
		i, err := strconv.Atoi(str)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not an int: %s", name, str))
		}
		*ptr = i
	case *bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not a bool: %s", name, str))
		}
		*ptr = b
	}
	return out
}

func GetEnv[T envTypes](name string, defaultValue T) T {
	str, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	return parseEnv[T](name, str)
}

func GetRequiredEnv[T envTypes](name string) T {
	str, ok := os.LookupEnv(name)
	if !ok {
		panic(fmt.Sprintf("required environment variable %s is not set", name))
	}
	return parseEnv[T](name, str)
}
