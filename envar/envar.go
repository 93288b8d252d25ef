package envar

import "os"

const (
	BongocatConfig = "BONGOCAT_CONFIG"
)

func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}
