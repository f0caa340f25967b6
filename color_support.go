package inline

import (
	"os"
	"strings"
)

// DetectColorSupport returns true if the environment asks for or allows ANSI colors.
func DetectColorSupport() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	termName := strings.ToLower(os.Getenv("TERM"))
	return termName != "" && termName != "dumb"
}
