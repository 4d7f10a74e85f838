package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables defining an ad-hoc zone. When both are set they take
// precedence over any zone in the configuration file.
const (
	EnvFilerRoot = "ZONEPATH_FILER_ROOT"
	EnvLocalPath = "ZONEPATH_LOCAL_PATH"
)

// EnvZoneName is the name given to the zone assembled from the environment.
const EnvZoneName = "env"

// FromEnvironment assembles a zone from the process environment.
// A .env file in the working directory is loaded first, without overriding
// variables already set by the invoking shell. The zone is only returned when
// both variables are present and non-empty.
func FromEnvironment() (Zone, bool) {
	// Missing .env is the normal case and not an error.
	_ = godotenv.Load()

	root := os.Getenv(EnvFilerRoot)
	local := os.Getenv(EnvLocalPath)
	if root == "" || local == "" {
		return Zone{}, false
	}

	return Zone{
		Name:           EnvZoneName,
		FilerRoot:      root,
		LocalFilerPath: local,
	}, true
}
