package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variable names understood by LoadEnv.
const (
	EnvLevel       = "COLORWAND_LEVEL"
	EnvPlayerSpeed = "COLORWAND_PLAYER_SPEED"
	EnvStarSpeed   = "COLORWAND_STAR_SPEED"
	EnvTPS         = "COLORWAND_TPS"
	EnvDebug       = "COLORWAND_DEBUG"
	EnvLogLevel    = "COLORWAND_LOG_LEVEL"
	EnvSeed        = "COLORWAND_SEED"
)

// LoadEnv reads optional .env files into the process environment and then
// applies any COLORWAND_* overrides to the global configuration. A missing
// file is not an error.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("No env file %s, using defaults", f)
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return ApplyEnv(os.Getenv)
}

// ApplyEnv applies overrides using the given lookup function.
func ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvLevel); v != "" {
		if _, err := LevelByName(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLevel, err)
		}
		C.Level = v
	}
	if err := parseFloatEnv(getenv, EnvPlayerSpeed, &Player.Speed); err != nil {
		return err
	}
	if err := parseFloatEnv(getenv, EnvStarSpeed, &Star.Speed); err != nil {
		return err
	}
	if v := getenv(EnvTPS); v != "" {
		tps, err := strconv.Atoi(v)
		if err != nil || tps <= 0 {
			return fmt.Errorf("%s: invalid tick rate %q", EnvTPS, v)
		}
		C.TPS = tps
	}
	if v := getenv(EnvDebug); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		Debug.Overlay = on
	}
	if v := getenv(EnvLogLevel); v != "" {
		if _, err := log.ParseLevel(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		Debug.LogLevel = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		Debug.Seed = seed
	}
	return nil
}

func parseFloatEnv(getenv func(string) string, key string, dst *float64) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("%s: invalid speed %q", key, v)
	}
	*dst = f
	return nil
}
