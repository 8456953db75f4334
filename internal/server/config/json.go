package config

import (
	"encoding/json"
	"os"

	"github.com/mkalens/wallpaper/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. It is an intermediate DTO:
// after unmarshalling, non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	DatabaseDSN  string `json:"database_dsn"`
	BcryptCost   int    `json:"bcrypt_cost"`
}

// parseJson overlays configuration values from a JSON file, if one was named
// via the -c/-config flags. A missing flag means no file is loaded; an
// unreadable or malformed file panics, since running with half-applied
// configuration would be worse.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
