package config

import (
	"encoding/json"
	"os"

	"github.com/mkalens/wallpaper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; empty fields leave the defaults alone.
type JsonConfig struct {
	ServerURL   string `json:"server_url"`
	DatabaseDSN string `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; if no path
// is given the function returns without touching cfg. Read or unmarshal
// errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
