package config

import (
	"encoding/json"
	"os"

	"bookstore/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// keys leave the corresponding Config fields untouched.
type JsonConfig struct {
	DataDir     *string `json:"data_dir"`
	AccountFile *string `json:"account_file"`
	BookFile    *string `json:"book_file"`
	LoginFile   *string `json:"login_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is set, nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
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

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.AccountFile != nil {
		cfg.AccountFile = *jc.AccountFile
	}
	if jc.BookFile != nil {
		cfg.BookFile = *jc.BookFile
	}
	if jc.LoginFile != nil {
		cfg.LoginFile = *jc.LoginFile
	}
}
