package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			PasswordsPath string `json:"passwords_path"`
			KeyPath       string `json:"key_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Cipher struct {
		Scheme string `json:"scheme"`
	} `json:"cipher,omitempty"`

	Generator struct {
		AllowEmptyTemplate bool `json:"allow_empty_template"`
	} `json:"generator,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Files: Files{
				PasswordsPath: jsonCfg.Storage.Files.PasswordsPath,
				KeyPath:       jsonCfg.Storage.Files.KeyPath,
			},
		},
		Cipher: Cipher{
			Scheme: jsonCfg.Cipher.Scheme,
		},
		Generator: Generator{
			AllowEmptyTemplate: jsonCfg.Generator.AllowEmptyTemplate,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
