package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Account struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"account,omitempty"`

	Classifier struct {
		BaseURL string `json:"base_url"`
	} `json:"classifier,omitempty"`

	Aura struct {
		KnowledgeReward float64 `json:"knowledge_reward"`
		ProjectReward   float64 `json:"project_reward"`
		DecayPerDay     float64 `json:"decay_per_day"`
		HistoryCap      int     `json:"history_cap"`
	} `json:"aura,omitempty"`

	Workers struct {
		DecayCheckInterval Duration `json:"decay_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Account: Account{
			BaseURL:        jsonCfg.Account.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Account.RequestTimeout),
		},
		Classifier: Classifier{
			BaseURL: jsonCfg.Classifier.BaseURL,
		},
		Aura: Aura{
			KnowledgeReward: jsonCfg.Aura.KnowledgeReward,
			ProjectReward:   jsonCfg.Aura.ProjectReward,
			DecayPerDay:     jsonCfg.Aura.DecayPerDay,
			HistoryCap:      jsonCfg.Aura.HistoryCap,
		},
		Workers: Workers{
			DecayCheckInterval: time.Duration(jsonCfg.Workers.DecayCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
