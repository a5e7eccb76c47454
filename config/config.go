package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbPath   string `json:"db_path"`  // sqlite3 file path
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Batch struct {
		MaxPredictItems int `json:"max_predict_items"`
	} `json:"batch"`

	Models struct {
		OrtDLL           string `json:"ort_dll"`
		EncoderPath      string `json:"encoder_path"`
		TokenizerPath    string `json:"tokenizer_path"`
		MaxSeqLen        int    `json:"max_seq_len"`
		GeneratorBaseURL string `json:"generator_base_url"`
		GeneratorModel   string `json:"generator_model"`
		MaxNewTokens     int    `json:"max_new_tokens"`
	} `json:"models"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (avoids annoying nil/zero checks downstream)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/app_data.db"
	}
	if c.Batch.MaxPredictItems <= 0 {
		c.Batch.MaxPredictItems = 100
	}
	if c.Models.MaxSeqLen <= 0 {
		c.Models.MaxSeqLen = 512
	}
	if c.Models.MaxNewTokens <= 0 {
		c.Models.MaxNewTokens = 30
	}

	return c
}
