package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	if c.DBPath == "" || c.DBName == "" || c.TokenSecret == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	Sandbox bool `json:"sandbox"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	TokenSecret string `json:"tokenSecret"`

	// Per-file cap for multipart uploads, in bytes
	MaxUploadSize int64  `json:"maxUploadSize"`
	UploadsDir    string `json:"uploadsDir"`
	UploadURLPath string `json:"uploadUrlPath"`

	// Reject re-applications with a conflict instead of silently
	// absorbing them
	StrictApply bool `json:"strictApply"`

	PDFEndpoint string `json:"pdfEndpoint"`

	CountriesFile string `json:"countriesFile"`

	Bucket struct {
		Brand       string   `json:"brand"`
		Influencer  string   `json:"influencer"`
		Campaign    string   `json:"campaign"`
		Application string   `json:"application"`
		Contract    string   `json:"contract"`
		Country     string   `json:"country"`
		Interest    string   `json:"interest"`
		Audience    string   `json:"audience"`
		All         []string `json:"all"`
	} `json:"bucket"`
}
