package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Client   Client   `koanf:"client"`
	Frontend Frontend `koanf:"frontend"`
	Database Database `koanf:"db"`
}

type Server struct {
	Port int `koanf:"port"`
}

// Client configures the API-consuming side (the view commands).
type Client struct {
	BaseURL string `koanf:"baseurl"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Database struct {
	// Driver selects the storage engine: "sqlite" or "postgres".
	Driver string `koanf:"driver"`
	// Path is the sqlite database file. Ignored for postgres.
	Path string `koanf:"path"`
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
	Name string `koanf:"name"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Port: 5000,
		},
		Client: Client{
			BaseURL: "http://localhost:5000/api",
		},
		Frontend: Frontend{
			Enabled: false,
		},
		Database: Database{
			Driver: "sqlite",
			Path:   "calendar.db",
			Host:   "localhost",
			Port:   5432,
			User:   "luach",
			Pass:   "",
			Name:   "luach",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "LUACH_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "LUACH_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
