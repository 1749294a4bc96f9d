package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8000"  env:"APP_PORT"`
	}
	AI struct {
		Ollama struct {
			OllamaURL   string `default:"http://localhost:11434/api/generate" env:"OLLAMA_URL"`
			OllamaModel string `default:"llama3:latest" env:"OLLAMA_MODEL"`
		}
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
