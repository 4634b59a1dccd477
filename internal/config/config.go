package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

type Config struct {
	Env      string `yaml:"env" env-default:"local"`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env-default:""`
		AdminId int64  `yaml:"admin_id" env-default:"0"`
		BotName string `yaml:"bot_name" env-default:"BricklixAlertBot"`
		Enabled bool   `yaml:"enabled" env-default:"false"`
	} `yaml:"telegram"`
	Gemini struct {
		ApiKey     string `yaml:"api_key" env:"GEMINI_API_KEY" env-default:""`
		Model      string `yaml:"model" env-default:"gemini-2.5-flash-preview-09-2025"`
		BaseURL    string `yaml:"base_url" env-default:"https://generativelanguage.googleapis.com/v1beta"`
		MaxRetries int    `yaml:"max_retries" env-default:"5"`
	} `yaml:"gemini"`
	Resend struct {
		ApiKey    string `yaml:"api_key" env:"RESEND_API_KEY" env-default:""`
		FromEmail string `yaml:"from_email" env:"RESEND_FROM_EMAIL" env-default:"Bricklixbot Lead <onboarding@resend.dev>"`
		ToEmail   string `yaml:"to_email" env:"RESEND_TO_EMAIL" env-default:"delivered@resend.dev"`
	} `yaml:"resend"`
	Mongo struct {
		Enabled     bool   `yaml:"enabled" env-default:"false"`
		Host        string `yaml:"host" env-default:"127.0.0.1"`
		Port        string `yaml:"port" env-default:"27017"`
		User        string `yaml:"user" env-default:"admin"`
		Password    string `yaml:"password" env-default:"pass"`
		Database    string `yaml:"database" env-default:"bricklix"`
		ExpiredDays int    `yaml:"expired_days" env-default:"30"`
	} `yaml:"mongo"`
	Widget struct {
		PageContext   string `yaml:"page_context" env-default:"AI & Automation services"`
		WhatsAppPhone string `yaml:"whatsapp_phone" env-default:"12248445596"`
		ContactPage   string `yaml:"contact_page" env-default:"/contact"`
	} `yaml:"widget"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9200"`
		ApiKey string `yaml:"key" env-default:""`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
