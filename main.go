package main

import (
	"flag"
	"log/slog"

	"Bricklix/ai/gemini"
	"Bricklix/bot"
	"Bricklix/bot/chat"
	"Bricklix/impl/core"
	"Bricklix/internal/config"
	repository "Bricklix/internal/database"
	"Bricklix/internal/http-server/api"
	"Bricklix/internal/lib/logger"
	"Bricklix/internal/lib/sl"
	"Bricklix/internal/service/mailer"
	"Bricklix/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Initialize Telegram bot if enabled
	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", slog.String("error", err.Error()))
			tgBot = nil
		} else {
			// Mirror error-level records to the admin chat
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")
		}
	}

	lg.Info("starting bricklix", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}

	var storage chat.SessionStorage
	if db != nil {
		handler.SetRepository(db)
		storage = chat.NewMongoSessionStorage(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	} else {
		storage = chat.NewMemoryStorage()
		lg.Info("using in-memory session storage")
	}

	if db != nil && conf.Listen.ApiKey == "" {
		adminKey, err := handler.GenerateApiKey("admin")
		if err != nil {
			lg.With(
				sl.Err(err),
			).Error("generate admin api key")
		} else {
			lg.With(
				sl.Secret("api_key", adminKey),
			).Info("admin api key ready")
		}
	}

	hub := ws.NewHub(lg)
	go hub.Run()

	mailService := mailer.NewMailerService(conf, lg)
	handler.SetMailService(mailService)
	lg.With(
		sl.Secret("resend_key", conf.Resend.ApiKey),
		slog.String("to", conf.Resend.ToEmail),
	).Info("mailer initialized")

	ai := gemini.New(conf, lg)
	lg.With(
		sl.Secret("gemini_key", conf.Gemini.ApiKey),
		slog.String("model", conf.Gemini.Model),
	).Info("gemini client initialized")

	engine := chat.NewEngine(storage, lg)
	engine.SetAIService(ai)
	engine.SetLeadSubmitter(handler)
	engine.SetEvents(hub)
	engine.SetWidgetOptions(conf.Widget.PageContext, conf.Widget.WhatsAppPhone, conf.Widget.ContactPage)
	handler.SetChatEngine(engine)

	if tgBot != nil {
		handler.SetNotifier(tgBot)
	}

	handler.Init()

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
