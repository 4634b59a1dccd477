package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"Bricklix/internal/config"
	"Bricklix/internal/http-server/handlers/chatbot"
	"Bricklix/internal/http-server/handlers/errors"
	"Bricklix/internal/http-server/handlers/inquiry"
	"Bricklix/internal/http-server/handlers/lead"
	"Bricklix/internal/http-server/middleware/authenticate"
	"Bricklix/internal/http-server/middleware/logging"
	"Bricklix/internal/http-server/middleware/timeout"
	"Bricklix/internal/lib/sl"
	"Bricklix/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	chatbot.Core
	lead.Core
	inquiry.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(30))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(logging.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/chat", func(r chi.Router) {
			r.Post("/open", chatbot.Open(log, handler))
			r.Post("/message", chatbot.Message(log, handler))
			r.Post("/action", chatbot.Action(log, handler))
			r.Get("/{sessionID}", chatbot.Get(log, handler))
			r.Post("/{sessionID}/close", chatbot.Close(log, handler))
			r.Delete("/{sessionID}", chatbot.Reset(log, handler))
		})
		v1.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(hub, log, w, r)
		})
		v1.Post("/send-email", lead.Create(log, handler))
		v1.Post("/send-inquiry", inquiry.Send(log, handler))
		v1.Route("/admin", func(r chi.Router) {
			r.Use(authenticate.New(log, handler))
			r.Get("/leads", lead.List(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
