package render

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xraph/apispec/logger"
	"github.com/xraph/apispec/spec"
)

// Handler mounts every plugin path on a router serving doc. When no plugins
// are given the full default set is mounted. Paths no plugin claims answer
// 404; render failures answer 500.
func Handler(doc *spec.OpenAPI, log logger.Logger, plugins ...Plugin) http.Handler {
	if log == nil {
		log = logger.NewNoop()
	}
	if len(plugins) == 0 {
		plugins = DefaultPlugins()
	}

	r := chi.NewRouter()

	for _, plugin := range plugins {
		plugin.ReceiveDocument(doc)

		for _, path := range plugin.Paths() {
			r.Get(path, servePlugin(plugin, log))
			log.Debug("documentation path mounted",
				logger.String("path", path),
				logger.String("media_type", plugin.MediaType()),
			)
		}
	}

	return r
}

func servePlugin(plugin Plugin, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("documentation handler panic",
					logger.String("path", req.URL.Path),
					logger.Any("panic", rec),
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		body, err := plugin.Render()
		if err != nil {
			log.Error("render documentation",
				logger.String("path", req.URL.Path),
				logger.Error(err),
			)
			http.Error(w, "failed to render documentation", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", plugin.MediaType())
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			log.Error("write documentation response", logger.Error(err))
		}
	}
}
