package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/devserver"
	"github.com/automoto/herbclinic/logging"
	"github.com/automoto/herbclinic/shared/messages"
)

func main() {
	port := flag.Int("port", 3000, "HTTP listen port")
	token := flag.String("token", "", "Require this bearer token")
	gold := flag.Int("gold", 500, "Gold of a new save")
	logFile := flag.String("log", "", "Log file path (empty = stderr only)")
	debug := flag.Bool("debug", false, "Log every request")
	flag.Parse()

	log := logging.New(*logFile, *debug)
	defer logging.Sync(log)

	items := make([]messages.ItemDef, 0, len(config.Market.Herbs))
	for _, h := range config.Market.Herbs {
		items = append(items, messages.ItemDef{
			ID:          h.ID,
			Name:        h.Name,
			Description: fmt.Sprintf("%s，%s可采。", h.Name, h.Season),
			Price:       h.Price,
		})
	}

	st := devserver.NewStore(items, config.Saves.MaxSaves, devserver.Defaults{
		Gold:     *gold,
		Level:    1,
		Position: messages.Position{MapID: config.Maps.Start},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           devserver.NewMux(st, *token, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("[devserver] starting on %s (%d items)", srv.Addr, len(items))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("[devserver] fatal: %v", err)
	}
}
