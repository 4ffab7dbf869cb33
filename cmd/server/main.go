package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/skillswap/internal/server"
	"github.com/dmitrijs2005/skillswap/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	log.Printf("skillswap server: grpc %s, identity backend %s", cfg.EndpointAddrGRPC, cfg.IdentityBackend)

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
