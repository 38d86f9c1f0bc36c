package main

import (
	"context"

	duelnet "github.com/cardforge/duelcore/internal/net"
)

func hostDuel(ctx context.Context, decksFile, port string, deck int) error {
	srv := &duelnet.Server{
		DeckFile: decksFile,
		Port:     port,
		HostDeck: deck,
	}
	return srv.Run(ctx)
}

func joinDuel(ctx context.Context, addr string, deck int) error {
	return duelnet.Connect(ctx, addr, deck)
}
