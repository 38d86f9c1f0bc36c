package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/cardforge/duelcore/internal/duel"
	"github.com/cardforge/duelcore/internal/game"
	"github.com/cardforge/duelcore/internal/log"
)

// Server hosts a duel between the local host process and exactly one
// remote client.
type Server struct {
	DeckFile string
	Port     string
	HostDeck int // 1-indexed
}

// Run listens, accepts one joiner, loads both decks, and runs the duel
// to completion.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for opponent on port %s...\n", s.Port)
	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()
	fmt.Printf("Opponent connected from %s\n", conn.RemoteAddr())

	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	joinerDeck := joinMsg.DeckNumber
	if joinerDeck == 0 {
		joinerDeck = 2
	}

	hostDeckName, hostCards, err := game.DeckByNumber(s.DeckFile, s.HostDeck)
	if err != nil {
		return fmt.Errorf("load host deck: %w", err)
	}
	joinerDeckName, joinerCards, err := game.DeckByNumber(s.DeckFile, joinerDeck)
	if err != nil {
		return fmt.Errorf("load joiner deck: %w", err)
	}
	fmt.Printf("Host: %s (%d cards)\n", hostDeckName, len(hostCards))
	fmt.Printf("Opponent: %s (%d cards)\n", joinerDeckName, len(joinerCards))

	hostConn, hostServerConn := net.Pipe()
	hostCtrl := NewNetworkController(hostServerConn, 0)
	joinerCtrl := NewNetworkController(conn, 1)

	d, err := duel.NewDuel(duel.DuelConfig{
		Player0Name: "Host",
		Player1Name: "Opponent",
		Deck0:       hostCards,
		Deck1:       joinerCards,
		Logger:      log.NewTextLogger(os.Stdout),
	}, hostCtrl, joinerCtrl)
	if err != nil {
		return fmt.Errorf("new duel: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		client := &Client{conn: hostConn, playerName: "Host"}
		errCh <- client.RunREPL(ctx)
	}()
	go func() {
		winner, runErr := d.Run(ctx)
		if runErr != nil {
			errCh <- fmt.Errorf("duel error: %w", runErr)
			return
		}
		result := d.Game.Result()
		_ = joinerCtrl.SendGameOver(winner, fmt.Sprintf("%s wins after %d turns", result.WinnerID, result.Turns))
		_ = hostCtrl.SendGameOver(winner, fmt.Sprintf("%s wins after %d turns", result.WinnerID, result.Turns))
		errCh <- nil
	}()

	return <-errCh
}
