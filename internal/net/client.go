package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a Server and drives a terminal REPL for a human
// player.
type Client struct {
	conn       net.Conn
	playerName string
}

// Connect dials addr, announces the chosen deck, and runs the REPL.
func Connect(ctx context.Context, addr string, deckNumber int) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", DeckNumber: deckNumber}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	fmt.Println("Connected! Waiting for the host to start...")

	client := &Client{conn: conn, playerName: "Opponent"}
	return client.RunREPL(ctx)
}

// RunREPL decodes ServerMessages and prompts stdin for responses until
// the duel reports game_over.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "choose_action":
			c.renderState(msg.State)
			c.renderActions(msg.Actions)
			idx := c.readChoice(reader, len(msg.Actions))
			if err := enc.Encode(ClientMessage{Type: "action", Index: idx}); err != nil {
				return fmt.Errorf("send action: %w", err)
			}

		case "game_over":
			fmt.Println()
			fmt.Println("=== GAME OVER ===")
			fmt.Println(msg.Result)
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	fmt.Printf("T%-2d [%s] %s\n", ev.Turn, ev.Type, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}
	fmt.Println()
	opp := sv.Opponent
	fmt.Printf("Opponent %s: HP %d, hand %d, deck %d, board %s\n",
		opp.Name, opp.Health, opp.HandCount, opp.DeckCount, formatBoard(opp.Board))

	you := sv.You
	fmt.Printf("You %s: HP %d, mana %d, deck %d, board %s\n",
		you.Name, you.Health, you.Mana, you.DeckCount, formatBoard(you.Board))

	turnInfo := fmt.Sprintf("Turn %d", sv.Turn)
	if sv.IsYourTurn {
		turnInfo += " (your turn)"
	}
	fmt.Println(turnInfo)

	if len(you.Hand) > 0 {
		fmt.Printf("Hand: %s\n", strings.Join(you.Hand, ", "))
	}
}

func formatBoard(units []UnitView) string {
	if len(units) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(units))
	for i, u := range units {
		ready := ""
		if u.CanAttack {
			ready = "*"
		}
		parts[i] = fmt.Sprintf("%s%s[%d/%d]", u.Name, ready, u.Damage, u.Health)
	}
	return strings.Join(parts, " ")
}

func (c *Client) renderActions(actions []ActionView) {
	fmt.Println("Actions:")
	for _, a := range actions {
		fmt.Printf("  %d) %s\n", a.Index+1, a.Desc)
	}
}

func (c *Client) readChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > count {
			fmt.Printf("Enter a number between 1 and %d\n", count)
			continue
		}
		return n - 1
	}
}
