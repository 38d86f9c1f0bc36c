// Package web bridges a browser WebSocket connection to a running
// internal/net TCP duel server and serves the small demonstration
// catalog and deck list as JSON. There is no bundled browser UI in this
// repository, only the API and proxy a UI would need.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"

	"github.com/cardforge/duelcore/internal/game"
)

// CardInfo is the JSON shape of one catalog entry for /api/cards.
type CardInfo struct {
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	Kind    string `json:"kind"`
	Ability string `json:"ability"`
	Damage  int    `json:"damage,omitempty"`
	Health  int    `json:"health,omitempty"`
}

// DeckInfo is the JSON shape of one deck list entry for /api/decks.
type DeckInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Cards  []string `json:"cards"`
}

// Server serves the catalog/deck JSON APIs and proxies a browser
// WebSocket to a TCP duel server over internal/net's protocol.
type Server struct {
	DecksFile string
	mux       *http.ServeMux
}

// NewServer builds a Server backed by the deck list at decksFile.
func NewServer(decksFile string) *Server {
	s := &Server{DecksFile: decksFile, mux: http.NewServeMux()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	cards := make([]CardInfo, 0, len(game.Catalog))
	for name, ctor := range game.Catalog {
		c := ctor()
		cards = append(cards, CardInfo{
			Name: name, Cost: c.Cost, Kind: c.Kind.String(), Ability: c.Ability.Kind.String(),
			Damage: c.Damage, Health: c.Health,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := game.ParseDeckFile(s.DecksFile)
	if err != nil {
		http.Error(w, "could not parse decks file", http.StatusInternalServerError)
		return
	}

	var out []DeckInfo
	num := 1
	for name, cards := range decks {
		di := DeckInfo{Number: num, Name: name}
		seen := map[string]bool{}
		for _, c := range cards {
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		out = append(out, di)
		num++
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// handleWebSocket accepts a browser WebSocket, dials the TCP duel
// server named in the browser's "connect" message, and pipes frames
// bidirectionally until either side closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("websocket accept: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("websocket read connect: %v", err)
		return
	}
	var connectMsg struct {
		Type       string `json:"type"`
		Addr       string `json:"addr"`
		DeckNumber int    `json:"deck_number"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{
			"type": "error", "result": fmt.Sprintf("could not connect to duel server at %s: %v", connectMsg.Addr, err),
		})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	joinMsg, _ := json.Marshal(map[string]any{"type": "join", "deck_number": connectMsg.DeckNumber})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		log.Printf("tcp write join: %v", err)
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					log.Printf("tcp read: %v", err)
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				log.Printf("websocket write: %v", err)
				return
			}
		}
	}()

	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				log.Printf("tcp write: %v", err)
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "duel ended")
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
