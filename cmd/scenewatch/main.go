// Command scenewatch tails the scene snapshot stream from a running
// bracelet server - a headless viewer for checking what the browser
// would see.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/ameliaong/go-bracelet/pkg/protocol"
)

func main() {
	url := flag.String("url", "ws://localhost:8090/ws/scene", "Scene stream URL")
	every := flag.Uint64("every", 30, "Print one line per N frames")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial %s: %v\n", *url, err)
		os.Exit(1)
	}
	defer conn.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Println("stream closed:", err)
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad message: %v\n", err)
			continue
		}

		switch msg.Type {
		case protocol.TypeWelcome:
			w, err := msg.GetWelcomeData()
			if err != nil {
				continue
			}
			fmt.Printf("📿 connected: %d beads x %d letters @ %dHz (pool cap %d)\n",
				w.BeadCount, w.LettersPerBead, w.TickHz, w.PoolCap)

		case protocol.TypeScene:
			s, err := msg.GetSceneData()
			if err != nil || s.Tick%*every != 0 {
				continue
			}
			hand := "no hand"
			if s.Hand.Present {
				hand = fmt.Sprintf("hand %.2f", s.Hand.Distance)
			}
			fmt.Printf("tick %-8d speed %.3f scattered=%-5v ring %.2f floating %-3d %s\n",
				s.Tick, s.Motion.Speed, s.Motion.Scattered, s.RingRotation,
				len(s.Floating), hand)
		}
	}
}
