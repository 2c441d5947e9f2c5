// Command handcal prints the live pinch-tracker signal so the skin
// segmentation and solidity bounds can be calibrated against a real
// hand and real lighting.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ameliaong/go-bracelet/internal/config"
	"github.com/ameliaong/go-bracelet/internal/log"
	"github.com/ameliaong/go-bracelet/pkg/gesture"
)

func main() {
	cameraID := flag.Int("camera", config.CameraID(), "Capture device index")
	flag.Parse()

	log.Init(config.LogLevel())

	camCfg := gesture.DefaultCameraConfig()
	camCfg.DeviceID = *cameraID
	cam, err := gesture.NewCameraSource(camCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open camera: %v\n", err)
		os.Exit(1)
	}
	defer cam.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go cam.Run(ctx)

	fmt.Println("✋ Pinch calibration - make a fist (→ 0.00), open wide (→ 1.00), Ctrl-C to quit")

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case <-ticker.C:
			sig := cam.Sample()
			if !sig.Present {
				fmt.Printf("\r  no hand                                                    ")
				continue
			}
			bar := strings.Repeat("█", int(sig.Distance*40))
			fmt.Printf("\r  distance %.3f %-40s", sig.Distance, bar)
		}
	}
}
