package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ameliaong/go-bracelet/internal/config"
	"github.com/ameliaong/go-bracelet/internal/log"
	"github.com/ameliaong/go-bracelet/pkg/engine"
	"github.com/ameliaong/go-bracelet/pkg/gesture"
	"github.com/ameliaong/go-bracelet/pkg/motion"
	"github.com/ameliaong/go-bracelet/pkg/scene"
	"github.com/ameliaong/go-bracelet/pkg/web"
)

func main() {
	port := flag.String("port", config.Port(), "Dashboard port")
	cameraID := flag.Int("camera", config.CameraID(), "Capture device index")
	noCamera := flag.Bool("no-camera", false, "Run without hand tracking (idle animation)")
	hz := flag.Int("hz", 30, "Frame loop rate")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := config.LogLevel()
	if *debug {
		level = "debug"
	}
	log.Init(level)

	fmt.Println("📿 Word-Bead Bracelet")
	fmt.Printf("   Port: %s  Camera: %d  Rate: %dHz\n", *port, *cameraID, *hz)
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Shutting down...")
		cancel()
	}()

	// Gesture source: webcam pinch tracker, or nothing. A missing or
	// broken camera never stops the animation - the scene idles.
	var source gesture.Source
	var camera *gesture.CameraSource
	if !*noCamera {
		camCfg := gesture.DefaultCameraConfig()
		camCfg.DeviceID = *cameraID
		cam, err := gesture.NewCameraSource(camCfg)
		if err != nil {
			log.Warn("camera unavailable, running idle", "error", err)
		} else {
			camera = cam
			source = cam
			defer camera.Close()
			go camera.Run(ctx)
			fmt.Println("✋ Pinch tracker enabled - pinch to spin, open to scatter")
		}
	}

	sc := scene.New(scene.DefaultConfig(), motion.DefaultConfig())
	eng := engine.New(sc, source, time.Second/time.Duration(*hz))

	server := web.NewServer(*port, eng)
	eng.SetBroadcaster(server.SceneHub())
	server.StartAsync()

	// Preview pump: relay camera frames to dashboard viewers.
	if camera != nil {
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if frame := camera.PreviewJPEG(); frame != nil {
						server.SendCameraFrame(frame)
					}
				}
			}
		}()
	}

	go func() {
		<-ctx.Done()
		eng.Stop()
	}()
	eng.Run()

	if err := server.Shutdown(); err != nil {
		log.Error("server shutdown", "error", err)
	}
	fmt.Println("👋 Goodbye!")
}
