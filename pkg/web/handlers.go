package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/ameliaong/go-bracelet/pkg/hub"
	"github.com/ameliaong/go-bracelet/pkg/protocol"
)

// TuningParams holds the live-adjustable gesture mapping parameters.
// Only non-zero fields are applied on POST, so callers can nudge one
// knob without restating the rest.
type TuningParams struct {
	PinchThreshold   float64 `json:"pinch_threshold"`
	ScatterThreshold float64 `json:"scatter_threshold"`
	IdleSpeed        float64 `json:"idle_speed"`
	FastSpeed        float64 `json:"fast_speed"`
	IdleSmoothing    float64 `json:"idle_smoothing"`
	ScatterSmoothing float64 `json:"scatter_smoothing"`
	PinchSmoothing   float64 `json:"pinch_smoothing"`
	ScatterGain      float64 `json:"scatter_gain"`
}

// handleState returns frame-loop diagnostics.
func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.engine.Stats())
}

// handleConfig returns the scene geometry and animation constants.
func (s *Server) handleConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"scene":  s.engine.Scene().Config(),
		"motion": s.engine.MotionConfig(),
	})
}

// handleGetTuning returns the current mapper parameters.
func (s *Server) handleGetTuning(c *fiber.Ctx) error {
	cfg := s.engine.MotionConfig()
	return c.JSON(TuningParams{
		PinchThreshold:   cfg.PinchThreshold,
		ScatterThreshold: cfg.ScatterThreshold,
		IdleSpeed:        cfg.IdleSpeed,
		FastSpeed:        cfg.FastSpeed,
		IdleSmoothing:    cfg.IdleSmoothing,
		ScatterSmoothing: cfg.ScatterSmoothing,
		PinchSmoothing:   cfg.PinchSmoothing,
		ScatterGain:      cfg.ScatterGain,
	})
}

// handleSetTuning applies non-zero tuning parameters at runtime.
func (s *Server) handleSetTuning(c *fiber.Ctx) error {
	var params TuningParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	cfg := s.engine.MotionConfig()
	if params.PinchThreshold > 0 {
		cfg.PinchThreshold = params.PinchThreshold
	}
	if params.ScatterThreshold > 0 {
		cfg.ScatterThreshold = params.ScatterThreshold
	}
	if params.IdleSpeed > 0 {
		cfg.IdleSpeed = params.IdleSpeed
	}
	if params.FastSpeed > 0 {
		cfg.FastSpeed = params.FastSpeed
	}
	if params.IdleSmoothing > 0 {
		cfg.IdleSmoothing = clamp01(params.IdleSmoothing)
	}
	if params.ScatterSmoothing > 0 {
		cfg.ScatterSmoothing = clamp01(params.ScatterSmoothing)
	}
	if params.PinchSmoothing > 0 {
		cfg.PinchSmoothing = clamp01(params.PinchSmoothing)
	}
	if params.ScatterGain > 0 {
		cfg.ScatterGain = params.ScatterGain
	}
	s.engine.SetMotionConfig(cfg)

	return s.handleGetTuning(c)
}

// handleSceneWS streams per-frame scene snapshots to a viewer.
func (s *Server) handleSceneWS(c *websocket.Conn) {
	client := hub.NewClient(s.sceneHub, c)
	client.OnConnect = func(cl *hub.Client) {
		sceneCfg := s.engine.Scene().Config()
		msg, err := protocol.NewWelcomeMessage(protocol.WelcomeData{
			TickHz:         int(1.0 / s.engine.TickRate().Seconds()),
			BeadCount:      sceneCfg.BeadCount,
			BraceletRadius: sceneCfg.BraceletRadius,
			BeadRadius:     sceneCfg.BeadRadius,
			LettersPerBead: sceneCfg.LettersPerBead,
			PoolCap:        sceneCfg.PoolCap(),
		})
		if err != nil {
			return
		}
		data, err := msg.Bytes()
		if err != nil {
			return
		}
		cl.Send(hub.NewJSONMessage(data))
	}
	client.Run()
}

// handleCameraWS streams JPEG preview frames to a viewer.
func (s *Server) handleCameraWS(c *websocket.Conn) {
	client := hub.NewClient(s.cameraHub, c)
	client.Run()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
