package gesture

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/ameliaong/go-bracelet/internal/log"
)

// CameraConfig holds the tunable parameters of the webcam pinch tracker.
type CameraConfig struct {
	DeviceID int           // Capture device index
	Interval time.Duration // How often to read and analyze a frame

	// Skin segmentation bounds in HSV space. The defaults are wide enough
	// for most lighting; recalibrate with cmd/handcal if the tracker is
	// blind or jumpy.
	SkinLow  gocv.Scalar
	SkinHigh gocv.Scalar

	// MinArea rejects contours smaller than this fraction of the frame,
	// so a stray face edge or lamp does not register as a hand.
	MinArea float64

	// Solidity of the hand blob (contour area / enclosing circle area)
	// maps to openness. A fist is compact (high solidity), spread fingers
	// leave gaps (low solidity).
	FistSolidity float64 // Solidity at or above this reads as distance 0
	OpenSolidity float64 // Solidity at or below this reads as distance 1
}

// DefaultCameraConfig returns the recommended webcam tracker settings.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		DeviceID:     0,
		Interval:     33 * time.Millisecond, // ~30 Hz, matches the frame loop
		SkinLow:      gocv.NewScalar(0, 48, 80, 0),
		SkinHigh:     gocv.NewScalar(20, 255, 255, 0),
		MinArea:      0.02,
		FistSolidity: 0.62,
		OpenSolidity: 0.28,
	}
}

// CameraSource estimates hand openness from a webcam. It segments the
// largest skin-tone blob and converts its solidity into the normalized
// pinch distance the motion mapper expects. It is a stand-in for a full
// landmark model: the core only ever sees the scalar.
//
// The source runs its own capture loop; Sample never touches the camera.
type CameraSource struct {
	config CameraConfig
	webcam *gocv.VideoCapture

	mu      sync.RWMutex
	latest  Signal
	preview []byte // Last JPEG frame for the dashboard

	frames uint64
	misses uint64
}

// NewCameraSource opens the capture device. Call Run to start tracking
// and Close to release the camera.
func NewCameraSource(cfg CameraConfig) (*CameraSource, error) {
	webcam, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.DeviceID, err)
	}
	return &CameraSource{
		config: cfg,
		webcam: webcam,
		latest: Absent,
	}, nil
}

// Sample returns the most recent signal. Safe from any goroutine.
func (c *CameraSource) Sample() Signal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}

// PreviewJPEG returns the last captured frame encoded as JPEG, or nil
// if nothing has been captured yet.
func (c *CameraSource) PreviewJPEG() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preview
}

// Run captures and analyzes frames until the context is cancelled.
func (c *CameraSource) Run(ctx context.Context) {
	ticker := time.NewTicker(c.config.Interval)
	defer ticker.Stop()

	img := gocv.NewMat()
	defer img.Close()

	log.Info("pinch tracker started", "device", c.config.DeviceID)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.step(&img)
		}
	}
}

func (c *CameraSource) step(img *gocv.Mat) {
	if ok := c.webcam.Read(img); !ok || img.Empty() {
		c.miss()
		return
	}
	c.frames++

	sig := c.analyze(*img)

	var preview []byte
	if buf, err := gocv.IMEncode(gocv.JPEGFileExt, *img); err == nil {
		preview = make([]byte, len(buf.GetBytes()))
		copy(preview, buf.GetBytes())
		buf.Close()
	}

	c.mu.Lock()
	prev := c.latest
	c.latest = sig
	if preview != nil {
		c.preview = preview
	}
	c.mu.Unlock()

	if prev.Present != sig.Present {
		log.Debug("hand presence changed", "present", sig.Present, "distance", sig.Distance)
	}
}

func (c *CameraSource) miss() {
	c.misses++
	if c.misses%300 == 1 {
		log.Warn("camera read failed, animating in idle mode", "misses", c.misses)
	}
	c.mu.Lock()
	c.latest = Absent
	c.mu.Unlock()
}

// analyze finds the largest skin-tone contour and maps its solidity to
// a normalized openness distance.
func (c *CameraSource) analyze(img gocv.Mat) Signal {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.InRangeWithScalar(hsv, c.config.SkinLow, c.config.SkinHigh, &mask)

	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(7, 7))
	defer kernel.Close()
	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, kernel)

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	frameArea := float64(img.Cols() * img.Rows())
	bestArea := 0.0
	bestIdx := -1
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area > bestArea {
			bestArea = area
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestArea < c.config.MinArea*frameArea {
		return Absent
	}

	_, _, radius := gocv.MinEnclosingCircle(contours.At(bestIdx))
	circleArea := math.Pi * float64(radius) * float64(radius)
	if circleArea <= 0 {
		return Absent
	}

	solidity := bestArea / circleArea
	span := c.config.FistSolidity - c.config.OpenSolidity
	distance := (c.config.FistSolidity - solidity) / span

	return Signal{Distance: distance, Present: true}.Sanitize()
}

// Close releases the capture device.
func (c *CameraSource) Close() error {
	return c.webcam.Close()
}
