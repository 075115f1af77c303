package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

type Report struct {
	Meta    Meta    `json:"meta"`
	Summary Summary `json:"summary"`
	Samples []Entry `json:"samples"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Model       string          `json:"model"`
	Steps       int             `json:"steps"`
	Input       string          `json:"input"`
	Output      string          `json:"output"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// Entry is one swept input. Output is nil when no rule fired and the centre
// of mass is undefined.
type Entry struct {
	Input  float64  `json:"input"`
	Output *float64 `json:"output"`
}

type Summary struct {
	Count     int          `json:"count"`
	Undefined int          `json:"undefined"`
	Min       *float64     `json:"min,omitempty"`
	Max       *float64     `json:"max,omitempty"`
	Mean      *float64     `json:"mean,omitempty"`
	Latency   LatencyStats `json:"latency"`
}
