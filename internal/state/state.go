package state

import (
	"sync"
	"time"

	"github.com/dooshek/windowctl/internal/types"
)

var (
	once     sync.Once
	instance *AppState
)

type AppState struct {
	Config *types.Config
}

func Init(cfg *types.Config) {
	once.Do(func() {
		instance = &AppState{
			Config: cfg,
		}
	})
}

func Get() *AppState {
	if instance == nil {
		panic("AppState not initialized")
	}
	return instance
}

func (s *AppState) GetDefaultAnimation() string {
	return s.Config.GetMoveConfig().Animation
}

func (s *AppState) GetMoveDuration() time.Duration {
	return time.Duration(s.Config.GetMoveConfig().DurationMs) * time.Millisecond
}

func (s *AppState) GetMoveSteps() int {
	return s.Config.GetMoveConfig().Steps
}
