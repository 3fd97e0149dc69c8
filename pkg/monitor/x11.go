package monitor

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil"

	"github.com/dooshek/windowctl/pkg/geometry"
)

// Enumerate queries XRandR for all active monitors, ordered by CRTC index.
// Disabled CRTCs (zero size or no connected output) are skipped.
func Enumerate(xu *xgbutil.XUtil) ([]Monitor, error) {
	if err := randr.Init(xu.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(xu.Conn(), xu.RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(xu.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			Handle: i,
			Name:   name,
			Rect: geometry.New(
				float64(crtcInfo.X), float64(crtcInfo.Y),
				float64(crtcInfo.Width), float64(crtcInfo.Height),
			),
		})
	}

	return monitors, nil
}
