package factory

import (
	"fmt"

	"github.com/allape/bongocat/bongo"
	"github.com/allape/bongocat/bongo/host/desktop"
	"github.com/allape/bongocat/bongo/host/headless"
	"github.com/allape/bongocat/config"
)

func HostFromConfig(conf config.Config) (bongo.Host, error) {
	switch conf.Surface.Type {
	case config.SurfaceDesktop:
		l.Info().Println("surface driver is desktop")
		hints, err := conf.Window.Hints.Get()
		if err != nil {
			return nil, err
		}
		return desktop.NewHost(&desktop.Options{
			TPS:   conf.Window.TPS,
			Hints: hints,
		}), nil
	case config.SurfaceHeadless:
		l.Info().Println("surface driver is headless:", conf.Surface.Dir)
		return headless.NewHost(&headless.Options{
			Dir:    conf.Surface.Dir,
			TPS:    conf.Window.TPS,
			Frames: conf.Surface.Frames,
		}), nil
	default:
		return nil, fmt.Errorf("unknown surface driver: %s", conf.Surface.Type)
	}
}
