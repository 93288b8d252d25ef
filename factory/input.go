package factory

import (
	"fmt"

	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/bongo/input/desktop"
	"github.com/allape/bongocat/bongo/input/dummy"
	"github.com/allape/bongocat/config"
)

func InputFromConfig(conf config.Config) (input.Device, error) {
	switch conf.Input.Type {
	case config.InputDesktop:
		l.Info().Println("input driver is desktop, global:", conf.Input.Global)
		device := desktop.NewDevice(&desktop.Options{
			WindowWidth:  conf.Window.Width,
			WindowHeight: conf.Window.Height,
			Offset:       conf.Window.Offset,
		})
		if conf.Input.Global {
			device.Listen()
		} else {
			l.Warn().Println("global input disabled, keys and buttons only register while the overlay is focused")
		}
		return device, nil
	case config.InputDummy:
		l.Info().Println("input driver is dummy:", conf.Input.Ext)

		ext := conf.Input.Ext
		period, err := ext.GetInt("period", 0)
		if err != nil {
			return nil, err
		}
		keyEvery, err := ext.GetInt("key_every", 0)
		if err != nil {
			return nil, err
		}
		clickEvery, err := ext.GetInt("click_every", 0)
		if err != nil {
			return nil, err
		}
		failEvery, err := ext.GetInt("fail_every", 0)
		if err != nil {
			return nil, err
		}

		return dummy.NewDevice(&dummy.Options{
			MonitorWidth:  conf.Input.MonitorWidth,
			MonitorHeight: conf.Input.MonitorHeight,
			WindowWidth:   conf.Window.Width,
			WindowHeight:  conf.Window.Height,
			Offset:        conf.Window.Offset,
			Period:        period,
			KeyEvery:      keyEvery,
			ClickEvery:    clickEvery,
			FailEvery:     failEvery,
		}), nil
	default:
		return nil, fmt.Errorf("unknown input driver: %s", conf.Input.Type)
	}
}
