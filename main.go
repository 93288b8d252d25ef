package main

import (
	"io"

	"github.com/allape/bongocat/config"
	"github.com/allape/bongocat/factory"
	"github.com/allape/gogger"
)

var l = gogger.New("main")

func main() {
	conf, err := config.GetConfig()
	if err != nil {
		l.Error().Fatalln("get config:", err)
	}

	device, err := factory.InputFromConfig(conf)
	if err != nil {
		l.Error().Fatalln("input from config:", err)
	}
	if closer, ok := device.(io.Closer); ok {
		defer func() {
			_ = closer.Close()
		}()
	}

	host, err := factory.HostFromConfig(conf)
	if err != nil {
		l.Error().Fatalln("host from config:", err)
	}

	overlay, err := factory.OverlayFromConfig(conf, device)
	if err != nil {
		l.Error().Fatalln("overlay from config:", err)
	}

	l.Info().Println("started")

	err = host.Run(overlay)
	if err != nil {
		l.Error().Fatalln("run:", err)
	}

	l.Info().Println("exiting after", overlay.Frames(), "frames")
}
