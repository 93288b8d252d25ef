package factory

import (
	"math/rand"
	"time"

	"github.com/allape/bongocat/bongo"
	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/bongo/render"
	"github.com/allape/bongocat/config"
)

// OverlayFromConfig builds the overlay around device. A zero seed draws highlighted keys from the clock.
func OverlayFromConfig(conf config.Config, device input.Device) (*bongo.Overlay, error) {
	seed := conf.Input.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return bongo.New(device, render.NewCompositor(rand.New(rand.NewSource(seed))), bongo.Options{
		Input: conf.InputOptions(),
		Label: conf.Debug.Label,
	})
}
