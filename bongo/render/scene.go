package render

import (
	"image/color"

	"github.com/allape/bongocat/bongo/anim"
	"github.com/allape/bongocat/bongo/geom"
	"github.com/allape/bongocat/bongo/paths"
)

// Layer
// One shape to draw. A nil Fill or Stroke skips that pass, fill goes first.
type Layer struct {
	Name      string
	Path      geom.Path
	Transform geom.Transform
	Fill      *color.NRGBA
	Stroke    *color.NRGBA
}

func filled(name string, p geom.Path, tf geom.Transform, fill color.NRGBA) Layer {
	return Layer{Name: name, Path: p, Transform: tf, Fill: &fill}
}

func stroked(name string, p geom.Path, tf geom.Transform, stroke color.NRGBA) Layer {
	return Layer{Name: name, Path: p, Transform: tf, Stroke: &stroke}
}

func filledAndStroked(name string, p geom.Path, tf geom.Transform, fill, stroke color.NRGBA) Layer {
	return Layer{Name: name, Path: p, Transform: tf, Fill: &fill, Stroke: &stroke}
}

// Scene
// Lays out a frame back to front. Later layers cover earlier ones, the order
// is part of the picture and must not change.
func Scene(f anim.Frame, v Viewport) []Layer {
	base := v.Transform()
	eyes := base.PreTranslate(f.Eyes.X, f.Eyes.Y)
	mouth := base.PreTranslate(f.Mouth.X, f.Mouth.Y)
	body := base.PreTranslate(f.Body.X, f.Body.Y)
	mouse := base.PreTranslate(f.Mouse.X, f.Mouse.Y)

	wheel := MousepadFill
	if f.Input.Middle {
		wheel = Blue
	}

	layers := make([]Layer, 0, 32)
	layers = append(layers,
		filledAndStroked("table", paths.Table, base, White, Black),
		filledAndStroked("mousepad", paths.Mousepad, base, MousepadFill, MousepadStroke),
		filledAndStroked("mouse", paths.Mouse, mouse, White, Black),
		filledAndStroked("mouse_wheel", paths.MouseWheel, mouse, wheel, Black),
		stroked("table_line_left", paths.TableLineLeft, base, Black),
		filled("body_fill", f.BodyFill, body, White),
		stroked("body_stroke", f.BodyStroke, body, Black),
		stroked("table_line_right", paths.TableLineRight, base, Black),
	)

	for i, key := range paths.Keys {
		if i == f.Key {
			layers = append(layers, filledAndStroked("key_highlight", key, base, Blue, DarkBlue))
		} else {
			layers = append(layers, filledAndStroked("key", key, base, White, Black))
		}
	}

	if f.Neutral() {
		layers = append(layers,
			stroked("left_hand", paths.LeftHand, body, Black),
			filledAndStroked("paws", paths.Paws, body, Pink, PinkStroke),
		)
	} else {
		layers = append(layers, filledAndStroked("left_hand_down", f.Paw, body, White, Black))
	}

	layers = append(layers,
		filled("eyes", paths.Eyes, eyes, Black),
		filled("mouth", paths.Mouth, mouth, Black),
	)

	if f.Input.Left {
		layers = append(layers, filled("mouse_button_left", paths.MouseButtonLeft, mouse, Blue))
	}
	if f.Input.Right {
		layers = append(layers, filled("mouse_button_right", paths.MouseButtonRight, mouse, Blue))
	}

	return layers
}
