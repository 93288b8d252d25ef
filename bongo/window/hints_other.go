//go:build !windows && !darwin

package window

func platformCapabilities() Capabilities {
	return Capabilities{}
}
