//go:build windows

package window

func platformCapabilities() Capabilities {
	return Capabilities{
		SkipTaskbar: true,
		Shadow:      true,
	}
}
