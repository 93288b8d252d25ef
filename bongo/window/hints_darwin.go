//go:build darwin

package window

func platformCapabilities() Capabilities {
	return Capabilities{
		HideTitlebar:           true,
		VisibleOnAllWorkspaces: true,
		Shadow:                 true,
	}
}
