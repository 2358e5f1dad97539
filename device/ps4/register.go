package ps4

import "github.com/padbridge/gamepad-bridge/gamepad"

func init() {
	gamepad.Register(gamepad.Descriptor{
		DisplayName: DisplayName,
		Aliases:     []string{"ps4", "dualshock", "dualshock4", "sony-ps4"},
		VendorID:    VendorID,
		ProductID:   ProductID,
		MinInputLen: MinInputLen,
		ReportLen:   ReportLen,
		Decode:      Decode,
		Encode:      Encode,
		Supported:   true,
	})
}
