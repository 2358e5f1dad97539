package ps5

import "github.com/padbridge/gamepad-bridge/gamepad"

func init() {
	gamepad.Register(gamepad.Descriptor{
		DisplayName: DisplayName,
		Aliases:     []string{"ps5", "dualsense", "sony-ps5"},
		VendorID:    VendorID,
		ProductID:   ProductID,
		MinInputLen: MinInputLen,
		ReportLen:   ReportLen,
		Decode:      Decode,
		Encode:      Encode,
		Supported:   true,
	})
}
