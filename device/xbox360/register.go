package xbox360

import "github.com/padbridge/gamepad-bridge/gamepad"

func init() {
	gamepad.Register(gamepad.Descriptor{
		DisplayName: DisplayName,
		Aliases:     []string{"xbox360", "x360", "xbox-360"},
		VendorID:    VendorID,
		ProductID:   ProductID,
		MinInputLen: MinInputLen,
		ReportLen:   ReportLen,
		Decode:      Decode,
		Encode:      nil,
		Supported:   false,
	})
}
