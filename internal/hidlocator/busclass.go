package hidlocator

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// BusType classifies the transport a HID device is attached over.
type BusType int

const (
	BusUnknown BusType = iota
	BusUSB
	BusBluetooth
)

// hidIDPattern captures the leading 4 hex digits of a uevent's HID_ID field,
// which identify the bus per the Linux HID core's bus numbering
// (include/linux/hid.h): BUS_USB is 0x0003, BUS_BLUETOOTH is 0x0005.
var hidIDPattern = regexp.MustCompile(`^HID_ID=([0-9A-Fa-f]{4}):`)

// sysClassHidraw is the sysfs root searched for a hidraw device's uevent
// file. Overridable in tests.
var sysClassHidraw = "/sys/class/hidraw"

// ClassifyBus determines a hidraw device's transport by reading its sysfs
// uevent file. devicePath is the path hidapi reports for the device, e.g.
// "/dev/hidraw3"; the corresponding uevent lives at
// /sys/class/hidraw/hidrawN/device/uevent and contains a line such as
// "HID_ID=0005:0000054C:000009CC" (bluetooth) or "HID_ID=0003:..." (USB).
func ClassifyBus(devicePath string) (BusType, error) {
	name := filepath.Base(devicePath)
	ueventPath := filepath.Join(sysClassHidraw, name, "device", "uevent")

	f, err := os.Open(ueventPath)
	if err != nil {
		return BusUnknown, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		m := hidIDPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "0005":
			return BusBluetooth, nil
		case "0003":
			return BusUSB, nil
		default:
			return BusUnknown, nil
		}
	}
	return BusUnknown, scanner.Err()
}
