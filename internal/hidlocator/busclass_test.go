package hidlocator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUevent(t *testing.T, root, name, contents string) {
	t.Helper()
	dir := filepath.Join(root, name, "device")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uevent"), []byte(contents), 0o644))
}

func TestClassifyBus(t *testing.T) {
	root := t.TempDir()
	old := sysClassHidraw
	sysClassHidraw = root
	defer func() { sysClassHidraw = old }()

	writeUevent(t, root, "hidraw0", "DRIVER=sony\nHID_ID=0005:0000054C:00000CE6\nHID_NAME=Wireless Controller\n")
	writeUevent(t, root, "hidraw1", "DRIVER=sony\nHID_ID=0003:0000054C:00000CE6\nHID_NAME=Wireless Controller\n")
	writeUevent(t, root, "hidraw2", "DRIVER=other\nHID_ID=00AB:00001234:00005678\n")

	bt, err := ClassifyBus("/dev/hidraw0")
	require.NoError(t, err)
	assert.Equal(t, BusBluetooth, bt)

	usb, err := ClassifyBus("/dev/hidraw1")
	require.NoError(t, err)
	assert.Equal(t, BusUSB, usb)

	unknown, err := ClassifyBus("/dev/hidraw2")
	require.NoError(t, err)
	assert.Equal(t, BusUnknown, unknown)

	_, err = ClassifyBus("/dev/hidraw99")
	assert.Error(t, err)
}
