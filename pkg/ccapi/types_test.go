package ccapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuzzerType(t *testing.T) {
	buzzer, err := ParseBuzzerType("triple")
	require.NoError(t, err)
	assert.Equal(t, BuzzerTriple, buzzer)
	assert.Equal(t, 3, int(buzzer))

	buzzer, err = ParseBuzzerType("continuous")
	require.NoError(t, err)
	assert.Equal(t, 0, int(buzzer))

	_, err = ParseBuzzerType("quadruple")
	assert.Error(t, err)
}

func TestParseNotifyIcon(t *testing.T) {
	icon, err := ParseNotifyIcon("trophy4")
	require.NoError(t, err)
	assert.Equal(t, IconTrophy4, icon)
	assert.Equal(t, 19, int(icon))

	icon, err = ParseNotifyIcon("info")
	require.NoError(t, err)
	assert.Equal(t, 0, int(icon))

	icon, err = ParseNotifyIcon("wrongway")
	require.NoError(t, err)
	assert.Equal(t, 4, int(icon))

	_, err = ParseNotifyIcon("sparkles")
	assert.Error(t, err)
}

func TestNotifyIconString(t *testing.T) {
	assert.Equal(t, "dialogshadow", IconDialogShadow.String())
	assert.Equal(t, "unknown", NotifyIcon(99).String())
}

func TestParseLed(t *testing.T) {
	color, err := ParseLedColor("green")
	require.NoError(t, err)
	assert.Equal(t, 1, int(color))

	_, err = ParseLedColor("blue")
	assert.Error(t, err)

	status, err := ParseLedStatus("blink")
	require.NoError(t, err)
	assert.Equal(t, 2, int(status))

	_, err = ParseLedStatus("strobe")
	assert.Error(t, err)
}

func TestShutdownModeValues(t *testing.T) {
	assert.Equal(t, 1, int(ShutdownPowerOff))
	assert.Equal(t, 2, int(ShutdownSoftReboot))
	assert.Equal(t, 3, int(ShutdownHardReboot))
}

func TestConsoleTypeFromValue(t *testing.T) {
	assert.Equal(t, ConsoleCEX, consoleTypeFromValue(1))
	assert.Equal(t, ConsoleTOOL, consoleTypeFromValue(3))
	assert.Equal(t, ConsoleUnknown, consoleTypeFromValue(7))

	assert.Equal(t, "TOOL", ConsoleTOOL.String())
	assert.Equal(t, "unknown", ConsoleUnknown.String())
}
