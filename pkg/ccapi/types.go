package ccapi

import "github.com/pkg/errors"

// BuzzerType selects the ring pattern of the console buzzer.
type BuzzerType int

const (
	BuzzerContinuous BuzzerType = 0
	BuzzerSingle     BuzzerType = 1
	BuzzerDouble     BuzzerType = 2
	BuzzerTriple     BuzzerType = 3
)

func (t BuzzerType) String() string {
	switch t {
	case BuzzerContinuous:
		return "continuous"
	case BuzzerSingle:
		return "single"
	case BuzzerDouble:
		return "double"
	case BuzzerTriple:
		return "triple"
	}
	return "unknown"
}

// ParseBuzzerType converts a CLI argument into a BuzzerType.
func ParseBuzzerType(s string) (BuzzerType, error) {
	switch s {
	case "continuous":
		return BuzzerContinuous, nil
	case "single":
		return BuzzerSingle, nil
	case "double":
		return BuzzerDouble, nil
	case "triple":
		return BuzzerTriple, nil
	}
	return 0, errors.Errorf("invalid buzzer type %q", s)
}

// ShutdownMode selects between a full power-off and the two reboot flavors.
type ShutdownMode int

const (
	ShutdownPowerOff   ShutdownMode = 1
	ShutdownSoftReboot ShutdownMode = 2
	ShutdownHardReboot ShutdownMode = 3
)

func (m ShutdownMode) String() string {
	switch m {
	case ShutdownPowerOff:
		return "shutdown"
	case ShutdownSoftReboot:
		return "soft reboot"
	case ShutdownHardReboot:
		return "hard reboot"
	}
	return "unknown"
}

// NotifyIcon is the icon shown next to an on-screen notification.
type NotifyIcon int

const (
	IconInfo NotifyIcon = iota
	IconCaution
	IconFriend
	IconSlider
	IconWrongWay
	IconDialog
	IconDialogShadow
	IconText
	IconPointer
	IconGrab
	IconHand
	IconPen
	IconFinger
	IconArrow
	IconArrowRight
	IconProgress
	IconTrophy1
	IconTrophy2
	IconTrophy3
	IconTrophy4
)

var notifyIconNames = map[string]NotifyIcon{
	"info":         IconInfo,
	"caution":      IconCaution,
	"friend":       IconFriend,
	"slider":       IconSlider,
	"wrongway":     IconWrongWay,
	"dialog":       IconDialog,
	"dialogshadow": IconDialogShadow,
	"text":         IconText,
	"pointer":      IconPointer,
	"grab":         IconGrab,
	"hand":         IconHand,
	"pen":          IconPen,
	"finger":       IconFinger,
	"arrow":        IconArrow,
	"arrowright":   IconArrowRight,
	"progress":     IconProgress,
	"trophy1":      IconTrophy1,
	"trophy2":      IconTrophy2,
	"trophy3":      IconTrophy3,
	"trophy4":      IconTrophy4,
}

// ParseNotifyIcon converts a CLI argument into a NotifyIcon.
func ParseNotifyIcon(s string) (NotifyIcon, error) {
	icon, ok := notifyIconNames[s]
	if !ok {
		return 0, errors.Errorf("invalid notify icon %q", s)
	}
	return icon, nil
}

func (i NotifyIcon) String() string {
	for name, icon := range notifyIconNames {
		if icon == i {
			return name
		}
	}
	return "unknown"
}

// LedColor is one of the two console LED colors.
type LedColor int

const (
	LedGreen LedColor = 1
	LedRed   LedColor = 2
)

func (c LedColor) String() string {
	switch c {
	case LedGreen:
		return "green"
	case LedRed:
		return "red"
	}
	return "unknown"
}

// ParseLedColor converts a CLI argument into a LedColor.
func ParseLedColor(s string) (LedColor, error) {
	switch s {
	case "green":
		return LedGreen, nil
	case "red":
		return LedRed, nil
	}
	return 0, errors.Errorf("invalid LED color %q", s)
}

// LedStatus switches a console LED off, on or blinking.
type LedStatus int

const (
	LedOff   LedStatus = 0
	LedOn    LedStatus = 1
	LedBlink LedStatus = 2
)

func (s LedStatus) String() string {
	switch s {
	case LedOff:
		return "off"
	case LedOn:
		return "on"
	case LedBlink:
		return "blink"
	}
	return "unknown"
}

// ParseLedStatus converts a CLI argument into a LedStatus.
func ParseLedStatus(s string) (LedStatus, error) {
	switch s {
	case "off":
		return LedOff, nil
	case "on":
		return LedOn, nil
	case "blink":
		return LedBlink, nil
	}
	return 0, errors.Errorf("invalid LED status %q", s)
}

// ConsoleType is the hardware flavor reported by the firmware.
type ConsoleType int

const (
	ConsoleUnknown ConsoleType = 0
	ConsoleCEX     ConsoleType = 1
	ConsoleDEX     ConsoleType = 2
	ConsoleTOOL    ConsoleType = 3
)

func (t ConsoleType) String() string {
	switch t {
	case ConsoleCEX:
		return "CEX"
	case ConsoleDEX:
		return "DEX"
	case ConsoleTOOL:
		return "TOOL"
	}
	return "unknown"
}

func consoleTypeFromValue(v int) ConsoleType {
	switch v {
	case 1:
		return ConsoleCEX
	case 2:
		return ConsoleDEX
	case 3:
		return ConsoleTOOL
	}
	return ConsoleUnknown
}

// FirmwareInfo is the console firmware identification.
type FirmwareInfo struct {
	FirmwareVersion uint32
	APIVersion      uint32
	Type            ConsoleType
}

// TemperatureInfo holds the CELL and RSX temperatures in celsius.
type TemperatureInfo struct {
	Cell int32
	RSX  int32
}
