package panel

import (
	"fmt"
	"strings"
)

const (
	MaxSensitivity = 4.0
	MaxDeadzone    = 100
)

// Settings is the snapshot of device state the panel displays. The struct
// tags make it embeddable in the command line and configuration files.
type Settings struct {
	DeviceName  string  `name:"device-name" help:"Device name shown in the panel." default:"SpaceNavigator"`
	DevicePath  string  `name:"device-path" help:"Device node shown in the panel." default:"/dev/input/event0"`
	DeviceType  string  `name:"device-type" help:"Device model used to pick the picture." default:"snav"`
	Axes        int     `help:"Number of device axes." default:"6"`
	Buttons     int     `help:"Number of device buttons." default:"2"`
	Sensitivity float64 `help:"Global sensitivity (0-4)." default:"1.0"`
	Deadzone    int     `help:"Dead-zone threshold (0-100)." default:"2"`
	LED         bool    `name:"led" help:"Device LED lit." default:"true" negatable:""`
	Grab        bool    `help:"Device grabbed exclusively."`
}

// Validate rejects values the panel cannot represent.
func (s Settings) Validate() error {
	if s.Sensitivity < 0 || s.Sensitivity > MaxSensitivity {
		return fmt.Errorf("sensitivity %.2f out of range [0, %g]", s.Sensitivity, MaxSensitivity)
	}
	if s.Deadzone < 0 || s.Deadzone > MaxDeadzone {
		return fmt.Errorf("deadzone %d out of range [0, %d]", s.Deadzone, MaxDeadzone)
	}
	return nil
}

// Model is one entry of the device picture atlas.
type Model struct {
	Key      string
	Name     string
	Col, Row int
}

// Models lists the known devices and their cell in the picture atlas.
var Models = []Model{
	{"unknown", "Unknown device", 0, 0},
	{"sb2003", "Spaceball 2003", 1, 0},
	{"sb3003", "Spaceball 3003", 2, 0},
	{"sb4000", "Spaceball 4000 FLX", 3, 0},
	{"sm", "Magellan SpaceMouse", 5, 0},
	{"sm5000", "SpaceMouse 5000", 2, 0},
	{"smcadman", "SpaceMouse CadMan", 6, 0},
	{"plusxt", "SpaceMouse Plus XT", 5, 0},
	{"cadman", "CadMan", 6, 0},
	{"smclassic", "SpaceMouse Classic", 4, 0},
	{"sb5000", "Spaceball 5000", 3, 0},
	{"stravel", "SpaceTraveller", 2, 1},
	{"spilot", "SpacePilot", 3, 1},
	{"snav", "SpaceNavigator", 0, 1},
	{"sexp", "SpaceExplorer", 4, 1},
	{"snavnb", "SpaceNavigator for Notebooks", 1, 1},
	{"spilotpro", "SpacePilot Pro", 5, 1},
	{"smpro", "SpaceMouse Pro", 6, 1},
	{"nulooq", "NuLOOQ", 7, 0},
	{"smw", "SpaceMouse Wireless", 1, 2},
	{"smprow", "SpaceMouse Pro Wireless", 6, 1},
	{"sment", "SpaceMouse Enterprise", 7, 1},
	{"smcomp", "SpaceMouse Compact", 0, 2},
	{"smmod", "SpaceMouse Module", 0, 0},
}

// LookupModel finds a model by key; unknown keys map to Models[0].
func LookupModel(key string) Model {
	key = strings.ToLower(key)
	for _, m := range Models {
		if m.Key == key {
			return m
		}
	}
	return Models[0]
}

// NextModel returns the model after key, wrapping around.
func NextModel(key string) Model {
	key = strings.ToLower(key)
	for i, m := range Models {
		if m.Key == key {
			return Models[(i+1)%len(Models)]
		}
	}
	return Models[0]
}
