package mappool

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Mode is a game mode tag.
type Mode string

const (
	ModeTurfWar    Mode = "TW"
	ModeSplatZones Mode = "SZ"
	ModeTowerCtrl  Mode = "TC"
	ModeRainmaker  Mode = "RM"
	ModeClamBlitz  Mode = "CB"
)

const modeUnknownRank = 99

// Modes lists every mode in canonical order.
var Modes = []Mode{ModeTurfWar, ModeSplatZones, ModeTowerCtrl, ModeRainmaker, ModeClamBlitz}

// RankedModes are the four modes a ranked tournament rotates through.
var RankedModes = []Mode{ModeSplatZones, ModeTowerCtrl, ModeRainmaker, ModeClamBlitz}

// ParseMode converts a mode tag as found in tournament data.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "TW":
		return ModeTurfWar, nil
	case "SZ":
		return ModeSplatZones, nil
	case "TC":
		return ModeTowerCtrl, nil
	case "RM":
		return ModeRainmaker, nil
	case "CB":
		return ModeClamBlitz, nil
	}
	return "", eris.Errorf("unknown mode %q", s)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m.rank() != modeUnknownRank
}

// Compare orders modes canonically; unknown modes sort last.
func (m Mode) Compare(other Mode) int {
	return m.rank() - other.rank()
}

func (m Mode) rank() int {
	switch m {
	case ModeTurfWar:
		return 0
	case ModeSplatZones:
		return 1
	case ModeTowerCtrl:
		return 2
	case ModeRainmaker:
		return 3
	case ModeClamBlitz:
		return 4
	}
	return modeUnknownRank
}

// StageID identifies a stage (map/arena).
type StageID int

// Pair is one playable mode on one stage.
type Pair struct {
	Mode    Mode    `json:"mode"`
	StageID StageID `json:"stageId"`
}

func (p Pair) String() string {
	return fmt.Sprintf("%s %d", p.Mode, p.StageID)
}

// Compare orders pairs by stage id, then mode.
func (p Pair) Compare(other Pair) int {
	if p.StageID != other.StageID {
		return int(p.StageID) - int(other.StageID)
	}
	return p.Mode.Compare(other.Mode)
}
