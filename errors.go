package metricx

import "errors"

var (
	ErrInvalidUnitID   = errors.New("invalid unit id")
	ErrCrossCategory   = errors.New("units belong to different categories")
	ErrInvalidCategory = errors.New("invalid category")
	ErrDuplicateUnit   = errors.New("unit id registered in more than one category")

	ErrUnknownAchievement  = errors.New("unknown achievement")
	ErrSettingNotFound     = errors.New("setting not found")
	ErrUnknownScheme       = errors.New("unknown color scheme")
	ErrUnknownPreset       = errors.New("unknown quick conversion")
	ErrUnrecognizedCommand = errors.New("unrecognized voice command")

	ErrQuizFinished  = errors.New("quiz already finished")
	ErrInvalidOption = errors.New("invalid answer option")
	ErrChallengeOver = errors.New("challenge is over")
)
