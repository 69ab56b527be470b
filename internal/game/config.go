package game

import (
	"errors"
	"fmt"
	"strings"
)

type ForestConfig struct {
	StartX float64 `yaml:"start_x"`
	StartZ float64 `yaml:"start_z"`
	DX     float64 `yaml:"dx"`
	DZ     float64 `yaml:"dz"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`

	RubbingDuration float64 `yaml:"rubbing_duration"`
	CutDownDuration float64 `yaml:"cut_down_duration"`
	GrowingDuration float64 `yaml:"growing_duration"`
	// RegrowScale is the Y scale a tree restarts from when it begins growing.
	RegrowScale float64 `yaml:"regrow_scale"`

	SwingAmplitudeDeg float64 `yaml:"swing_amplitude_deg"`
	SwingCycles       float64 `yaml:"swing_cycles"`
}

type ClipNames struct {
	Walk string `yaml:"walk"`
	Chop string `yaml:"chop"`
	Idle string `yaml:"idle"`
}

type AvatarConfig struct {
	Spawn             Vec3      `yaml:"spawn"`
	MoveSpeed         float64   `yaml:"move_speed"`
	DeadZone          float64   `yaml:"dead_zone"`
	InputRotationDeg  float64   `yaml:"input_rotation_deg"`
	MaxLogs           int       `yaml:"max_logs"`
	MaxDistanceToTree float64   `yaml:"max_distance_to_tree"`
	ViewAngleDeg      float64   `yaml:"view_angle_deg"`
	ChopInterval      float64   `yaml:"chop_interval"`
	CrossFade         float64   `yaml:"cross_fade"`
	BackpackOffset    Vec3      `yaml:"backpack_offset"`
	Clips             ClipNames `yaml:"clips"`
}

type SellConfig struct {
	InitialDelay float64 `yaml:"initial_delay"`
	Period       float64 `yaml:"period"`
	Price        int     `yaml:"price"`
}

type FlightConfig struct {
	LegDuration float64 `yaml:"leg_duration"`
	Lift        float64 `yaml:"lift"`
	Scale       Vec3    `yaml:"scale"`
}

type CameraConfig struct {
	Offset Vec3 `yaml:"offset"`
}

type HintConfig struct {
	ShowDelay float64 `yaml:"show_delay"`
}

// SceneConfig lists the nodes zones are derived from. A nil node is a missing
// reference: the zones built from it never contain anything.
type SceneConfig struct {
	Table     *Transform `yaml:"table"`
	Ground    *Transform `yaml:"ground"`
	SellPlace *Transform `yaml:"sell_place"`
	SellTable *Vec3      `yaml:"sell_table"`
}

type Config struct {
	Forest ForestConfig `yaml:"forest"`
	Avatar AvatarConfig `yaml:"avatar"`
	Sell   SellConfig   `yaml:"sell"`
	Flight FlightConfig `yaml:"flight"`
	Camera CameraConfig `yaml:"camera"`
	Hint   HintConfig   `yaml:"hint"`
	Scene  SceneConfig  `yaml:"scene"`
}

func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		StartX:            0,
		StartZ:            0,
		DX:                4,
		DZ:                4,
		Width:             5,
		Height:            5,
		RubbingDuration:   1.5,
		CutDownDuration:   7,
		GrowingDuration:   1,
		RegrowScale:       0.5,
		SwingAmplitudeDeg: 10,
		SwingCycles:       3,
	}
}

func DefaultAvatarConfig() AvatarConfig {
	return AvatarConfig{
		Spawn:             Vec3{X: -4, Z: 2},
		MoveSpeed:         5,
		DeadZone:          0.1,
		InputRotationDeg:  135,
		MaxLogs:           30,
		MaxDistanceToTree: 3,
		ViewAngleDeg:      45,
		ChopInterval:      0.6,
		CrossFade:         0.2,
		BackpackOffset:    Vec3{Y: 1.2},
		Clips: ClipNames{
			Walk: "Lumber_Walk",
			Chop: "Lumber_Chop",
			Idle: "Lumber_Idle",
		},
	}
}

func DefaultSellConfig() SellConfig {
	return SellConfig{InitialDelay: 0.5, Period: 0.2, Price: 10}
}

func DefaultConfig() Config {
	return Config{
		Forest: DefaultForestConfig(),
		Avatar: DefaultAvatarConfig(),
		Sell:   DefaultSellConfig(),
		Flight: FlightConfig{
			LegDuration: 0.5,
			Lift:        10,
			Scale:       Vec3{X: 1, Y: 1, Z: 0.5},
		},
		Camera: CameraConfig{Offset: Vec3{X: -10, Y: 15, Z: 10}},
		Hint:   HintConfig{ShowDelay: 5},
		Scene: SceneConfig{
			Table: &Transform{
				Position: Vec3{X: -9, Z: 8},
				Scale:    Vec3{X: 2, Y: 1, Z: 4},
			},
			Ground: &Transform{
				Position: Vec3{X: 4, Z: 8},
				Scale:    Vec3{X: 30, Y: 1, Z: 26},
			},
			SellPlace: &Transform{
				Position: Vec3{X: -6, Z: 8},
				Scale:    Vec3{X: 3, Y: 1, Z: 3},
			},
			SellTable: &Vec3{X: -9, Y: 1, Z: 8},
		},
	}
}

func (c ForestConfig) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("forest grid must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.RubbingDuration <= 0 || c.CutDownDuration < 0 || c.GrowingDuration <= 0 {
		return fmt.Errorf("forest durations must be positive (rubbing=%.2f cut_down=%.2f growing=%.2f)",
			c.RubbingDuration, c.CutDownDuration, c.GrowingDuration)
	}
	if c.RegrowScale < 0 || c.RegrowScale > 1 {
		return fmt.Errorf("regrow scale must be in [0,1], got %.2f", c.RegrowScale)
	}
	return nil
}

func (c AvatarConfig) Validate() error {
	if c.MoveSpeed < 0 {
		return fmt.Errorf("move speed must not be negative, got %.2f", c.MoveSpeed)
	}
	if c.MaxLogs < 1 {
		return fmt.Errorf("max logs must be at least 1, got %d", c.MaxLogs)
	}
	if c.MaxDistanceToTree <= 0 {
		return fmt.Errorf("max distance to tree must be positive, got %.2f", c.MaxDistanceToTree)
	}
	if c.ChopInterval <= 0 {
		return fmt.Errorf("chop interval must be positive, got %.2f", c.ChopInterval)
	}
	if strings.TrimSpace(c.Clips.Walk) == "" || strings.TrimSpace(c.Clips.Chop) == "" || strings.TrimSpace(c.Clips.Idle) == "" {
		return errors.New("walk, chop and idle clip names are required")
	}
	return nil
}

func (c SellConfig) Validate() error {
	if c.InitialDelay < 0 || c.Period < 0 {
		return fmt.Errorf("sell timing must not be negative (delay=%.2f period=%.2f)", c.InitialDelay, c.Period)
	}
	if c.Price < 0 {
		return fmt.Errorf("sell price must not be negative, got %d", c.Price)
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.Forest.Validate(); err != nil {
		return fmt.Errorf("forest: %w", err)
	}
	if err := c.Avatar.Validate(); err != nil {
		return fmt.Errorf("avatar: %w", err)
	}
	if err := c.Sell.Validate(); err != nil {
		return fmt.Errorf("sell: %w", err)
	}
	if c.Flight.LegDuration <= 0 {
		return fmt.Errorf("flight: leg duration must be positive, got %.2f", c.Flight.LegDuration)
	}
	return nil
}
