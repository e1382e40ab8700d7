// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SceneConfig holds scene and simulation settings.
type SceneConfig struct {
	// FrameRingDepth is the number of in-flight frames.
	FrameRingDepth int `yaml:"frame_ring_depth"`

	// ShadowsEnabled turns the projected-shadow pass on.
	ShadowsEnabled bool `yaml:"shadows_enabled"`

	// AssetsDir is where textures and meshes are loaded from.
	AssetsDir string `yaml:"assets_dir"`

	// SkullMesh is the skull mesh file within AssetsDir.
	SkullMesh string `yaml:"skull_mesh"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Scene: SceneConfig{
			FrameRingDepth: 3,
			ShadowsEnabled: false,
			AssetsDir:      "assets",
			SkullMesh:      "skull.txt",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
