package config

import (
	"strconv"
	"time"

	"github.com/Houeta/deedplot/internal/closure"
	"github.com/Houeta/deedplot/internal/distance"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the deed plotting service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring server.
// - Workers: The number of concurrent workers for processing deeds.
// - Interval: The duration between intake polling cycles.
// - IntakeDir: The directory watched for pending deed files.
// - OutputDir: The directory receiving analysis documents and export bundles.
// - Survey: The survey conventions applied by the plotting pipeline.
type Config struct {
	Env       string
	Port      int
	Workers   int
	Interval  time.Duration
	IntakeDir string
	OutputDir string
	Survey    SurveyConfig
}

// SurveyConfig holds the survey conventions that vary by jurisdiction or
// client requirements rather than being universal facts.
type SurveyConfig struct {
	VaraFeet             float64 // VaraFeet is the vara-to-feet factor (Texas convention by default).
	ClosureToleranceFeet float64 // ClosureToleranceFeet is the closed-traverse threshold.
	PrecisionWarnPPM     float64 // PrecisionWarnPPM is the low-precision warning threshold.
}

// MustLoad loads the configuration from DEEDPLOT_* environment variables
// (a .env file is honored when present) and returns a Config struct. It
// panics on values that cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DEEDPLOT")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("health_port", 8080)
	v.SetDefault("workers", 10)
	v.SetDefault("interval", "1m")
	v.SetDefault("intake_dir", "./deeds")
	v.SetDefault("output_dir", "./plots")
	v.SetDefault("vara_feet", distance.DefaultVaraFeet)
	v.SetDefault("closure_tolerance_feet", closure.DefaultToleranceFeet)
	v.SetDefault("precision_warn_ppm", closure.DefaultPrecisionWarnPPM)

	interval, err := time.ParseDuration(v.GetString("interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("health_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("workers"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer type")
	}

	return &Config{
		Env:       v.GetString("env"),
		Port:      healthPort,
		Workers:   workers,
		Interval:  interval,
		IntakeDir: v.GetString("intake_dir"),
		OutputDir: v.GetString("output_dir"),
		Survey: SurveyConfig{
			VaraFeet:             mustFloat(v, "vara_feet"),
			ClosureToleranceFeet: mustFloat(v, "closure_tolerance_feet"),
			PrecisionWarnPPM:     mustFloat(v, "precision_warn_ppm"),
		},
	}
}

func mustFloat(v *viper.Viper, key string) float64 {
	value, err := strconv.ParseFloat(v.GetString(key), 64)
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a number")
	}
	return value
}
