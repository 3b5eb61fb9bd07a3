package config_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gridironsim/gridiron/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"GRIDIRON_CONFIG",
		"GRIDIRON_LOG_LEVEL",
		"GRIDIRON_ADDR",
		"GRIDIRON_WORKER_COUNT",
		"GRIDIRON_SEED",
		"GRIDIRON_PROFILE_PATH",
		"GRIDIRON_STORE_DRIVER",
		"GRIDIRON_STORE_DSN",
		"GRIDIRON_MAX_LEADERBOARD_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config file: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU()*2)
				convey.So(cfg.Seed, convey.ShouldEqual, 42)
				convey.So(cfg.StoreDriver, convey.ShouldEqual, config.StoreMemory)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GRIDIRON_ADDR", ":8080")
			_ = os.Setenv("GRIDIRON_WORKER_COUNT", "16")
			_ = os.Setenv("GRIDIRON_SEED", "1234")
			_ = os.Setenv("GRIDIRON_STORE_DRIVER", "sqlite")
			_ = os.Setenv("GRIDIRON_STORE_DSN", "league.db")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 16)
				convey.So(cfg.Seed, convey.ShouldEqual, 1234)
				convey.So(cfg.StoreDriver, convey.ShouldEqual, config.StoreSQLite)
				convey.So(cfg.StoreDSN, convey.ShouldEqual, "league.db")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			clearConfigEnvVars()
			yamlContent := `
addr: ":9090"
worker_count: 24
seed: 77
max_leaderboard_limit: 50
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("GRIDIRON_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 24)
				convey.So(cfg.Seed, convey.ShouldEqual, 77)
				convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			clearConfigEnvVars()
			yamlContent := `
addr: ":9090"
worker_count: 24
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("GRIDIRON_CONFIG", tmpFile)
			_ = os.Setenv("GRIDIRON_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")    // Overridden by env
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 24) // From file
			})
		})

		convey.Convey("When the configuration is invalid", func() {
			convey.Convey("And the worker count is not positive", func() {
				clearConfigEnvVars()
				_ = os.Setenv("GRIDIRON_WORKER_COUNT", "0")
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})

			convey.Convey("And the store driver is unknown", func() {
				clearConfigEnvVars()
				_ = os.Setenv("GRIDIRON_STORE_DRIVER", "mongo")
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})

			convey.Convey("And a SQL driver has no DSN", func() {
				clearConfigEnvVars()
				_ = os.Setenv("GRIDIRON_STORE_DRIVER", "postgres")
				_ = os.Setenv("GRIDIRON_STORE_DSN", "")
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})

			convey.Convey("And the config file does not exist", func() {
				clearConfigEnvVars()
				_ = os.Setenv("GRIDIRON_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})
	})
}
