package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeStore()
	c.normalizeLogging()
	c.normalizeApp()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.Socket) != "" {
		if c.Paths.Socket, err = expandPath(c.Paths.Socket); err != nil {
			return fmt.Errorf("paths.socket: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeStore() {
	if c.Store.BusyTimeoutMillis <= 0 {
		c.Store.BusyTimeoutMillis = defaultBusyTimeoutMillis
	}
	if c.Store.RequestTimeoutSeconds <= 0 {
		c.Store.RequestTimeoutSeconds = defaultRequestTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeApp() {
	c.App.Name = strings.TrimSpace(c.App.Name)
	if c.App.Name == "" {
		c.App.Name = defaultAppName
	}
	c.App.Version = strings.TrimSpace(c.App.Version)
	if c.App.Version == "" {
		c.App.Version = defaultAppVersion
	}
}
