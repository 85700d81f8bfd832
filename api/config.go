package api

import (
	"sync"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	SheetConfig
}

type StorageConfig struct {
	TableNameEventConfigs string
	TableNamePins         string
	TableNameSessions     string
	ConfigFile            string
	PinsFile              string
	SessionsFile          string
}

type ServerConfig struct {
	Port int
}

type SheetConfig struct {
	DefaultSheet    string
	CredentialsPath string
	CacheTTLSeconds int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameEventConfigs: getStringOrDefault("storage.TableNameEventConfigs", "EventConfigs"),
			TableNamePins:         getStringOrDefault("storage.TableNamePins", "PinnedInitiatives"),
			TableNameSessions:     getStringOrDefault("storage.TableNameSessions", "DashboardSessions"),
			ConfigFile:            getStringOrDefault("storage.ConfigFile", "event_dashboard_config.json"),
			PinsFile:              getStringOrDefault("storage.PinsFile", "pinned_initiatives.json"),
			SessionsFile:          getStringOrDefault("storage.SessionsFile", "auth_sessions.json"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		SheetConfig: SheetConfig{
			DefaultSheet:    getStringOrDefault("sheet.DefaultSheet", ""),
			CredentialsPath: getStringOrDefault("sheet.CredentialsPath", "credentials.json"),
			CacheTTLSeconds: getIntOrDefault("sheet.CacheTTLSeconds", 300),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
