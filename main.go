// @title Event Analytics Dashboard API
// @version 1.0
// @description Backend API for the hackathon/event analytics dashboard

// @securityDefinitions.apikey SessionToken
// @in header
// @name x-session-token
package main

import (
	_ "github.com/Mayank-kush24/Consolidated-Dahsboards/docs"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/api"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (locally or inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
