package cmd

import "time"

// Config carries all runtime settings, loaded from the environment.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaStockPickedTopic string
	StaleListMaxAge       time.Duration
}
