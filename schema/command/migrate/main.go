package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/foundernet/ecosystem-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ecosystem")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
		&schema.HelpRequest{},
		&schema.HelpResponse{},
		&schema.NeedHelp{},
		&schema.ConnectionRequest{},
	).Error; err != nil {
		panic(err)
	}

	// one response per responder per request
	if err := db.Model(schema.HelpResponse{}).
		AddUniqueIndex("help_response_unique_responder", "help_id", "responder").Error; err != nil {
		panic(err)
	}

	// one edge per ordered account pair
	if err := db.Model(schema.ConnectionRequest{}).
		AddUniqueIndex("connection_request_unique_pair", "from_account", "to_account").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.HelpRequest{}).
		AddIndex("help_request_status_expiry", "status", "expires_at").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
