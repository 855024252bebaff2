package main

import (
	"context"
	"flag"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/share/geojson"
)

func main() {
	var configFile string
	var geoJSONFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&geoJSONFile, "f", "./data/georef-switzerland-kanton.geojson", "path of the canton geojson file")
	flag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Connect(context.Background()); err != nil {
		log.Fatal(err)
	}

	if err := geojson.ImportCantonBoundaries(client, viper.GetString("mongo.database"), geoJSONFile); err != nil {
		log.Fatal(err)
	}
	log.Info("boundary import finished")
}
