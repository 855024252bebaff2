package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/pharmacies1927/Pharmacies-Review-Analysis/api"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/geo"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/pipeline"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/schema"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/share/geojson"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/store"
	"github.com/pharmacies1927/Pharmacies-Review-Analysis/utils"
)

var (
	server *api.Server
	source store.DataSource
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pharmacies")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// openDataSource builds the data source named by datasource.driver.
func openDataSource() (store.DataSource, *mongo.Client, error) {
	switch driver := viper.GetString("datasource.driver"); driver {
	case "file":
		return store.NewFileSource(
			viper.GetString("datasource.file.listings"),
			viper.GetString("datasource.file.reviews"),
		), nil, nil
	case "postgres":
		db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresSource(db), nil, nil
	case "mongo":
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		client, err := mongo.NewClient(opts)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Connect(context.Background()); err != nil {
			return nil, nil, err
		}
		return store.NewMongoSource(client, viper.GetString("mongo.database")), client, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", store.ErrUnknownDriver, driver)
	}
}

// cityResolver prefers the address heuristic and falls back to reverse
// geocoding when a maps api key is configured.
func cityResolver() geo.CityResolver {
	apiKey := viper.GetString("map.key")
	if apiKey == "" {
		return geo.AddressCityResolver{}
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("maps client unavailable, using address heuristic only")
		return geo.AddressCityResolver{}
	}

	return geo.NewMultipleCityResolver(
		geo.AddressCityResolver{},
		geo.NewGeocodingCityResolver(client),
	)
}

// loadBoundaries reads canton boundaries from a geojson file when one is
// configured, otherwise from the boundary collection of the mongo client.
func loadBoundaries(mongoClient *mongo.Client) ([]schema.Boundary, error) {
	if file := viper.GetString("geojson.canton"); file != "" {
		return geojson.LoadCantonBoundaries(file)
	}
	if mongoClient != nil {
		return store.NewMongoSource(mongoClient, viper.GetString("mongo.database")).Boundaries(context.Background())
	}
	return nil, nil
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if source != nil {
			log.Info("Shutting down data source")
			source.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	var mongoClient *mongo.Client
	var err error
	source, mongoClient, err = openDataSource()
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized data source: ", viper.GetString("datasource.driver"))

	boundaries, err := loadBoundaries(mongoClient)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded canton boundaries: ", len(boundaries))

	cities := cityResolver()

	dataset, err := pipeline.NewContext(initialCtx, source, cities)
	if err != nil {
		log.Panic(err)
	}
	if viper.GetBool("sentiment.eager") {
		dataset = dataset.WithSentiment()
	}
	log.WithField("prefix", "init").
		WithField("snapshot", dataset.Snapshot.String()).
		Info("Loaded dataset: ", len(dataset.Listings), " listings, ", len(dataset.Reviews), " reviews")

	// Init http server
	server = api.NewServer(source, boundaries, cities, dataset)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
