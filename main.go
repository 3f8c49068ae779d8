package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/api"
	"github.com/shivam222343/doantion-app/chat"
	"github.com/shivam222343/doantion-app/donation"
	"github.com/shivam222343/doantion-app/external/geoinfo"
	"github.com/shivam222343/doantion-app/gamification"
	"github.com/shivam222343/doantion-app/logmodule"
	"github.com/shivam222343/doantion-app/notification"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/store"
	"github.com/shivam222343/doantion-app/utils"
)

var (
	server       *api.Server
	mongoStore   store.MongoStore
	metricCloser io.Closer
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
	viper.SetEnvPrefix("donation")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("mongo.pool", 100)
	viper.SetDefault("metrics.interval", "1m")
	viper.SetDefault("donation.nearby_radius", donation.DefaultNearbyRadius)
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
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if metricCloser != nil {
			if err := metricCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
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

	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Panic("jwt.secret is required")
	}

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n bundle")

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "donation",
		Reporter: logmodule.NewStatsReporter("metrics"),
	}, viper.GetDuration("metrics.interval"))
	metricCloser = closer

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	log.WithField("prefix", "init").Info("Connected mongo database")

	geoInfo, err := geoinfo.New(viper.GetString("googlemaps.key"))
	if err != nil {
		log.Panic(err)
	}

	hub := realtime.NewHub()
	center := notification.NewCenter(mongoStore, hub, utils.DefaultLanguage)
	engine := gamification.NewEngine(mongoStore, hub, scope)

	// Init http server
	server = api.NewServer(
		mongoStore,
		hub,
		donation.NewManager(mongoStore, engine, center, scope, viper.GetInt("donation.nearby_radius")),
		donation.NewArbiter(mongoStore, engine, center, scope),
		engine,
		center,
		chat.NewService(mongoStore, hub, scope),
		geoInfo,
		[]byte(jwtSecret))
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
