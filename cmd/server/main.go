package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ab-solanki/cookie/internal/cookie_config/service"
	"github.com/ab-solanki/cookie/internal/system/config"
	"github.com/ab-solanki/cookie/internal/system/constants"
	"github.com/ab-solanki/cookie/internal/system/database/mongodb"
	syslog "github.com/ab-solanki/cookie/internal/system/log"
	"github.com/ab-solanki/cookie/internal/system/managers"
	"github.com/ab-solanki/cookie/internal/system/ratelimit"
	"github.com/ab-solanki/cookie/internal/system/schedulers"
	"github.com/ab-solanki/cookie/internal/system/security"
)

// evictionInterval is how often expired rate limit windows and cache entries
// are swept out.
const evictionInterval = time.Minute

func main() {
	ccsHome := getCCSHome()
	const configFile = "/repository/conf/deployment.yaml"

	envFiles, err := filepath.Glob("config/*.env")
	if err != nil || len(envFiles) == 0 {
		log.Println("No .env files found in config directory")
	}
	_ = godotenv.Load(envFiles...)

	// Load the configuration file
	ccsConfig, err := config.LoadConfig(ccsHome, configFile)
	if err != nil {
		log.Fatalf("Failed to load ccsConfig: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeCCSRuntime(ccsHome, ccsConfig); err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger
	if err := syslog.Init(ccsConfig.Log.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := syslog.GetLogger()

	// Initialize the configured store engine
	initDataSource(ccsConfig)

	limiter := buildRateLimiter(ccsConfig)
	stopEviction := schedulers.StartEvictionScheduler(limiter, service.ConfigCache(), evictionInterval)
	defer stopEviction()

	// Health probes stay reachable while a client is throttled.
	exempt := map[string]bool{
		constants.HealthApiPath:    true,
		constants.ReadinessApiPath: true,
	}
	handler := enableCORS(ccsConfig.CORS.AllowedOrigins,
		security.TraceContext(security.RateLimit(limiter, exempt, initMultiplexer())))

	serverAddr := fmt.Sprintf("%s:%d", ccsConfig.Addr.Host, ccsConfig.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", syslog.String("address", serverAddr), syslog.Error(err))
	}

	logger.Info("Cookie consent service started", syslog.String("address", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests", syslog.Error(err))
	}
}

// initDataSource prepares the configured store engine. Postgres connections
// are opened per call by the db client, so only the settings are checked
// here; the Mongo client is a process-wide singleton and connects eagerly.
func initDataSource(conf *config.Config) {
	if conf.DataSource.Type == "postgres" {
		pg := conf.DataSource.Postgres
		if pg.Hostname == "" || pg.Port == 0 || pg.Name == "" || pg.Username == "" {
			log.Fatal("One or more PostgreSQL configuration values are missing")
		}
		syslog.GetLogger().Info("PostgreSQL datasource configured", syslog.String("database", pg.Name))
		return
	}

	mongoConf := conf.DataSource.Mongo
	if mongoConf.URI == "" || mongoConf.Database == "" {
		log.Fatal("One or more MongoDB configuration values are missing")
	}
	if _, err := mongodb.Connect(mongoConf.URI, mongoConf.Database); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	syslog.GetLogger().Info("MongoDB datasource connected", syslog.String("database", mongoConf.Database))
}

// buildRateLimiter returns nil when rate limiting is disabled; the middleware
// treats a nil limiter as a pass-through.
func buildRateLimiter(conf *config.Config) *ratelimit.Limiter {
	if !conf.RateLimit.Enabled {
		return nil
	}

	windowSeconds := conf.RateLimit.WindowSeconds
	if windowSeconds <= 0 {
		windowSeconds = constants.DefaultRateLimitWindowSeconds
	}
	maxRequests := conf.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = constants.DefaultRateLimitMaxRequests
	}

	return ratelimit.NewLimiter(time.Duration(windowSeconds)*time.Second, maxRequests)
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	if err := serviceManager.RegisterServices(); err != nil {
		syslog.GetLogger().Fatal("Failed to register the services", syslog.Error(err))
	}

	return mux
}

// enableCORS answers preflight requests and stamps the allow headers. An
// empty origin list keeps the permissive default for embedded widgets.
func enableCORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(allowed) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length, Retry-After")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getCCSHome() string {

	// Parse project directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("ccsHome", "", "Path to cookie consent service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			log.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
