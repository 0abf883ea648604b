package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/ykarpenko/urlkeys/internal/app/server"
	"github.com/ykarpenko/urlkeys/internal/app/service"
	"github.com/ykarpenko/urlkeys/internal/config"
	"github.com/ykarpenko/urlkeys/internal/logger"
	"github.com/ykarpenko/urlkeys/internal/repository"
	"github.com/ykarpenko/urlkeys/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var st storage.StorageI
	switch {
	case options.DatabaseDSN != "":
		zapLogger.Info("using db", zap.String("dsn", options.DatabaseDSN))
		db, err := repository.InitDB(options.DatabaseDSN, zapLogger)
		if err != nil {
			panic(err)
		}
		defer db.Close()
		st = repository.CreateURLRepository(db, zapLogger)
	case options.FilePath != "":
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))
		fs, err := storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			panic(err)
		}
		defer fs.Close()
		st = fs
	default:
		zapLogger.Info("using in memory storage")
		mem, err := storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
		st = mem
	}

	// Redirect lookups dominate; records are immutable, so a
	// read-through cache in front of any backend is safe.
	st = storage.NewCachedStorage(st)

	urlService := service.NewURL(st, zapLogger)
	r := server.Init(options.ResultHostname, zapLogger, urlService)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("urlkeys.dev", "www.urlkeys.dev"),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", options.Port))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", options.Port))
		if err := http.ListenAndServe(options.Port, r); err != nil {
			panic(err)
		}
	}
}
