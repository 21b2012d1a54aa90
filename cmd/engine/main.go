package main

import (
	"context"
	"flag"

	"github.com/HazelJiang/BearMap/pkg/http"
	"github.com/HazelJiang/BearMap/pkg/http/usecases"
	"github.com/HazelJiang/BearMap/pkg/logger"
	"github.com/HazelJiang/BearMap/pkg/spatialindex"
	"github.com/HazelJiang/BearMap/pkg/streetmap"
	"github.com/HazelJiang/BearMap/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	graphFile = flag.String("graph", "", "street map snapshot, overrides GRAPH_FILE")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	filename := viper.GetString("GRAPH_FILE")
	if *graphFile != "" {
		filename = *graphFile
	}

	logger.Info("Loading street map...", zap.String("file", filename))
	graph, err := streetmap.ReadGraph(filename)
	if err != nil {
		logger.Fatal("failed to load street map", zap.Error(err))
	}
	logger.Info("Street map loaded", zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, logger)

	routingService := usecases.NewRoutingService(logger, graph, rtree, viper.GetFloat64("SNAP_RADIUS_KM"),
		viper.GetDuration("SEARCH_TIMEOUT"), viper.GetInt("BATCH_WORKERS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, viper.GetBool("USE_RATE_LIMIT"), routingService); err != nil {
		logger.Fatal("failed to start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("api stopped with error", zap.Error(err))
	}

	logger.Info("BearMap Routing Engine Server Stopped", zap.String("signal", signal.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
