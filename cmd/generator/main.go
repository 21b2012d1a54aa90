package main

import (
	"flag"
	"time"

	"github.com/HazelJiang/BearMap/pkg/logger"
	"github.com/HazelJiang/BearMap/pkg/streetmap"
	"github.com/HazelJiang/BearMap/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	rows    = flag.Int("rows", 200, "number of east-west streets")
	cols    = flag.Int("cols", 200, "number of north-south avenues")
	lat     = flag.Float64("lat", 37.85, "latitude of the south-west corner")
	lon     = flag.Float64("lon", -122.30, "longitude of the south-west corner")
	spacing = flag.Float64("spacing", 0.1, "block length in km")
	oneway  = flag.Float64("oneway", 0.2, "share of one way street segments")
	drop    = flag.Float64("drop", 0.05, "share of missing street segments")
	seed    = flag.Uint64("seed", 0, "random seed, 0 uses the current time")
	out     = flag.String("out", "", "snapshot file, defaults to GRAPH_FILE")
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

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	if *out == "" {
		*out = viper.GetString("GRAPH_FILE")
	}

	g, err := streetmap.GenerateGrid(streetmap.GridConfig{
		Rows:           *rows,
		Cols:           *cols,
		Lat:            *lat,
		Lon:            *lon,
		Spacing:        *spacing,
		OnewayFraction: *oneway,
		DropFraction:   *drop,
	}, rand.New(rand.NewSource(*seed)))
	if err != nil {
		logger.Fatal("failed to generate street map", zap.Error(err))
	}

	if err := g.WriteGraph(*out); err != nil {
		logger.Fatal("failed to write street map", zap.Error(err))
	}
	logger.Info("street map written", zap.String("file", *out), zap.Uint64("seed", *seed),
		zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()))
}
