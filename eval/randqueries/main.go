package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/HazelJiang/BearMap/pkg/engine/routing"
	"github.com/HazelJiang/BearMap/pkg/http/usecases"
	log "github.com/HazelJiang/BearMap/pkg/logger"
	"github.com/HazelJiang/BearMap/pkg/spatialindex"
	"github.com/HazelJiang/BearMap/pkg/streetmap"
	"github.com/HazelJiang/BearMap/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numQueries = flag.Int("n", 1000, "number of random queries")
	seed       = flag.Uint64("seed", 0, "random seed, 0 uses the current time")
	outFile    = flag.String("out", "rand_queries_result.csv", "per query results")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	g, err := streetmap.ReadGraph(viper.GetString("GRAPH_FILE"))
	if err != nil {
		panic(err)
	}
	rtree := spatialindex.NewRtree()
	rtree.Build(g, logger)

	rs := usecases.NewRoutingService(logger, g, rtree, viper.GetFloat64("SNAP_RADIUS_KM"),
		viper.GetDuration("SEARCH_TIMEOUT"), viper.GetInt("BATCH_WORKERS"))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(*seed))

	nodes := g.Nodes()
	if len(nodes) == 0 {
		logger.Fatal("street map has no vertices")
	}
	queries := make([]usecases.RouteQuery, 0, *numQueries)
	for i := 0; i < *numQueries; i++ {
		s := nodes[rd.Intn(len(nodes))]
		t := nodes[rd.Intn(len(nodes))]
		queries = append(queries, usecases.RouteQuery{OrigLat: s.Lat, OrigLon: s.Lon, DstLat: t.Lat, DstLon: t.Lon})
	}

	start := time.Now()
	results := rs.ShortestPathBatch(queries)
	took := time.Since(start)

	fout, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer fout.Close()
	w := bufio.NewWriter(fout)
	defer w.Flush()

	fmt.Fprintln(w, "orig_lat,orig_lon,dst_lat,dst_lon,outcome,distance_km,states_explored,exploration_time_ms")

	outcomes := make(map[routing.SolverOutcome]int)
	var (
		totalExploration time.Duration
		totalStates      int
	)
	for _, res := range results {
		q, route := res.Query, res.Route
		outcomes[route.Outcome]++
		totalExploration += route.ExplorationTime
		totalStates += route.StatesExplored
		fmt.Fprintf(w, "%f,%f,%f,%f,%s,%f,%d,%f\n", q.OrigLat, q.OrigLon, q.DstLat, q.DstLon,
			route.Outcome, route.Distance, route.StatesExplored,
			float64(route.ExplorationTime.Microseconds())/1000.0)
	}

	n := max(len(results), 1)
	logger.Info("random queries finished",
		zap.Uint64("seed", *seed),
		zap.Int("queries", len(results)),
		zap.Int("solved", outcomes[routing.SOLVED]),
		zap.Int("unsolvable", outcomes[routing.UNSOLVABLE]),
		zap.Int("timeout", outcomes[routing.TIMEOUT]),
		zap.Int("rejected", outcomes[routing.UNDEFINED]),
		zap.Duration("mean_exploration_time", totalExploration/time.Duration(n)),
		zap.Float64("mean_states_explored", float64(totalStates)/float64(n)),
		zap.Duration("wall_time", took))
}
